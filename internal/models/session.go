package models

import "time"

// ServiceSession represents a stretch of field service timed with start/stop
type ServiceSession struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	StartedAt       time.Time  `gorm:"not null;index" json:"started_at"`
	FinishedAt      *time.Time `gorm:"index" json:"finished_at"`
	DurationSeconds int        `json:"duration_seconds"`
	Note            string     `json:"note"`

	// Day report created when the session was stopped
	DailyReportID *uint `json:"daily_report_id"`
}

func (ServiceSession) TableName() string {
	return "service_sessions"
}

// Active reports whether the session is still running
func (s ServiceSession) Active() bool {
	return s.FinishedAt == nil
}
