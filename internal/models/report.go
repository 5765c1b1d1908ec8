package models

import "time"

// DailyReport represents one day of logged field service activity
type DailyReport struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Date         string  `gorm:"type:text;not null;index" json:"date"` // YYYY-MM-DD
	Hours        float64 `gorm:"not null;default:0" json:"hours"`
	Placements   int     `gorm:"default:0" json:"placements"`
	ReturnVisits int     `gorm:"default:0" json:"return_visits"`
	Studies      int     `gorm:"default:0" json:"studies"` // informational, not used for monthly totals
	Comments     string  `json:"comments"`
}

// TableName keeps the table name used by earlier versions of the app
func (DailyReport) TableName() string {
	return "fs_report"
}

// Month returns the YYYY-MM key the report belongs to
func (r DailyReport) Month() string {
	if len(r.Date) < 7 {
		return r.Date
	}
	return r.Date[:7]
}

// StudentMonth records that a Bible student was studied with during a month.
// Name is a snapshot taken when the row was written and is not kept in sync
// with later renames.
type StudentMonth struct {
	ID        uint   `gorm:"primarykey" json:"id"`
	StudentID uint   `gorm:"not null;index" json:"student_id"`
	Name      string `json:"name"`
	Month     string `gorm:"type:text;index" json:"month"` // YYYY-MM
}

func (StudentMonth) TableName() string {
	return "students_per_month"
}

// MonthlyReport is the saved summary for a month, at most one per month
type MonthlyReport struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Month        string  `gorm:"type:text;not null;uniqueIndex:uidx_monthly_report_month" json:"month"`
	Hours        float64 `json:"hours"`
	Placements   int     `json:"placements"`
	ReturnVisits int     `json:"return_visits"`
	Studies      int     `json:"studies"`
	Comments     string  `json:"comments"`
}

func (MonthlyReport) TableName() string {
	return "monthly_report"
}
