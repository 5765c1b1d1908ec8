package db

import (
	"errors"
	"fmt"
	"math"
	"time"

	"gorm.io/gorm"

	"github.com/balkashynov/servicenote/internal/models"
)

var (
	ErrSessionActive   = errors.New("a service session is already running")
	ErrNoActiveSession = errors.New("no service session is running")
)

// quarterHour is the step logged hours are rounded to
const quarterHour = 0.25

// SessionHours converts a timed session into report hours, rounded to the
// nearest quarter hour
func SessionHours(d time.Duration) float64 {
	if d <= 0 {
		return 0
	}
	return math.Round(d.Hours()/quarterHour) * quarterHour
}

// StartSession starts timing field service at now
func (s *Store) StartSession(now time.Time, note string) (*models.ServiceSession, error) {
	active, found, err := s.GetActiveSession()
	if err != nil {
		return nil, err
	}
	if found {
		return nil, fmt.Errorf("%w since %s", ErrSessionActive, active.StartedAt.Format("15:04"))
	}

	// Sessions are stored in UTC, ListSessions compares in UTC
	session := models.ServiceSession{StartedAt: now.UTC(), Note: note}
	if err := s.database.Create(&session).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

// GetActiveSession returns the running session and whether there is one
func (s *Store) GetActiveSession() (*models.ServiceSession, bool, error) {
	var session models.ServiceSession
	result := s.database.Where("finished_at IS NULL").Order("started_at DESC").Limit(1).Find(&session)
	if result.Error != nil {
		return nil, false, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, false, nil
	}
	return &session, true, nil
}

// StopActiveSession finishes the running session at now and logs its time as
// a day report dated on the day the session started. Both writes share a
// transaction.
func (s *Store) StopActiveSession(now time.Time) (*models.ServiceSession, *models.DailyReport, error) {
	session, found, err := s.GetActiveSession()
	if err != nil {
		return nil, nil, err
	}
	if !found {
		return nil, nil, ErrNoActiveSession
	}

	duration := now.Sub(session.StartedAt)
	if duration < 0 {
		duration = 0
	}
	report := models.DailyReport{
		Date:     session.StartedAt.In(now.Location()).Format("2006-01-02"),
		Hours:    SessionHours(duration),
		Comments: session.Note,
	}

	err = s.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&report).Error; err != nil {
			return fmt.Errorf("failed to log session time: %w", err)
		}

		finished := now.UTC()
		session.FinishedAt = &finished
		session.DurationSeconds = int(duration.Seconds())
		session.DailyReportID = &report.ID
		return tx.Save(session).Error
	})
	if err != nil {
		return nil, nil, err
	}

	return session, &report, nil
}

// ListSessions returns finished sessions that started within [from, to)
func (s *Store) ListSessions(from, to time.Time) ([]models.ServiceSession, error) {
	sessions := make([]models.ServiceSession, 0)
	err := s.database.
		Where("started_at >= ? AND started_at < ? AND finished_at IS NOT NULL", from.UTC(), to.UTC()).
		Order("started_at ASC").
		Find(&sessions).Error
	if err != nil {
		return nil, err
	}
	return sessions, nil
}
