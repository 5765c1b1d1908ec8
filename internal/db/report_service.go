package db

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/balkashynov/servicenote/internal/models"
)

// DailyReportInput holds the fields of a day's activity
type DailyReportInput struct {
	Date         string  `validate:"required,datetime=2006-01-02"`
	Hours        float64 `validate:"gte=0,lte=24"`
	Placements   int     `validate:"gte=0"`
	ReturnVisits int     `validate:"gte=0"`
	Studies      int     `validate:"gte=0"`
	Comments     string  `validate:"max=500"`
}

// StudentRef identifies a Bible student selected while logging a day
type StudentRef struct {
	ID   uint
	Name string
}

// LogDay saves a day's activity together with one student-month row per
// selected student. Everything is written in a single transaction.
func (s *Store) LogDay(input DailyReportInput, students []StudentRef) (*models.DailyReport, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("invalid report: %w", err)
	}

	report := models.DailyReport{
		Date:         input.Date,
		Hours:        input.Hours,
		Placements:   input.Placements,
		ReturnVisits: input.ReturnVisits,
		Studies:      input.Studies,
		Comments:     input.Comments,
	}

	err := s.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&report).Error; err != nil {
			return fmt.Errorf("failed to save report: %w", err)
		}

		month := report.Month()
		for _, student := range students {
			row := models.StudentMonth{StudentID: student.ID, Name: student.Name, Month: month}
			if err := tx.Create(&row).Error; err != nil {
				return fmt.Errorf("failed to record student #%d for %s: %w", student.ID, month, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &report, nil
}

// GetDailyReport retrieves a day report by ID
func (s *Store) GetDailyReport(id uint) (*models.DailyReport, error) {
	var report models.DailyReport
	if err := s.database.First(&report, id).Error; err != nil {
		return nil, notFound(err, ErrDailyReportNotFound)
	}
	return &report, nil
}

// ListDailyReports returns every day report, newest first
func (s *Store) ListDailyReports() ([]models.DailyReport, error) {
	reports := make([]models.DailyReport, 0)
	if err := s.database.Order("date DESC, id DESC").Find(&reports).Error; err != nil {
		return nil, err
	}
	return reports, nil
}

// ListDailyReportsForMonth returns the day reports whose date starts with
// the given YYYY-MM key, oldest first
func (s *Store) ListDailyReportsForMonth(month string) ([]models.DailyReport, error) {
	if !IsMonthKey(month) {
		return nil, fmt.Errorf("invalid month %q, expected YYYY-MM", month)
	}

	reports := make([]models.DailyReport, 0)
	err := s.database.
		Where("date LIKE ?", month+"%").
		Order("date ASC, id ASC").
		Find(&reports).Error
	if err != nil {
		return nil, err
	}
	return reports, nil
}

// UpdateDailyReport overwrites every field of an existing day report
func (s *Store) UpdateDailyReport(id uint, input DailyReportInput) (*models.DailyReport, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("invalid report: %w", err)
	}

	report, err := s.GetDailyReport(id)
	if err != nil {
		return nil, err
	}

	report.Date = input.Date
	report.Hours = input.Hours
	report.Placements = input.Placements
	report.ReturnVisits = input.ReturnVisits
	report.Studies = input.Studies
	report.Comments = input.Comments

	if err := s.database.Save(report).Error; err != nil {
		return nil, err
	}
	return report, nil
}

// DeleteDailyReport removes a single day report
func (s *Store) DeleteDailyReport(id uint) error {
	result := s.database.Delete(&models.DailyReport{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrDailyReportNotFound
	}
	return nil
}
