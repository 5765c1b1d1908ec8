package db

import (
	"fmt"

	"github.com/balkashynov/servicenote/internal/models"
)

// AddStudentMonth records a student for a month. Repeated rows for the same
// student and month are allowed; counting deduplicates them.
func (s *Store) AddStudentMonth(studentID uint, name, month string) error {
	if !IsMonthKey(month) {
		return fmt.Errorf("invalid month %q, expected YYYY-MM", month)
	}
	row := models.StudentMonth{StudentID: studentID, Name: name, Month: month}
	return s.database.Create(&row).Error
}

// CountDistinctStudents returns how many different students were recorded
// for the month
func (s *Store) CountDistinctStudents(month string) (int, error) {
	var count int64
	err := s.database.Model(&models.StudentMonth{}).
		Where("month = ?", month).
		Distinct("student_id").
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count students for %s: %w", month, err)
	}
	return int(count), nil
}

// ListStudentMonths returns the raw association rows of a month
func (s *Store) ListStudentMonths(month string) ([]models.StudentMonth, error) {
	rows := make([]models.StudentMonth, 0)
	if err := s.database.Where("month = ?", month).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
