package db

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/balkashynov/servicenote/internal/models"
)

// BibleStudentInput holds the editable fields of a Bible student
type BibleStudentInput struct {
	StudentName   string  `validate:"required,max=120"`
	Phone         string  `validate:"max=40"`
	Address       string  `validate:"max=250"`
	StudyMaterial string  `validate:"max=120"`
	StudyDay      string  `validate:"max=60"`
	Note          string  `validate:"max=1000"`
	Latitude      float64 `validate:"gte=-90,lte=90"`
	Longitude     float64 `validate:"gte=-180,lte=180"`
}

func (in BibleStudentInput) apply(student *models.BibleStudent) {
	student.StudentName = in.StudentName
	student.Phone = in.Phone
	student.Address = in.Address
	student.StudyMaterial = in.StudyMaterial
	student.StudyDay = in.StudyDay
	student.Note = in.Note
	student.Latitude = in.Latitude
	student.Longitude = in.Longitude
}

// CreateBibleStudent adds a new Bible student
func (s *Store) CreateBibleStudent(input BibleStudentInput) (*models.BibleStudent, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("invalid student: %w", err)
	}

	var student models.BibleStudent
	input.apply(&student)
	if err := s.database.Create(&student).Error; err != nil {
		return nil, err
	}
	return &student, nil
}

// GetBibleStudent retrieves a Bible student by ID
func (s *Store) GetBibleStudent(id uint) (*models.BibleStudent, error) {
	var student models.BibleStudent
	if err := s.database.First(&student, id).Error; err != nil {
		return nil, notFound(err, ErrBibleStudentNotFound)
	}
	return &student, nil
}

// ListBibleStudents returns every Bible student ordered by name
func (s *Store) ListBibleStudents() ([]models.BibleStudent, error) {
	students := make([]models.BibleStudent, 0)
	if err := s.database.Order("student_name ASC, id ASC").Find(&students).Error; err != nil {
		return nil, err
	}
	return students, nil
}

// ListStudentRefs returns the id/name pairs offered when logging a day
func (s *Store) ListStudentRefs() ([]StudentRef, error) {
	refs := make([]StudentRef, 0)
	err := s.database.Model(&models.BibleStudent{}).
		Select("id", "student_name AS name").
		Order("student_name ASC").
		Scan(&refs).Error
	if err != nil {
		return nil, err
	}
	return refs, nil
}

// UpdateBibleStudent overwrites a student's fields. Names already recorded
// in students_per_month are left as they were.
func (s *Store) UpdateBibleStudent(id uint, input BibleStudentInput) (*models.BibleStudent, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("invalid student: %w", err)
	}

	student, err := s.GetBibleStudent(id)
	if err != nil {
		return nil, err
	}
	input.apply(student)

	if err := s.database.Save(student).Error; err != nil {
		return nil, err
	}
	return student, nil
}

// DeleteBibleStudent removes a student and every month association that
// references it
func (s *Store) DeleteBibleStudent(id uint) error {
	return s.database.Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&models.BibleStudent{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrBibleStudentNotFound
		}

		if err := tx.Where("student_id = ?", id).Delete(&models.StudentMonth{}).Error; err != nil {
			return fmt.Errorf("failed to delete month records of student #%d: %w", id, err)
		}
		return nil
	})
}
