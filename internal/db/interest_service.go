package db

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/balkashynov/servicenote/internal/models"
)

// RecentInterestsLimit is how many return visits the "recent" view shows
const RecentInterestsLimit = 2

// InterestedPersonInput holds the editable fields of a return visit
type InterestedPersonInput struct {
	Name        string  `validate:"required,max=120"`
	Address     string  `validate:"max=250"`
	Phone       string  `validate:"max=40"`
	Placement   string  `validate:"max=120"`
	Topic       string  `validate:"max=120"`
	Appointment string  `validate:"max=60"`
	Note        string  `validate:"max=1000"`
	LastVisit   string  `validate:"omitempty,datetime=2006-01-02"`
	Latitude    float64 `validate:"gte=-90,lte=90"`
	Longitude   float64 `validate:"gte=-180,lte=180"`
}

func (in InterestedPersonInput) apply(person *models.InterestedPerson) {
	person.Name = in.Name
	person.Address = in.Address
	person.Phone = in.Phone
	person.Placement = in.Placement
	person.Topic = in.Topic
	person.Appointment = in.Appointment
	person.Note = in.Note
	person.LastVisit = in.LastVisit
	person.Latitude = in.Latitude
	person.Longitude = in.Longitude
}

// CreateInterestedPerson adds a return visit
func (s *Store) CreateInterestedPerson(input InterestedPersonInput) (*models.InterestedPerson, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("invalid return visit: %w", err)
	}

	var person models.InterestedPerson
	input.apply(&person)
	if err := s.database.Create(&person).Error; err != nil {
		return nil, err
	}
	return &person, nil
}

// GetInterestedPerson retrieves a return visit by ID
func (s *Store) GetInterestedPerson(id uint) (*models.InterestedPerson, error) {
	var person models.InterestedPerson
	if err := s.database.First(&person, id).Error; err != nil {
		return nil, notFound(err, ErrInterestedPersonNotFound)
	}
	return &person, nil
}

// ListInterestedPersons returns return visits, most recently visited first.
// A limit of zero or less returns all of them.
func (s *Store) ListInterestedPersons(limit int) ([]models.InterestedPerson, error) {
	query := s.database.Order("last_visit DESC, id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	persons := make([]models.InterestedPerson, 0)
	if err := query.Find(&persons).Error; err != nil {
		return nil, err
	}
	return persons, nil
}

// UpdateInterestedPerson overwrites the fields of a return visit
func (s *Store) UpdateInterestedPerson(id uint, input InterestedPersonInput) (*models.InterestedPerson, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("invalid return visit: %w", err)
	}

	person, err := s.GetInterestedPerson(id)
	if err != nil {
		return nil, err
	}
	input.apply(person)

	if err := s.database.Save(person).Error; err != nil {
		return nil, err
	}
	return person, nil
}

// DeleteInterestedPerson removes a return visit
func (s *Store) DeleteInterestedPerson(id uint) error {
	result := s.database.Delete(&models.InterestedPerson{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrInterestedPersonNotFound
	}
	return nil
}

// ConvertToBibleStudy turns a return visit into a Bible student. The topic
// becomes the study material and the appointment becomes the study day.
func (s *Store) ConvertToBibleStudy(id uint) (*models.BibleStudent, error) {
	var student models.BibleStudent

	err := s.database.Transaction(func(tx *gorm.DB) error {
		var person models.InterestedPerson
		if err := tx.First(&person, id).Error; err != nil {
			return notFound(err, ErrInterestedPersonNotFound)
		}

		student = models.BibleStudent{
			StudentName:   person.Name,
			Address:       person.Address,
			Phone:         person.Phone,
			StudyMaterial: person.Topic,
			StudyDay:      person.Appointment,
			Note:          person.Note,
			Latitude:      person.Latitude,
			Longitude:     person.Longitude,
		}
		if err := tx.Create(&student).Error; err != nil {
			return fmt.Errorf("failed to create bible student: %w", err)
		}

		if err := tx.Delete(&models.InterestedPerson{}, person.ID).Error; err != nil {
			return fmt.Errorf("failed to remove return visit #%d: %w", person.ID, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &student, nil
}
