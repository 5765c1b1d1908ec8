package db

import (
	"fmt"

	"github.com/balkashynov/servicenote/internal/models"
)

// NoteInput holds the editable fields of a note
type NoteInput struct {
	Title       string `validate:"required,max=120"`
	Content     string `validate:"required"`
	DateCreated string `validate:"omitempty,datetime=2006-01-02"`
}

// CreateNote adds a note
func (s *Store) CreateNote(input NoteInput) (*models.Note, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("invalid note: %w", err)
	}

	note := models.Note{Title: input.Title, Content: input.Content, DateCreated: input.DateCreated}
	if err := s.database.Create(&note).Error; err != nil {
		return nil, err
	}
	return &note, nil
}

// GetNote retrieves a note by ID
func (s *Store) GetNote(id uint) (*models.Note, error) {
	var note models.Note
	if err := s.database.First(&note, id).Error; err != nil {
		return nil, notFound(err, ErrNoteNotFound)
	}
	return &note, nil
}

// ListNotes returns every note, newest first
func (s *Store) ListNotes() ([]models.Note, error) {
	notes := make([]models.Note, 0)
	if err := s.database.Order("date_created DESC, id DESC").Find(&notes).Error; err != nil {
		return nil, err
	}
	return notes, nil
}

// UpdateNote changes a note's title and content
func (s *Store) UpdateNote(id uint, title, content string) (*models.Note, error) {
	note, err := s.GetNote(id)
	if err != nil {
		return nil, err
	}

	input := NoteInput{Title: title, Content: content, DateCreated: note.DateCreated}
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("invalid note: %w", err)
	}

	note.Title = title
	note.Content = content
	if err := s.database.Save(note).Error; err != nil {
		return nil, err
	}
	return note, nil
}

// DeleteNote removes a note
func (s *Store) DeleteNote(id uint) error {
	result := s.database.Delete(&models.Note{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNoteNotFound
	}
	return nil
}
