package models

import "time"

// BibleStudent represents a person the publisher studies the Bible with
type BibleStudent struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	StudentName   string  `gorm:"not null" json:"student_name"`
	Phone         string  `json:"phone"`
	Address       string  `json:"address"`
	StudyMaterial string  `json:"study_material"`
	StudyDay      string  `json:"study_day"`
	Note          string  `json:"note"`
	Latitude      float64 `json:"latitude"`
	Longitude     float64 `json:"longitude"`
}

func (BibleStudent) TableName() string {
	return "bible_studies"
}

// InterestedPerson represents a return visit
type InterestedPerson struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Name        string  `gorm:"not null" json:"name"`
	Address     string  `json:"address"`
	Phone       string  `json:"phone"`
	Placement   string  `json:"placement"`
	Topic       string  `json:"topic"`
	Appointment string  `json:"appointment"`
	Note        string  `json:"note"`
	LastVisit   string  `gorm:"index" json:"last_visit"` // YYYY-MM-DD
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
}

func (InterestedPerson) TableName() string {
	return "interested_person"
}

// Note is a free-text personal note
type Note struct {
	ID          uint   `gorm:"primarykey" json:"id"`
	Title       string `gorm:"not null" json:"title"`
	Content     string `gorm:"not null" json:"content"`
	DateCreated string `gorm:"index" json:"date_created"`
}

func (Note) TableName() string {
	return "notes"
}
