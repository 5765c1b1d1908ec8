package db

import (
	"errors"
	"regexp"
	"strconv"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

var (
	ErrDailyReportNotFound      = errors.New("report not found")
	ErrBibleStudentNotFound     = errors.New("bible student not found")
	ErrInterestedPersonNotFound = errors.New("return visit not found")
	ErrNoteNotFound             = errors.New("note not found")
)

var monthKeyPattern = regexp.MustCompile(`^(\d{4})-(\d{2})$`)

// Store groups every persistence operation over one database handle
type Store struct {
	database *gorm.DB
	validate *validator.Validate
}

// NewStore wraps an open database handle
func NewStore(database *gorm.DB) *Store {
	return &Store{
		database: database,
		validate: newValidator(),
	}
}

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("monthkey", func(fl validator.FieldLevel) bool {
		return IsMonthKey(fl.Field().String())
	})
	return v
}

// IsMonthKey reports whether s is a YYYY-MM key with a month between 01 and 12
func IsMonthKey(s string) bool {
	matches := monthKeyPattern.FindStringSubmatch(s)
	if len(matches) != 3 {
		return false
	}
	month, err := strconv.Atoi(matches[2])
	if err != nil {
		return false
	}
	return month >= 1 && month <= 12
}

// notFound maps gorm's record-not-found error to a package sentinel
func notFound(err error, sentinel error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return sentinel
	}
	return err
}
