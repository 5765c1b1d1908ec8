package db

import (
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/balkashynov/servicenote/internal/models"
)

const (
	MsgMonthlyCreated = "Monthly report saved successfully."
	MsgMonthlyUpdated = "Monthly report updated successfully."
)

// DefaultRecentMonths is how many saved months the history shows
const DefaultRecentMonths = 3

// MonthlyReportInput holds the totals saved for a month
type MonthlyReportInput struct {
	Month        string  `validate:"required,monthkey"`
	Hours        float64 `validate:"gte=0"`
	Placements   int     `validate:"gte=0"`
	ReturnVisits int     `validate:"gte=0"`
	Studies      int     `validate:"gte=0"`
	Comments     *string // nil keeps the stored comments
}

// UpsertResult tells which branch an upsert took
type UpsertResult struct {
	Created bool
	Message string
}

// UpsertMonthlyReport inserts the month's summary or, when one is already
// saved, overwrites its totals. The lookup and the write share a transaction
// and the insert carries an ON CONFLICT clause on the month key, so there is
// never more than one row per month.
func (s *Store) UpsertMonthlyReport(input MonthlyReportInput) (UpsertResult, error) {
	if err := s.validate.Struct(input); err != nil {
		return UpsertResult{}, fmt.Errorf("invalid monthly report: %w", err)
	}

	var result UpsertResult
	err := s.database.Transaction(func(tx *gorm.DB) error {
		var existing models.MonthlyReport
		lookup := tx.Where("month = ?", input.Month).Limit(1).Find(&existing)
		if lookup.Error != nil {
			return lookup.Error
		}

		if lookup.RowsAffected == 0 {
			row := models.MonthlyReport{
				Month:        input.Month,
				Hours:        input.Hours,
				Placements:   input.Placements,
				ReturnVisits: input.ReturnVisits,
				Studies:      input.Studies,
			}
			conflictColumns := []string{"hours", "placements", "return_visits", "studies", "updated_at"}
			if input.Comments != nil {
				row.Comments = *input.Comments
				conflictColumns = append(conflictColumns, "comments")
			}

			err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "month"}},
				DoUpdates: clause.AssignmentColumns(conflictColumns),
			}).Create(&row).Error
			if err != nil {
				return err
			}
			result = UpsertResult{Created: true, Message: MsgMonthlyCreated}
			return nil
		}

		// Map updates so zero totals overwrite the previous values
		updates := map[string]any{
			"hours":         input.Hours,
			"placements":    input.Placements,
			"return_visits": input.ReturnVisits,
			"studies":       input.Studies,
		}
		if input.Comments != nil {
			updates["comments"] = *input.Comments
		}
		if err := tx.Model(&existing).Updates(updates).Error; err != nil {
			return err
		}
		result = UpsertResult{Created: false, Message: MsgMonthlyUpdated}
		return nil
	})
	if err != nil {
		return UpsertResult{}, fmt.Errorf("failed to save monthly report for %s: %w", input.Month, err)
	}

	return result, nil
}

// FindMonthlyReport returns the saved summary of a month and whether it exists
func (s *Store) FindMonthlyReport(month string) (models.MonthlyReport, bool, error) {
	report := models.MonthlyReport{}
	result := s.database.Where("month = ?", month).Limit(1).Find(&report)
	if result.Error != nil {
		return models.MonthlyReport{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.MonthlyReport{}, false, nil
	}
	return report, true, nil
}

// ListRecentMonthlyReports returns up to limit saved months, newest first
func (s *Store) ListRecentMonthlyReports(limit int) ([]models.MonthlyReport, error) {
	if limit <= 0 {
		limit = DefaultRecentMonths
	}

	reports := make([]models.MonthlyReport, 0, limit)
	if err := s.database.Order("month DESC").Limit(limit).Find(&reports).Error; err != nil {
		return nil, err
	}
	return reports, nil
}
