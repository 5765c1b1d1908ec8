// Package report rolls daily service activity up into monthly totals and
// renders them for sharing.
package report

import (
	"math"

	"github.com/balkashynov/servicenote/internal/models"
)

// Field names a numeric column of a daily report
type Field string

const (
	FieldHours        Field = "hours"
	FieldPlacements   Field = "placements"
	FieldReturnVisits Field = "return_visits"
	FieldStudies      Field = "studies"
)

const (
	// StudentsNotCounted tells Aggregate that no distinct count was computed
	StudentsNotCounted = -1
	// DefaultStudentCount is used in place of a missing distinct count.
	// Kept at 1 to match what saved reports have always shown.
	DefaultStudentCount = 1
)

// Totals is a month's rolled-up activity
type Totals struct {
	Month        string  `json:"month"`
	Hours        float64 `json:"hours"`
	Placements   int     `json:"placements"`
	ReturnVisits int     `json:"return_visits"`
	Studies      int     `json:"studies"`
	Comments     string  `json:"comments,omitempty"`
}

// Sum adds up one field across the records. Unknown fields and non-finite
// values count as zero.
func Sum(records []models.DailyReport, field Field) float64 {
	var total float64
	for _, r := range records {
		v := fieldValue(r, field)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		total += v
	}
	return total
}

func fieldValue(r models.DailyReport, field Field) float64 {
	switch field {
	case FieldHours:
		return r.Hours
	case FieldPlacements:
		return float64(r.Placements)
	case FieldReturnVisits:
		return float64(r.ReturnVisits)
	case FieldStudies:
		return float64(r.Studies)
	default:
		return 0
	}
}

// Aggregate builds the month's totals. The studies figure is always the
// distinct student count, never the sum of the per-day studies field.
// Comments are taken from the first record.
func Aggregate(month string, records []models.DailyReport, distinctStudents int) Totals {
	if distinctStudents < 0 {
		distinctStudents = DefaultStudentCount
	}

	totals := Totals{
		Month:        month,
		Hours:        Sum(records, FieldHours),
		Placements:   int(Sum(records, FieldPlacements)),
		ReturnVisits: int(Sum(records, FieldReturnVisits)),
		Studies:      distinctStudents,
	}
	if len(records) > 0 {
		totals.Comments = records[0].Comments
	}
	return totals
}

// FromMonthly converts a saved monthly summary back into totals
func FromMonthly(m models.MonthlyReport) Totals {
	return Totals{
		Month:        m.Month,
		Hours:        m.Hours,
		Placements:   m.Placements,
		ReturnVisits: m.ReturnVisits,
		Studies:      m.Studies,
		Comments:     m.Comments,
	}
}
