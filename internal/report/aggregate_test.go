package report

import (
	"math"
	"testing"

	"github.com/balkashynov/servicenote/internal/models"
)

func sampleMonth() []models.DailyReport {
	return []models.DailyReport{
		{Date: "2025-04-02", Hours: 2, Placements: 1, ReturnVisits: 1, Studies: 1, Comments: "Good start"},
		{Date: "2025-04-09", Hours: 3, Placements: 3, ReturnVisits: 0, Studies: 2},
		{Date: "2025-04-16", Hours: 0, Placements: 0, ReturnVisits: 1, Studies: 3, Comments: "ignored"},
	}
}

func TestSum(t *testing.T) {
	records := sampleMonth()

	tests := []struct {
		field Field
		want  float64
	}{
		{FieldHours, 5},
		{FieldPlacements, 4},
		{FieldReturnVisits, 2},
		{FieldStudies, 6},
		{Field("minutes"), 0},
	}

	for _, tt := range tests {
		t.Run(string(tt.field), func(t *testing.T) {
			if got := Sum(records, tt.field); got != tt.want {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestSumEmptyAndNonFinite(t *testing.T) {
	if got := Sum(nil, FieldHours); got != 0 {
		t.Fatalf("expected 0 for no records, got %v", got)
	}

	records := []models.DailyReport{
		{Hours: 1.5},
		{Hours: math.NaN()},
		{Hours: math.Inf(1)},
		{Hours: 0.5},
	}
	if got := Sum(records, FieldHours); got != 2 {
		t.Fatalf("expected non-finite hours to be skipped, got %v", got)
	}
}

func TestAggregateUsesDistinctStudents(t *testing.T) {
	totals := Aggregate("2025-04", sampleMonth(), 2)

	want := Totals{
		Month:        "2025-04",
		Hours:        5,
		Placements:   4,
		ReturnVisits: 2,
		Studies:      2,
		Comments:     "Good start",
	}
	if totals != want {
		t.Fatalf("expected %+v, got %+v", want, totals)
	}
}

func TestAggregateEmptyMonth(t *testing.T) {
	totals := Aggregate("2025-05", nil, 0)

	if totals.Hours != 0 || totals.Placements != 0 || totals.ReturnVisits != 0 || totals.Studies != 0 {
		t.Fatalf("expected zero totals, got %+v", totals)
	}
	if totals.Comments != "" {
		t.Fatalf("expected no comments, got %q", totals.Comments)
	}
}

func TestAggregateFallsBackWhenNotCounted(t *testing.T) {
	totals := Aggregate("2025-04", sampleMonth(), StudentsNotCounted)
	if totals.Studies != DefaultStudentCount {
		t.Fatalf("expected %d studies, got %d", DefaultStudentCount, totals.Studies)
	}
}

func TestFromMonthly(t *testing.T) {
	m := models.MonthlyReport{Month: "2024-12", Hours: 10.5, Placements: 3, ReturnVisits: 4, Studies: 1, Comments: "x"}
	got := FromMonthly(m)
	want := Totals{Month: "2024-12", Hours: 10.5, Placements: 3, ReturnVisits: 4, Studies: 1, Comments: "x"}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}
