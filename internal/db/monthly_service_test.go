package db

import (
	"testing"

	"github.com/balkashynov/servicenote/internal/models"
)

func strPtr(s string) *string { return &s }

func TestUpsertMonthlyReportCreatesThenUpdates(t *testing.T) {
	store := newTestStore(t)

	first, err := store.UpsertMonthlyReport(MonthlyReportInput{
		Month:        "2025-04",
		Hours:        12,
		Placements:   5,
		ReturnVisits: 3,
		Studies:      2,
		Comments:     strPtr("first"),
	})
	if err != nil {
		t.Fatalf("first upsert: %v", err)
	}
	if !first.Created || first.Message != MsgMonthlyCreated {
		t.Fatalf("expected created result, got %+v", first)
	}

	second, err := store.UpsertMonthlyReport(MonthlyReportInput{
		Month:        "2025-04",
		Hours:        0,
		Placements:   1,
		ReturnVisits: 0,
		Studies:      4,
	})
	if err != nil {
		t.Fatalf("second upsert: %v", err)
	}
	if second.Created || second.Message != MsgMonthlyUpdated {
		t.Fatalf("expected updated result, got %+v", second)
	}

	var count int64
	if err := store.database.Model(&models.MonthlyReport{}).Where("month = ?", "2025-04").Count(&count).Error; err != nil {
		t.Fatalf("count rows: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected exactly one row for the month, got %d", count)
	}

	saved, found, err := store.FindMonthlyReport("2025-04")
	if err != nil || !found {
		t.Fatalf("expected saved month, found=%v err=%v", found, err)
	}
	if saved.Hours != 0 || saved.Placements != 1 || saved.ReturnVisits != 0 || saved.Studies != 4 {
		t.Fatalf("expected second values to win, got %+v", saved)
	}
	if saved.Comments != "first" {
		t.Fatalf("expected comments to be kept when not given, got %q", saved.Comments)
	}
}

func TestUpsertMonthlyReportRejectsBadMonth(t *testing.T) {
	store := newTestStore(t)

	for _, month := range []string{"", "2025-13", "April", "2025-04-01"} {
		if _, err := store.UpsertMonthlyReport(MonthlyReportInput{Month: month}); err == nil {
			t.Fatalf("expected error for month %q", month)
		}
	}
	if _, err := store.UpsertMonthlyReport(MonthlyReportInput{Month: "2025-04", Hours: -1}); err == nil {
		t.Fatal("expected error for negative hours")
	}
}

func TestFindMonthlyReportMissing(t *testing.T) {
	store := newTestStore(t)

	_, found, err := store.FindMonthlyReport("2030-01")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found {
		t.Fatal("expected month not to be found")
	}
}

func TestListRecentMonthlyReports(t *testing.T) {
	store := newTestStore(t)

	for _, month := range []string{"2025-01", "2025-03", "2024-12", "2025-02"} {
		if _, err := store.UpsertMonthlyReport(MonthlyReportInput{Month: month}); err != nil {
			t.Fatalf("upsert %s: %v", month, err)
		}
	}

	recent, err := store.ListRecentMonthlyReports(0)
	if err != nil {
		t.Fatalf("list recent: %v", err)
	}
	if len(recent) != DefaultRecentMonths {
		t.Fatalf("expected %d months, got %d", DefaultRecentMonths, len(recent))
	}
	want := []string{"2025-03", "2025-02", "2025-01"}
	for i, m := range recent {
		if m.Month != want[i] {
			t.Fatalf("expected %v, got month %s at %d", want, m.Month, i)
		}
	}
}
