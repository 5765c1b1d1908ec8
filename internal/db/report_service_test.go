package db

import "testing"

func TestLogDayRecordsStudents(t *testing.T) {
	store := newTestStore(t)

	report, err := store.LogDay(DailyReportInput{Date: "2025-04-02", Hours: 2.5, Placements: 3, Studies: 2},
		[]StudentRef{{ID: 1, Name: "Ana"}, {ID: 2, Name: "Ben"}})
	if err != nil {
		t.Fatalf("log day: %v", err)
	}
	if report.ID == 0 || report.Month() != "2025-04" {
		t.Fatalf("unexpected report %+v", report)
	}

	if _, err := store.LogDay(DailyReportInput{Date: "2025-04-09", Hours: 1}, []StudentRef{{ID: 1, Name: "Ana"}}); err != nil {
		t.Fatalf("log second day: %v", err)
	}

	rows, err := store.ListStudentMonths("2025-04")
	if err != nil {
		t.Fatalf("list student months: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected 3 association rows, got %d", len(rows))
	}

	count, err := store.CountDistinctStudents("2025-04")
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected 2 distinct students, got %d", count)
	}
}

func TestLogDayRejectsInvalidInput(t *testing.T) {
	store := newTestStore(t)

	tests := []struct {
		name  string
		input DailyReportInput
	}{
		{"missing date", DailyReportInput{Hours: 1}},
		{"bad date", DailyReportInput{Date: "02/04/2025"}},
		{"negative hours", DailyReportInput{Date: "2025-04-02", Hours: -1}},
		{"too many hours", DailyReportInput{Date: "2025-04-02", Hours: 25}},
		{"negative placements", DailyReportInput{Date: "2025-04-02", Placements: -2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := store.LogDay(tt.input, []StudentRef{{ID: 1, Name: "Ana"}}); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}

	rows, err := store.ListStudentMonths("2025-04")
	if err != nil {
		t.Fatalf("list student months: %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("expected no association rows after rejected input, got %d", len(rows))
	}
}

func TestListDailyReportsForMonth(t *testing.T) {
	store := newTestStore(t)

	for _, date := range []string{"2025-04-20", "2025-03-31", "2025-04-01", "2025-05-01"} {
		if _, err := store.LogDay(DailyReportInput{Date: date, Hours: 1}, nil); err != nil {
			t.Fatalf("log %s: %v", date, err)
		}
	}

	april, err := store.ListDailyReportsForMonth("2025-04")
	if err != nil {
		t.Fatalf("list month: %v", err)
	}
	if len(april) != 2 {
		t.Fatalf("expected 2 April days, got %d", len(april))
	}
	if april[0].Date != "2025-04-01" || april[1].Date != "2025-04-20" {
		t.Fatalf("expected April days oldest first, got %s, %s", april[0].Date, april[1].Date)
	}

	if _, err := store.ListDailyReportsForMonth("2025-4"); err == nil {
		t.Fatal("expected error for malformed month")
	}

	all, err := store.ListDailyReports()
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(all) != 4 || all[0].Date != "2025-05-01" {
		t.Fatalf("expected all days newest first, got %d rows starting %s", len(all), all[0].Date)
	}
}

func TestUpdateAndDeleteDailyReport(t *testing.T) {
	store := newTestStore(t)

	report, err := store.LogDay(DailyReportInput{Date: "2025-04-02", Hours: 1}, nil)
	if err != nil {
		t.Fatalf("log day: %v", err)
	}

	updated, err := store.UpdateDailyReport(report.ID, DailyReportInput{Date: "2025-04-03", Hours: 0, Placements: 2, Comments: "moved"})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Date != "2025-04-03" || updated.Hours != 0 || updated.Placements != 2 {
		t.Fatalf("unexpected update result %+v", updated)
	}

	if err := store.DeleteDailyReport(report.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := store.GetDailyReport(report.ID); err == nil {
		t.Fatal("expected report to be gone")
	}
}

func TestCountDistinctStudentsEmptyMonth(t *testing.T) {
	store := newTestStore(t)

	count, err := store.CountDistinctStudents("2025-04")
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected 0, got %d", count)
	}

	if err := store.AddStudentMonth(1, "Ana", "April"); err == nil {
		t.Fatal("expected error for malformed month")
	}
}
