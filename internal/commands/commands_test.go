package commands

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/balkashynov/servicenote/internal/db"
	"github.com/balkashynov/servicenote/internal/parser"
)

func run(t *testing.T, args ...string) {
	t.Helper()
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("servicenote %v: %v", args, err)
	}
}

func TestLogThenSaveMonth(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dbPath := filepath.Join(t.TempDir(), "servicenote.db")

	restore := now
	now = func() time.Time { return time.Date(2025, 4, 20, 18, 0, 0, 0, time.UTC) }
	t.Cleanup(func() { now = restore })

	run(t, "--db", dbPath, "student", "add", "Ana")
	run(t, "--db", dbPath, "log", "2025-04-02", "-q", "2h 3p 1rv #1 Cart witnessing")
	run(t, "--db", dbPath, "report", "save", "-m", "2025-04")

	database, err := db.Open(dbPath)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer db.Close(database)
	store := db.NewStore(database)

	days, err := store.ListDailyReportsForMonth("2025-04")
	if err != nil {
		t.Fatalf("list days: %v", err)
	}
	if len(days) != 1 || days[0].Hours != 2 || days[0].Placements != 3 || days[0].Studies != 1 || days[0].Comments != "Cart witnessing" {
		t.Fatalf("unexpected logged days %+v", days)
	}

	saved, found, err := store.FindMonthlyReport("2025-04")
	if err != nil || !found {
		t.Fatalf("expected April to be saved, found=%v err=%v", found, err)
	}
	if saved.Hours != 2 || saved.ReturnVisits != 1 || saved.Studies != 1 {
		t.Fatalf("unexpected saved totals %+v", saved)
	}
}

func TestApplyActivity(t *testing.T) {
	input := db.DailyReportInput{Date: "2025-04-02", Hours: 1, Placements: 9}
	applyActivity(&input, parser.ParseActivity("3h 2bs visited Ana"))

	if input.Hours != 3 || input.Placements != 9 || input.Studies != 2 || input.Comments != "visited Ana" {
		t.Fatalf("unexpected input %+v", input)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"short", 10, "short"},
		{"exactly ten", 11, "exactly ten"},
		{"a much longer name", 10, "a much ..."},
		{"abcdef", 3, "abc"},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.width); got != tt.want {
			t.Fatalf("truncate(%q, %d): expected %q, got %q", tt.in, tt.width, tt.want, got)
		}
	}
}
