package tui

import (
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/balkashynov/servicenote/internal/db"
	"github.com/balkashynov/servicenote/internal/models"
	"github.com/balkashynov/servicenote/internal/report"
)

type memoryStore struct {
	days    []models.DailyReport
	monthly map[string]models.MonthlyReport
}

func (s *memoryStore) ListDailyReportsForMonth(month string) ([]models.DailyReport, error) {
	out := []models.DailyReport{}
	for _, d := range s.days {
		if d.Month() == month {
			out = append(out, d)
		}
	}
	return out, nil
}

func (s *memoryStore) CountDistinctStudents(month string) (int, error) {
	return 1, nil
}

func (s *memoryStore) UpsertMonthlyReport(input db.MonthlyReportInput) (db.UpsertResult, error) {
	_, exists := s.monthly[input.Month]
	s.monthly[input.Month] = models.MonthlyReport{
		Month:        input.Month,
		Hours:        input.Hours,
		Placements:   input.Placements,
		ReturnVisits: input.ReturnVisits,
		Studies:      input.Studies,
	}
	if exists {
		return db.UpsertResult{Message: db.MsgMonthlyUpdated}, nil
	}
	return db.UpsertResult{Created: true, Message: db.MsgMonthlyCreated}, nil
}

func (s *memoryStore) FindMonthlyReport(month string) (models.MonthlyReport, bool, error) {
	m, ok := s.monthly[month]
	return m, ok, nil
}

func (s *memoryStore) ListRecentMonthlyReports(limit int) ([]models.MonthlyReport, error) {
	return nil, nil
}

func (s *memoryStore) DeleteDailyReport(id uint) error {
	for i, d := range s.days {
		if d.ID == id {
			s.days = append(s.days[:i], s.days[i+1:]...)
			return nil
		}
	}
	return db.ErrDailyReportNotFound
}

type recordingSink struct {
	text string
	err  error
}

func (s *recordingSink) Share(text string) error {
	s.text = text
	return s.err
}

func newTestReportModel(store *memoryStore, today time.Time) ReportModel {
	reporter := report.NewReporter(store, store, store)
	return NewReportModel(reporter, store, today, false)
}

func press(m ReportModel, key string) ReportModel {
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)})
	return updated.(ReportModel)
}

func testStore() *memoryStore {
	return &memoryStore{
		days: []models.DailyReport{
			{ID: 1, Date: "2025-02-20", Hours: 3},
			{ID: 2, Date: "2025-03-01", Hours: 1.5, Placements: 2},
			{ID: 3, Date: "2025-03-02", Hours: 1},
		},
		monthly: map[string]models.MonthlyReport{},
	}
}

func TestReportModelSwitchesMonth(t *testing.T) {
	m := newTestReportModel(testStore(), time.Date(2025, 3, 3, 9, 0, 0, 0, time.UTC))

	if !m.promptLate {
		t.Fatal("expected late prompt in the first week")
	}
	if m.totals.Month != "2025-03" || m.totals.Hours != 2.5 || len(m.records) != 2 {
		t.Fatalf("unexpected current month %+v", m.totals)
	}

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	m = updated.(ReportModel)
	if !m.late || m.totals.Month != "2025-02" || m.totals.Hours != 3 {
		t.Fatalf("expected February after switching, got %+v", m.totals)
	}
}

func TestReportModelSaveClearsLatePrompt(t *testing.T) {
	store := testStore()
	m := newTestReportModel(store, time.Date(2025, 3, 3, 9, 0, 0, 0, time.UTC))

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m = press(updated.(ReportModel), "s")

	if m.statusIsError || m.status != db.MsgMonthlyCreated {
		t.Fatalf("unexpected status %q", m.status)
	}
	if m.promptLate {
		t.Fatal("expected late prompt to clear after saving last month")
	}
	if _, ok := store.monthly["2025-02"]; !ok {
		t.Fatal("expected February to be saved")
	}

	m = press(m, "s")
	if m.status != db.MsgMonthlyUpdated {
		t.Fatalf("expected update message on second save, got %q", m.status)
	}
}

func TestReportModelDeleteNeedsConfirmation(t *testing.T) {
	store := testStore()
	m := newTestReportModel(store, time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC))

	m = press(m, "d")
	if !m.confirmDelete {
		t.Fatal("expected delete to ask for confirmation")
	}
	m = press(m, "n")
	if len(store.days) != 3 {
		t.Fatal("expected nothing deleted after declining")
	}

	m = press(press(m, "d"), "y")
	if len(store.days) != 2 || len(m.records) != 1 {
		t.Fatalf("expected one March day left, got %d records", len(m.records))
	}
	if m.totals.Hours != 1 {
		t.Fatalf("expected totals to be recalculated, got %+v", m.totals)
	}
}

func TestReportModelCopy(t *testing.T) {
	m := newTestReportModel(testStore(), time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC))
	sink := &recordingSink{}
	m.sink = sink

	m = press(press(m, "p"), "c")
	if !m.pioneer {
		t.Fatal("expected pioneer form after toggling")
	}
	if sink.text != "March 2025\nHours: 2.5\nBible Studies: 1\nComments: None" {
		t.Fatalf("unexpected shared text %q", sink.text)
	}

	sink.err = errors.New("no clipboard")
	m = press(m, "c")
	if !m.statusIsError {
		t.Fatal("expected copy failure to be reported")
	}
}
