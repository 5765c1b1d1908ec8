package tui

import (
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/balkashynov/servicenote/internal/db"
	"github.com/balkashynov/servicenote/internal/models"
)

type stubLogger struct {
	refs     []db.StudentRef
	logged   []db.DailyReportInput
	students [][]db.StudentRef
	err      error
}

func (s *stubLogger) LogDay(input db.DailyReportInput, students []db.StudentRef) (*models.DailyReport, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.logged = append(s.logged, input)
	s.students = append(s.students, students)
	return &models.DailyReport{ID: uint(len(s.logged)), Date: input.Date, Hours: input.Hours}, nil
}

func (s *stubLogger) ListStudentRefs() ([]db.StudentRef, error) {
	return s.refs, nil
}

func newTestLogModel(logger *stubLogger) LogDayModel {
	m := NewLogDayModel(logger, "2025-04-02")
	m.now = func() time.Time { return time.Date(2025, 4, 2, 12, 0, 0, 0, time.UTC) }
	return m
}

func TestLogDayModelBuild(t *testing.T) {
	logger := &stubLogger{refs: []db.StudentRef{{ID: 3, Name: "Ana"}, {ID: 6, Name: "Ben"}}}
	m := newTestLogModel(logger)
	m.inputs[fieldHours].SetValue("2.5")
	m.inputs[fieldPlacements].SetValue("3")
	m.inputs[fieldStudents].SetValue("3,6")
	m.inputs[fieldComment].SetValue("Cart witnessing")

	input, students, err := m.build()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if input.Date != "2025-04-02" || input.Hours != 2.5 || input.Placements != 3 || input.Comments != "Cart witnessing" {
		t.Fatalf("unexpected input %+v", input)
	}
	if input.Studies != 2 {
		t.Fatalf("expected studies to default to the number of students, got %d", input.Studies)
	}
	if len(students) != 2 || students[1].Name != "Ben" {
		t.Fatalf("unexpected students %+v", students)
	}
}

func TestLogDayModelBuildErrors(t *testing.T) {
	tests := []struct {
		name  string
		field int
		value string
	}{
		{"bad date", fieldDate, "someday"},
		{"bad hours", fieldHours, "two"},
		{"bad placements", fieldPlacements, "1.5"},
		{"unknown student", fieldStudents, "42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestLogModel(&stubLogger{refs: []db.StudentRef{{ID: 3, Name: "Ana"}}})
			m.inputs[tt.field].SetValue(tt.value)
			if _, _, err := m.build(); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestLogDayModelSubmit(t *testing.T) {
	logger := &stubLogger{}
	m := newTestLogModel(logger)
	m.inputs[fieldHours].SetValue("1")

	next, cmd := m.submit()
	if !next.completed || next.saved == nil || cmd == nil {
		t.Fatalf("expected completed model with quit command, got %+v", next)
	}
	if len(logger.logged) != 1 || logger.logged[0].Hours != 1 {
		t.Fatalf("expected one logged day, got %+v", logger.logged)
	}

	logger.err = errors.New("invalid report")
	failed, _ := newTestLogModel(logger).submit()
	if failed.completed || failed.validationErr == "" {
		t.Fatalf("expected validation error to be shown, got %+v", failed)
	}
}

func TestLogDayModelFocusWraps(t *testing.T) {
	m := newTestLogModel(&stubLogger{})
	if m.focus != fieldHours {
		t.Fatalf("expected hours to be focused first, got %d", m.focus)
	}

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	updated, _ = updated.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	if got := updated.(LogDayModel).focus; got != fieldComment {
		t.Fatalf("expected focus to wrap to the comment field, got %d", got)
	}
}
