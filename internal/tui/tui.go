package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/balkashynov/servicenote/internal/report"
)

// RunReportTUI starts the interactive report browser
func RunReportTUI(reporter *report.Reporter, days DayRemover, today time.Time, pioneer bool) error {
	model := NewReportModel(reporter, days, today, pioneer)

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// RunLogDayTUI starts the form for logging one day
func RunLogDayTUI(logger DayLogger, day string) error {
	model := NewLogDayModel(logger, day)

	p := tea.NewProgram(model, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	if m, ok := finalModel.(LogDayModel); ok {
		if m.cancelled {
			fmt.Println("❌ Nothing logged.")
		} else if m.completed && m.saved != nil {
			fmt.Printf("✅ Logged report #%d for %s (%s hours)\n", m.saved.ID, m.saved.Date, report.FormatHours(m.saved.Hours))
			if len(m.savedStudents) > 0 {
				names := make([]string, 0, len(m.savedStudents))
				for _, s := range m.savedStudents {
					names = append(names, s.Name)
				}
				fmt.Printf("   Students: %s\n", strings.Join(names, ", "))
			}
		}
	}

	return nil
}
