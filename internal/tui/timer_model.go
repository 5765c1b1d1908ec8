package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/balkashynov/servicenote/internal/db"
	"github.com/balkashynov/servicenote/internal/models"
	"github.com/balkashynov/servicenote/internal/report"
)

// SessionStopper finishes the running service session
type SessionStopper interface {
	StopActiveSession(now time.Time) (*models.ServiceSession, *models.DailyReport, error)
}

// TimerModel shows a running service session as a big clock
type TimerModel struct {
	width   int
	height  int
	session *models.ServiceSession
	now     func() time.Time

	elapsed time.Duration
	frame   int

	stopping bool // s pressed: stop and log the time
	leaving  bool // q/esc pressed: keep the session running
}

// timerTickMsg is sent every second to update the clock
type timerTickMsg struct{}

// NewTimerModel creates a timer for a running session
func NewTimerModel(session *models.ServiceSession) TimerModel {
	m := TimerModel{session: session, now: time.Now}
	m.elapsed = m.now().Sub(session.StartedAt)
	return m
}

func timerTick() tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return timerTickMsg{}
	})
}

// Init initializes the model
func (m TimerModel) Init() tea.Cmd {
	return timerTick()
}

// Update handles messages
func (m TimerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case timerTickMsg:
		m.elapsed = m.now().Sub(m.session.StartedAt)
		m.frame = (m.frame + 1) % 2
		if m.stopping || m.leaving {
			return m, nil
		}
		return m, timerTick()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "s", "S":
			m.stopping = true
			return m, tea.Quit
		case "ctrl+c", "esc", "q":
			m.leaving = true
			return m, tea.Quit
		}
	}

	return m, nil
}

// View renders the TUI
func (m TimerModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	center := lipgloss.NewStyle().Width(m.width).Align(lipgloss.Center)

	header := "🕊  IN SERVICE"
	if m.frame == 1 {
		header = "🕊  IN SERVICE ·"
	}

	parts := []string{
		center.Inherit(lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorAccentBright))).Render(header),
		center.Render(renderBigClock(m.elapsed)),
		center.Inherit(lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText)).Italic(true)).
			Render(fmt.Sprintf("Started at %s · logs as %s hours",
				m.session.StartedAt.In(time.Local).Format("15:04"),
				report.FormatHours(db.SessionHours(m.elapsed)))),
	}
	if m.session.Note != "" {
		parts = append(parts, center.Render("💬 "+m.session.Note))
	}

	body := lipgloss.NewStyle().
		Width(m.width).
		Height(m.height-2).
		Align(lipgloss.Center, lipgloss.Center).
		Render(strings.Join(parts, "\n\n"))

	help := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHelpText)).
		Italic(true).
		Align(lipgloss.Center).
		Width(m.width).
		Render("s stop & log · esc/q leave running")

	return lipgloss.JoinVertical(lipgloss.Left, body, help)
}

// clockGlyphs are five-row block digits
var clockGlyphs = map[rune][5]string{
	'0': {" ███ ", "█   █", "█   █", "█   █", " ███ "},
	'1': {"  █  ", " ██  ", "  █  ", "  █  ", "█████"},
	'2': {" ███ ", "█   █", "   █ ", "  █  ", "█████"},
	'3': {" ███ ", "█   █", "  ██ ", "█   █", " ███ "},
	'4': {"█   █", "█   █", "█████", "    █", "    █"},
	'5': {"█████", "█    ", "████ ", "    █", "████ "},
	'6': {" ███ ", "█    ", "████ ", "█   █", " ███ "},
	'7': {"█████", "    █", "   █ ", "  █  ", " █   "},
	'8': {" ███ ", "█   █", " ███ ", "█   █", " ███ "},
	'9': {" ███ ", "█   █", " ████", "    █", " ███ "},
	':': {"     ", "  █  ", "     ", "  █  ", "     "},
}

// clockText formats d as HH:MM:SS
func clockText(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d.Seconds())
	return fmt.Sprintf("%02d:%02d:%02d", total/3600, (total/60)%60, total%60)
}

func renderBigClock(d time.Duration) string {
	var rows [5]strings.Builder
	for _, r := range clockText(d) {
		glyph, ok := clockGlyphs[r]
		if !ok {
			continue
		}
		for i := range rows {
			rows[i].WriteString(glyph[i])
			rows[i].WriteString(" ")
		}
	}

	style := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright)).Bold(true)
	lines := make([]string, len(rows))
	for i := range rows {
		lines[i] = style.Render(rows[i].String())
	}
	return strings.Join(lines, "\n")
}

// RunTimerTUI shows the running session until it is stopped or left running
func RunTimerTUI(session *models.ServiceSession, stopper SessionStopper) error {
	p := tea.NewProgram(NewTimerModel(session), tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	m, ok := finalModel.(TimerModel)
	if !ok {
		return nil
	}
	if m.stopping {
		stopped, day, err := stopper.StopActiveSession(time.Now())
		if err != nil {
			return fmt.Errorf("failed to stop session: %w", err)
		}
		fmt.Printf("⏹️  Service session stopped after %s\n", clockText(time.Duration(stopped.DurationSeconds)*time.Second))
		fmt.Printf("📊 Logged %s hours as report #%d for %s\n", report.FormatHours(day.Hours), day.ID, day.Date)
	} else if m.leaving {
		fmt.Println("💡 The session is still running. Use 'servicenote stop' to stop it and log the time.")
	}
	return nil
}
