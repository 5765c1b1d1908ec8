package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/balkashynov/servicenote/internal/models"
	"github.com/balkashynov/servicenote/internal/report"
)

// DayRemover deletes logged days from the report browser
type DayRemover interface {
	DeleteDailyReport(id uint) error
}

// ReportModel browses the current and the previous month's days and totals
type ReportModel struct {
	width  int
	height int

	reporter *report.Reporter
	days     DayRemover
	window   report.Window
	sink     report.Sink

	// Month data
	late    bool
	records []models.DailyReport
	totals  report.Totals
	saved   report.Totals
	isSaved bool

	// UI state
	selected      int
	pioneer       bool
	confirmDelete bool
	status        string
	statusIsError bool
	promptLate    bool

	highlight *Highlight
}

// NewReportModel creates the report browser for the window around today
func NewReportModel(reporter *report.Reporter, days DayRemover, today time.Time, pioneer bool) ReportModel {
	m := ReportModel{
		reporter:   reporter,
		days:       days,
		window:     report.NewWindow(today),
		sink:       report.ClipboardSink{},
		pioneer:    pioneer,
		promptLate: reporter.LateReportPrompt(today),
		highlight:  NewHighlight(),
	}
	m.reload()
	return m
}

// month is the key of the month on screen
func (m ReportModel) month() string {
	return m.window.MonthFor(m.late)
}

// reload reads the month on screen again
func (m *ReportModel) reload() {
	month := m.month()
	m.records = m.reporter.MonthDays(month)
	m.totals = report.Aggregate(month, m.records, m.reporter.DistinctStudents(month))
	m.saved, m.isSaved = m.reporter.Saved(month)

	if m.selected >= len(m.records) {
		m.selected = len(m.records) - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
}

func (m ReportModel) setStatus(text string, isError bool) ReportModel {
	m.status = text
	m.statusIsError = isError
	return m
}

// Init initializes the model
func (m ReportModel) Init() tea.Cmd {
	return m.highlight.Tick()
}

// Update handles messages
func (m ReportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case highlightTickMsg:
		m.highlight.Advance()
		return m, m.highlight.Tick()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.confirmDelete {
			return m.handleConfirmKeys(msg), nil
		}

		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit

		case "up", "k":
			if m.selected > 0 {
				m.selected--
				m.highlight.Reset()
			}
			return m, nil

		case "down", "j":
			if m.selected < len(m.records)-1 {
				m.selected++
				m.highlight.Reset()
			}
			return m, nil

		case "left", "h", "right", "l", "tab":
			m.late = !m.late
			m.selected = 0
			m.reload()
			m.highlight.Reset()
			return m.setStatus("", false), nil

		case "p":
			m.pioneer = !m.pioneer
			return m, nil

		case "s":
			return m.save(), nil

		case "c":
			if _, err := m.reporter.Share(m.totals, m.pioneer, m.sink); err != nil {
				return m.setStatus("Copy failed: "+err.Error(), true), nil
			}
			return m.setStatus("Report copied to clipboard", false), nil

		case "d":
			if len(m.records) == 0 {
				return m, nil
			}
			m.confirmDelete = true
			return m, nil
		}
	}

	return m, nil
}

func (m ReportModel) handleConfirmKeys(msg tea.KeyMsg) ReportModel {
	switch msg.String() {
	case "y", "Y", "enter":
		m.confirmDelete = false
		return m.deleteSelected()
	case "n", "N", "esc", "q":
		m.confirmDelete = false
	}
	return m
}

func (m ReportModel) save() ReportModel {
	result := m.reporter.SaveTotals(m.totals)
	if !result.Success {
		return m.setStatus(result.Message, true)
	}
	if m.late {
		m.promptLate = false
	}
	m.saved, m.isSaved = result.Totals, true
	return m.setStatus(result.Message, false)
}

func (m ReportModel) deleteSelected() ReportModel {
	day := m.records[m.selected]
	if err := m.days.DeleteDailyReport(day.ID); err != nil {
		return m.setStatus("Error: "+err.Error(), true)
	}
	m.reload()
	return m.setStatus(fmt.Sprintf("Deleted day #%d (%s)", day.ID, day.Date), false)
}

// View renders the TUI
func (m ReportModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	leftWidth := m.width * 60 / 100
	rightWidth := m.width - leftWidth - 1

	content := lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.renderDayTable(leftWidth),
		" ",
		m.renderSummary(rightWidth),
	)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderTabs(),
		content,
		m.renderStatus(),
		m.renderHelpBar(),
	)
}

// renderTabs shows which of the two months is on screen
func (m ReportModel) renderTabs() string {
	active := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorAccentBright)).Padding(0, 1)
	inactive := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorDisabledText)).Padding(0, 1)

	current := report.ConvertDateString(m.window.Current)
	previous := report.ConvertDateString(m.window.Previous)
	if m.promptLate {
		previous += " ⚠"
	}

	if m.late {
		return inactive.Render(current) + active.Render("▶ "+previous)
	}
	return active.Render("▶ "+current) + inactive.Render(previous)
}

func (m ReportModel) renderDayTable(width int) string {
	var b strings.Builder

	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorAccentBright))
	b.WriteString(headerStyle.Render("📅 Days"))
	b.WriteString("\n\n")

	borderStyle := lipgloss.NewStyle().
		Width(width-2).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorBorder)).
		Padding(0, 1)

	if len(m.records) == 0 {
		emptyStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText)).Italic(true)
		b.WriteString(emptyStyle.Render("Nothing logged for this month"))
		return borderStyle.Render(b.String())
	}

	columnStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorAccentMain))
	b.WriteString(columnStyle.Render(fmt.Sprintf("%-5s %-11s %6s %4s %4s %4s", "ID", "DATE", "HOURS", "PLM", "RV", "BS")))
	b.WriteString("\n")

	visible := m.height - 10
	if visible < 3 {
		visible = 3
	}
	start := 0
	if m.selected >= visible {
		start = m.selected - visible + 1
	}
	end := start + visible
	if end > len(m.records) {
		end = len(m.records)
	}

	rowStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText))
	for i := start; i < end; i++ {
		r := m.records[i]
		row := fmt.Sprintf("%-5s %-11s %6s %4d %4d %4d",
			fmt.Sprintf("#%d", r.ID), r.Date, report.FormatHours(r.Hours), r.Placements, r.ReturnVisits, r.Studies)
		if i == m.selected {
			b.WriteString("▶ " + m.highlight.Render(row))
		} else {
			b.WriteString("  " + rowStyle.Render(row))
		}
		b.WriteString("\n")
	}

	if c := m.records[m.selected].Comments; c != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText)).Italic(true).Render("💬 " + c))
	}

	return borderStyle.Render(b.String())
}

// renderSummary shows the live totals and the text that would be shared
func (m ReportModel) renderSummary(width int) string {
	var b strings.Builder

	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorAccentBright))
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText))
	valueStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText)).Bold(true)

	b.WriteString(headerStyle.Render("📋 " + report.ConvertDateString(m.totals.Month)))
	b.WriteString("\n\n")

	rows := [][2]string{
		{"Hours", report.FormatHours(m.totals.Hours)},
		{"Placements", fmt.Sprintf("%d", m.totals.Placements)},
		{"Return visits", fmt.Sprintf("%d", m.totals.ReturnVisits)},
		{"Bible studies", fmt.Sprintf("%d", m.totals.Studies)},
	}
	for _, row := range rows {
		b.WriteString(labelStyle.Render(fmt.Sprintf("%-14s", row[0])))
		b.WriteString(valueStyle.Render(row[1]))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	switch {
	case !m.isSaved:
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(ColorWarning)).Render("Not saved yet"))
	case m.saved == m.totals:
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSuccess)).Render("Saved ✓"))
	default:
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(ColorWarning)).Render("Saved totals differ, press s to update"))
	}
	b.WriteString("\n\n")

	form := "Publisher"
	if m.pioneer {
		form = "Pioneer"
	}
	b.WriteString(labelStyle.Render("Share preview (" + form + ")"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText)).Render(m.reporter.Compose(m.totals, m.pioneer)))

	return lipgloss.NewStyle().
		Width(width-2).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccentMain)).
		Padding(0, 1).
		Render(b.String())
}

func (m ReportModel) renderStatus() string {
	if m.confirmDelete && len(m.records) > 0 {
		day := m.records[m.selected]
		return lipgloss.NewStyle().Foreground(lipgloss.Color(ColorWarning)).Bold(true).
			Render(fmt.Sprintf("Delete day #%d (%s)? y/n", day.ID, day.Date))
	}
	if m.status == "" {
		return ""
	}
	color := ColorSuccess
	if m.statusIsError {
		color = ColorError
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(m.status)
}

// renderHelpBar renders the help bar with hotkey hints
func (m ReportModel) renderHelpBar() string {
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHelpText)).
		Italic(true).
		Align(lipgloss.Center).
		Width(m.width)

	return helpStyle.Render("↑/↓ nav · ←/→ month · p pioneer · s save · c copy · d delete · q/esc quit")
}
