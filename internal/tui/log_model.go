package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/balkashynov/servicenote/internal/db"
	"github.com/balkashynov/servicenote/internal/models"
	"github.com/balkashynov/servicenote/internal/parser"
)

// DayLogger saves a day of activity from the form
type DayLogger interface {
	LogDay(input db.DailyReportInput, students []db.StudentRef) (*models.DailyReport, error)
	ListStudentRefs() ([]db.StudentRef, error)
}

// Field indexes of the log form
const (
	fieldDate = iota
	fieldHours
	fieldPlacements
	fieldReturnVisits
	fieldStudents
	fieldStudies
	fieldComment
	fieldCount
)

var fieldLabels = [fieldCount]string{
	"📅 Date",
	"⏱  Hours",
	"📚 Placements",
	"🔁 Return visits",
	"👥 Students",
	"📖 Studies",
	"💬 Comment",
}

// LogDayModel is a form for logging one day
type LogDayModel struct {
	width  int
	height int

	logger   DayLogger
	now      func() time.Time
	inputs   []textinput.Model
	focus    int
	students []db.StudentRef

	validationErr string
	err           error
	cancelled     bool
	completed     bool
	saved         *models.DailyReport
	savedStudents []db.StudentRef
}

// NewLogDayModel creates the form with the date prefilled
func NewLogDayModel(logger DayLogger, day string) LogDayModel {
	inputs := make([]textinput.Model, fieldCount)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 40
		inputs[i].TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText))
		inputs[i].PlaceholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPlaceholder))
		inputs[i].Cursor.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright))
	}

	inputs[fieldDate].Placeholder = "today, yesterday, dd/mm/yyyy"
	inputs[fieldDate].SetValue(day)
	inputs[fieldDate].CharLimit = 20
	inputs[fieldHours].Placeholder = "0"
	inputs[fieldHours].CharLimit = 5
	inputs[fieldPlacements].Placeholder = "0"
	inputs[fieldPlacements].CharLimit = 4
	inputs[fieldReturnVisits].Placeholder = "0"
	inputs[fieldReturnVisits].CharLimit = 4
	inputs[fieldStudents].Placeholder = "Student IDs, e.g. 3,6"
	inputs[fieldStudents].CharLimit = 60
	inputs[fieldStudies].Placeholder = "Defaults to the number of students"
	inputs[fieldStudies].CharLimit = 4
	inputs[fieldComment].Placeholder = "Optional"
	inputs[fieldComment].CharLimit = 500

	m := LogDayModel{
		logger: logger,
		now:    time.Now,
		inputs: inputs,
		focus:  fieldHours,
	}
	m.inputs[m.focus].Focus()

	refs, err := logger.ListStudentRefs()
	if err != nil {
		m.err = err
	}
	m.students = refs
	return m
}

// Init initializes the model
func (m LogDayModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m LogDayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.cancelled = true
			return m, tea.Quit

		case "ctrl+s":
			return m.submit()

		case "enter":
			if m.focus == fieldComment {
				return m.submit()
			}
			return m.moveFocus(1), nil

		case "tab", "down":
			return m.moveFocus(1), nil

		case "shift+tab", "up":
			return m.moveFocus(-1), nil
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m LogDayModel) moveFocus(delta int) LogDayModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + delta + fieldCount) % fieldCount
	m.inputs[m.focus].Focus()
	m.validationErr = ""
	return m
}

// build turns the form into a report input, or reports the first bad field
func (m LogDayModel) build() (db.DailyReportInput, []db.StudentRef, error) {
	var input db.DailyReportInput

	day, err := parser.ParseDay(m.value(fieldDate), m.now())
	if err != nil {
		return input, nil, err
	}
	input.Date = day

	if v := m.value(fieldHours); v != "" {
		hours, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return input, nil, fmt.Errorf("hours must be a number")
		}
		input.Hours = hours
	}

	counts := []struct {
		field int
		dst   *int
		name  string
	}{
		{fieldPlacements, &input.Placements, "placements"},
		{fieldReturnVisits, &input.ReturnVisits, "return visits"},
		{fieldStudies, &input.Studies, "studies"},
	}
	for _, c := range counts {
		v := m.value(c.field)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return input, nil, fmt.Errorf("%s must be a whole number", c.name)
		}
		*c.dst = n
	}
	input.Comments = m.value(fieldComment)

	students, err := m.selectedStudents()
	if err != nil {
		return input, nil, err
	}
	if input.Studies == 0 {
		input.Studies = len(students)
	}
	return input, students, nil
}

// selectedStudents resolves the typed IDs against the known students
func (m LogDayModel) selectedStudents() ([]db.StudentRef, error) {
	ids, err := parser.ParseIDList(m.value(fieldStudents))
	if err != nil {
		return nil, err
	}

	byID := make(map[uint]db.StudentRef, len(m.students))
	for _, s := range m.students {
		byID[s.ID] = s
	}

	refs := make([]db.StudentRef, 0, len(ids))
	for _, id := range ids {
		ref, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("no Bible student with ID %d", id)
		}
		refs = append(refs, ref)
	}
	return refs, nil
}

func (m LogDayModel) value(field int) string {
	return strings.TrimSpace(m.inputs[field].Value())
}

func (m LogDayModel) submit() (LogDayModel, tea.Cmd) {
	input, students, err := m.build()
	if err != nil {
		m.validationErr = err.Error()
		return m, nil
	}

	saved, err := m.logger.LogDay(input, students)
	if err != nil {
		m.validationErr = err.Error()
		return m, nil
	}

	m.saved = saved
	m.savedStudents = students
	m.completed = true
	return m, tea.Quit
}

// View renders the TUI
func (m LogDayModel) View() string {
	if m.cancelled || m.completed {
		return ""
	}

	var form strings.Builder
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorAccentBright))
	form.WriteString(titleStyle.Render("📝 Log a day of service"))
	form.WriteString("\n\n")

	activeLabel := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright)).Bold(true)
	label := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText))
	for i := range m.inputs {
		if i == m.focus {
			form.WriteString(activeLabel.Render("▶ " + fieldLabels[i]))
		} else {
			form.WriteString(label.Render("  " + fieldLabels[i]))
		}
		form.WriteString("\n  ")
		form.WriteString(m.inputs[i].View())
		form.WriteString("\n\n")
	}

	if m.validationErr != "" {
		form.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(ColorError)).Render("✗ " + m.validationErr))
		form.WriteString("\n")
	}
	form.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(ColorHelpText)).Italic(true).
		Render("tab/↓ next · shift+tab/↑ back · enter on comment or ctrl+s save · esc cancel"))

	left := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorBorder)).
		Padding(1).
		Render(form.String())

	return lipgloss.JoinHorizontal(lipgloss.Top, left, " ", m.renderStudents())
}

// renderStudents lists the students that can be typed into the form
func (m LogDayModel) renderStudents() string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorAccentMain)).Render("👥 Bible students"))
	b.WriteString("\n\n")

	switch {
	case m.err != nil:
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(ColorError)).Render("Could not load students"))
	case len(m.students) == 0:
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(ColorDisabledText)).Italic(true).Render("None yet"))
	default:
		chosen := map[uint]bool{}
		if ids, err := parser.ParseIDList(m.value(fieldStudents)); err == nil {
			for _, id := range ids {
				chosen[id] = true
			}
		}
		for _, s := range m.students {
			line := fmt.Sprintf("#%-3d %s", s.ID, s.Name)
			if chosen[s.ID] {
				b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSuccess)).Render("✓ " + line))
			} else {
				b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText)).Render("  " + line))
			}
			b.WriteString("\n")
		}
	}

	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}
