package tui

import (
	"fmt"
	"math"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// highlightTickMsg advances the selected row highlight
type highlightTickMsg struct{}

// Highlight sweeps a bright band across the selected row's text
type Highlight struct {
	Interval time.Duration
	Width    float64 // band width as a share of the text length
	Steps    int     // ticks per sweep, including the pause
	Pause    int     // ticks with no band between sweeps

	step      int
	enabled   bool
	trueColor bool
}

// NewHighlight returns a highlight that animates unless SERVICENOTE_NO_MOTION is set
func NewHighlight() *Highlight {
	return &Highlight{
		Interval:  100 * time.Millisecond,
		Width:     0.25,
		Steps:     23,
		Pause:     5,
		enabled:   os.Getenv("SERVICENOTE_NO_MOTION") == "",
		trueColor: os.Getenv("COLORTERM") == "truecolor",
	}
}

// Tick schedules the next frame, or returns nil when animation is off
func (h *Highlight) Tick() tea.Cmd {
	if !h.enabled {
		return nil
	}
	return tea.Tick(h.Interval, func(time.Time) tea.Msg {
		return highlightTickMsg{}
	})
}

// Advance moves the band one step
func (h *Highlight) Advance() {
	if !h.enabled {
		return
	}
	h.step = (h.step + 1) % h.Steps
}

// Reset restarts the sweep, used when the selection moves
func (h *Highlight) Reset() {
	h.step = 0
}

// Enabled reports whether the highlight animates
func (h *Highlight) Enabled() bool {
	return h.enabled
}

// paused reports whether the band is between sweeps
func (h *Highlight) paused() bool {
	return h.step >= h.Steps-h.Pause || h.Steps-h.Pause <= 1
}

// center is the band position in characters. It starts before the text and
// ends after it.
func (h *Highlight) center(textLen int) float64 {
	sweep := h.Steps - h.Pause
	span := float64(textLen) * (1 + 2*h.Width)
	return -float64(textLen)*h.Width + span*float64(h.step)/float64(sweep-1)
}

// Render draws text with the band at its current position
func (h *Highlight) Render(text string) string {
	runes := []rune(text)
	if len(runes) == 0 {
		return ""
	}
	if !h.enabled {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright)).Render(text)
	}

	if h.paused() {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText)).Render(text)
	}

	c := h.center(len(runes))
	sigma := math.Max(1, h.Width*float64(len(runes))/2)
	var b strings.Builder
	for i, r := range runes {
		dx := float64(i) - c
		w := math.Exp(-(dx * dx) / (2 * sigma * sigma))
		b.WriteString(lipgloss.NewStyle().Foreground(h.shade(w)).Render(string(r)))
	}
	return b.String()
}

// shade blends the secondary text color toward a light accent by w in [0,1]
func (h *Highlight) shade(w float64) lipgloss.Color {
	if !h.trueColor {
		if w > 0.5 {
			return lipgloss.Color("122")
		}
		return lipgloss.Color("250")
	}
	base := [3]float64{169, 189, 184}
	peak := [3]float64{224, 255, 248}
	var out [3]int
	for i := range base {
		out[i] = int(base[i] + (peak[i]-base[i])*math.Min(1, math.Max(0, w)))
	}
	return lipgloss.Color(hexColor(out))
}

func hexColor(rgb [3]int) string {
	return fmt.Sprintf("#%02X%02X%02X", rgb[0], rgb[1], rgb[2])
}
