package report

import "time"

const (
	DayLayout   = "2006-01-02"
	MonthLayout = "2006-01"
)

// firstWeekDays is the number of days at the start of a month during which
// the previous month is still treated as pending
const firstWeekDays = 7

// IsFirstWeek reports whether t falls on day 1..7 of its month
func IsFirstWeek(t time.Time) bool {
	return t.Day() <= firstWeekDays
}

// CurrentMonthKey formats t as YYYY-MM
func CurrentMonthKey(t time.Time) string {
	return t.Format(MonthLayout)
}

// PreviousMonthKey returns the YYYY-MM key of the month before t
func PreviousMonthKey(t time.Time) string {
	// Step back from the first of the month so the 31st never overflows
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	return first.AddDate(0, -1, 0).Format(MonthLayout)
}

// Window is the pair of months the report screen works with
type Window struct {
	Current   string
	Previous  string
	FirstWeek bool
}

// NewWindow computes the report window for today
func NewWindow(today time.Time) Window {
	return Window{
		Current:   CurrentMonthKey(today),
		Previous:  PreviousMonthKey(today),
		FirstWeek: IsFirstWeek(today),
	}
}

// MonthFor picks the late month when late is set, the current one otherwise
func (w Window) MonthFor(late bool) string {
	if late {
		return w.Previous
	}
	return w.Current
}
