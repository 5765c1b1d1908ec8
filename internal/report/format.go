package report

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// InvalidDateFormat is returned in place of a month name for unparseable input
const InvalidDateFormat = "Invalid date format"

const (
	minYear = 1900
	maxYear = 2100
)

// MonthLabels holds the display forms of a YYYY-MM key
type MonthLabels struct {
	MMYY     string // 04/25
	MMDashYY string // 04-25
	YYDashMM string // 25-04
	Full     string // April 2025
}

// parseYearMonth reads the year and month from a YYYY-MM or YYYY-MM-DD string
func parseYearMonth(s string) (int, time.Month, bool) {
	parts := strings.Split(strings.TrimSpace(s), "-")
	if len(parts) < 2 || len(parts) > 3 || len(parts[0]) != 4 || len(parts[1]) != 2 {
		return 0, 0, false
	}

	year, err := strconv.Atoi(parts[0])
	if err != nil || year < minYear || year > maxYear {
		return 0, 0, false
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil || month < 1 || month > 12 {
		return 0, 0, false
	}
	return year, time.Month(month), true
}

// ConvertDateString turns "2025-04" or "2025-04-12" into "April 2025"
func ConvertDateString(s string) string {
	year, month, ok := parseYearMonth(s)
	if !ok {
		return InvalidDateFormat
	}
	return fmt.Sprintf("%s %d", month.String(), year)
}

// FormatMonth returns the display labels of a month key. Invalid input
// yields InvalidDateFormat in Full and empty short forms.
func FormatMonth(ym string) MonthLabels {
	year, month, ok := parseYearMonth(ym)
	if !ok {
		return MonthLabels{Full: InvalidDateFormat}
	}

	yy := fmt.Sprintf("%02d", year%100)
	mm := fmt.Sprintf("%02d", int(month))
	return MonthLabels{
		MMYY:     mm + "/" + yy,
		MMDashYY: mm + "-" + yy,
		YYDashMM: yy + "-" + mm,
		Full:     fmt.Sprintf("%s %d", month.String(), year),
	}
}

// FormatHours prints hours without trailing zeros: 5, 2.5
func FormatHours(h float64) string {
	return strconv.FormatFloat(h, 'f', -1, 64)
}

// ShortForm is the report text for publishers who only confirm participation
func ShortForm(t Totals) string {
	return fmt.Sprintf("%s\nParticipated: Yes\nBible Studies: %d", ConvertDateString(t.Month), t.Studies)
}

// LongForm is the report text for pioneers, who also report hours
func LongForm(t Totals) string {
	comments := strings.TrimSpace(t.Comments)
	if comments == "" {
		comments = "None"
	}
	return fmt.Sprintf("%s\nHours: %s\nBible Studies: %d\nComments: %s",
		ConvertDateString(t.Month), FormatHours(t.Hours), t.Studies, comments)
}

// Submission picks the form to share
func Submission(t Totals, isPioneer bool) string {
	if isPioneer {
		return LongForm(t)
	}
	return ShortForm(t)
}
