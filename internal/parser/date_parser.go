package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const (
	dayLayout   = "2006-01-02"
	monthLayout = "2006-01"
)

var (
	slashDateRegex  = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{4})$`)
	isoDateRegex    = regexp.MustCompile(`^(\d{4})-(\d{1,2})-(\d{1,2})$`)
	daysAgoRegex    = regexp.MustCompile(`^(\d+)\s+days?\s+ago$`)
	isoMonthRegex   = regexp.MustCompile(`^(\d{4})-(\d{1,2})$`)
	slashMonthRegex = regexp.MustCompile(`^(\d{1,2})/(\d{4})$`)
)

// ParseDay parses the day a report is logged for and returns it as YYYY-MM-DD.
// Supported formats:
// - empty or "today"
// - "yesterday"
// - X days ago (e.g., "3 days ago")
// - dd/mm/yyyy (e.g., "15/04/2025")
// - yyyy-mm-dd (e.g., "2025-04-15")
func ParseDay(input string, now time.Time) (string, error) {
	input = strings.ToLower(strings.TrimSpace(input))

	switch input {
	case "", "today":
		return now.Format(dayLayout), nil
	case "yesterday":
		return now.AddDate(0, 0, -1).Format(dayLayout), nil
	}

	if matches := daysAgoRegex.FindStringSubmatch(input); len(matches) == 2 {
		days, err := strconv.Atoi(matches[1])
		if err != nil || days > 366 {
			return "", fmt.Errorf("days ago must be between 0 and 366")
		}
		return now.AddDate(0, 0, -days).Format(dayLayout), nil
	}

	if matches := slashDateRegex.FindStringSubmatch(input); len(matches) == 4 {
		return buildDay(matches[3], matches[2], matches[1])
	}

	if matches := isoDateRegex.FindStringSubmatch(input); len(matches) == 4 {
		return buildDay(matches[1], matches[2], matches[3])
	}

	return "", fmt.Errorf("invalid date format. Use: today, yesterday, X days ago, dd/mm/yyyy or yyyy-mm-dd")
}

// buildDay validates the parts of a date, including leap years
func buildDay(yearStr, monthStr, dayStr string) (string, error) {
	year, _ := strconv.Atoi(yearStr)
	month, _ := strconv.Atoi(monthStr)
	day, _ := strconv.Atoi(dayStr)

	if year < 1900 || year > 2100 {
		return "", fmt.Errorf("year must be between 1900 and 2100")
	}
	if month < 1 || month > 12 {
		return "", fmt.Errorf("month must be between 1 and 12")
	}
	if day < 1 || day > 31 {
		return "", fmt.Errorf("day must be between 1 and 31")
	}

	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if date.Day() != day || date.Month() != time.Month(month) {
		return "", fmt.Errorf("invalid date")
	}
	return date.Format(dayLayout), nil
}

// ParseMonth parses a month selector and returns it as YYYY-MM.
// Supported formats: empty or "this", "last", yyyy-mm, mm/yyyy
func ParseMonth(input string, now time.Time) (string, error) {
	input = strings.ToLower(strings.TrimSpace(input))

	switch input {
	case "", "this", "current":
		return now.Format(monthLayout), nil
	case "last", "previous":
		first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		return first.AddDate(0, -1, 0).Format(monthLayout), nil
	}

	var yearStr, monthStr string
	if matches := isoMonthRegex.FindStringSubmatch(input); len(matches) == 3 {
		yearStr, monthStr = matches[1], matches[2]
	} else if matches := slashMonthRegex.FindStringSubmatch(input); len(matches) == 3 {
		yearStr, monthStr = matches[2], matches[1]
	} else {
		return "", fmt.Errorf("invalid month format. Use: this, last, yyyy-mm or mm/yyyy")
	}

	year, _ := strconv.Atoi(yearStr)
	month, _ := strconv.Atoi(monthStr)
	if year < 1900 || year > 2100 {
		return "", fmt.Errorf("year must be between 1900 and 2100")
	}
	if month < 1 || month > 12 {
		return "", fmt.Errorf("month must be between 1 and 12")
	}
	return fmt.Sprintf("%04d-%02d", year, month), nil
}

// ParseIDList parses "3,6, 9" into IDs, skipping blanks
func ParseIDList(input string) ([]uint, error) {
	var ids []uint
	for _, part := range strings.Split(input, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseUint(part, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid id '%s'", part)
		}
		ids = append(ids, uint(id))
	}
	return ids, nil
}
