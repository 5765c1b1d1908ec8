package parser

import (
	"regexp"
	"strconv"
	"strings"
)

// ParsedActivity is a day's activity read from shorthand
type ParsedActivity struct {
	Hours        *float64
	Placements   *int
	ReturnVisits *int
	Studies      *int
	Students     []uint
	Comment      string
	Errors       []string
}

var (
	hoursToken      = regexp.MustCompile(`(?i)\b(\d+(?:\.\d+)?)h\b`)
	placementsToken = regexp.MustCompile(`(?i)\b(\d+)p\b`)
	returnToken     = regexp.MustCompile(`(?i)\b(\d+)rv\b`)
	studiesToken    = regexp.MustCompile(`(?i)\b(\d+)bs\b`)
	studentsToken   = regexp.MustCompile(`#([0-9][0-9,]*)`)
)

// ParseActivity extracts figures from shorthand like
// "2.5h 3p 1rv 2bs #3,6 Cart witnessing at the station".
// Whatever is left over becomes the comment.
func ParseActivity(input string) ParsedActivity {
	result := ParsedActivity{Errors: []string{}}

	// Hours (2h, 1.5h)
	if m := hoursToken.FindStringSubmatch(input); len(m) > 1 {
		hours, err := strconv.ParseFloat(m[1], 64)
		if err != nil || hours > 24 {
			result.Errors = append(result.Errors, "Invalid hours '"+m[1]+"'. Use a number up to 24")
		} else {
			result.Hours = &hours
		}
		input = hoursToken.ReplaceAllString(input, "")
	}

	counts := []struct {
		re   *regexp.Regexp
		dst  **int
		name string
	}{
		{placementsToken, &result.Placements, "placements"},
		{returnToken, &result.ReturnVisits, "return visits"},
		{studiesToken, &result.Studies, "studies"},
	}
	for _, c := range counts {
		m := c.re.FindStringSubmatch(input)
		if len(m) < 2 {
			continue
		}
		n, err := strconv.Atoi(m[1])
		if err != nil {
			result.Errors = append(result.Errors, "Invalid "+c.name+" '"+m[1]+"'")
		} else {
			*c.dst = &n
		}
		input = c.re.ReplaceAllString(input, "")
	}

	// Students (#3,6 or #3 #6)
	for _, m := range studentsToken.FindAllStringSubmatch(input, -1) {
		ids, err := ParseIDList(m[1])
		if err != nil {
			result.Errors = append(result.Errors, err.Error())
			continue
		}
		result.Students = append(result.Students, ids...)
	}
	input = studentsToken.ReplaceAllString(input, "")

	result.Comment = strings.Join(strings.Fields(input), " ")
	return result
}
