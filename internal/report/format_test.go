package report

import "testing"

func TestConvertDateString(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"2025-04", "April 2025"},
		{"2025-04-12", "April 2025"},
		{"2024-12", "December 2024"},
		{"2025-13", InvalidDateFormat},
		{"2025-00", InvalidDateFormat},
		{"25-04", InvalidDateFormat},
		{"April", InvalidDateFormat},
		{"", InvalidDateFormat},
		{"1899-05", InvalidDateFormat},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ConvertDateString(tt.in); got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestFormatMonth(t *testing.T) {
	got := FormatMonth("2025-04")
	want := MonthLabels{MMYY: "04/25", MMDashYY: "04-25", YYDashMM: "25-04", Full: "April 2025"}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}

	bad := FormatMonth("nope")
	if bad.Full != InvalidDateFormat || bad.MMYY != "" {
		t.Fatalf("expected invalid labels, got %+v", bad)
	}
}

func TestFormatHours(t *testing.T) {
	tests := map[float64]string{5: "5", 2.5: "2.5", 0: "0", 10.25: "10.25"}
	for in, want := range tests {
		if got := FormatHours(in); got != want {
			t.Fatalf("FormatHours(%v): expected %q, got %q", in, want, got)
		}
	}
}

func TestSubmissionForms(t *testing.T) {
	totals := Totals{Month: "2025-04", Hours: 12.5, Placements: 4, ReturnVisits: 2, Studies: 2}

	short := Submission(totals, false)
	wantShort := "April 2025\nParticipated: Yes\nBible Studies: 2"
	if short != wantShort {
		t.Fatalf("expected short form %q, got %q", wantShort, short)
	}

	long := Submission(totals, true)
	wantLong := "April 2025\nHours: 12.5\nBible Studies: 2\nComments: None"
	if long != wantLong {
		t.Fatalf("expected long form %q, got %q", wantLong, long)
	}

	totals.Comments = "  Visited the hospital  "
	if got := LongForm(totals); got != "April 2025\nHours: 12.5\nBible Studies: 2\nComments: Visited the hospital" {
		t.Fatalf("unexpected long form with comments: %q", got)
	}
}
