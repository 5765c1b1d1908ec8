package report

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/balkashynov/servicenote/internal/db"
	"github.com/balkashynov/servicenote/internal/models"
)

type DailyReader interface {
	ListDailyReportsForMonth(month string) ([]models.DailyReport, error)
}

type StudentCounter interface {
	CountDistinctStudents(month string) (int, error)
}

type MonthlyStore interface {
	UpsertMonthlyReport(input db.MonthlyReportInput) (db.UpsertResult, error)
	FindMonthlyReport(month string) (models.MonthlyReport, bool, error)
	ListRecentMonthlyReports(limit int) ([]models.MonthlyReport, error)
}

// SaveResult is what the UI shows after a save
type SaveResult struct {
	Success bool
	Created bool
	Message string
	Totals  Totals
}

// Reporter computes live monthly totals and saves them
type Reporter struct {
	days     DailyReader
	students StudentCounter
	monthly  MonthlyStore
}

func NewReporter(days DailyReader, students StudentCounter, monthly MonthlyStore) *Reporter {
	return &Reporter{
		days:     days,
		students: students,
		monthly:  monthly,
	}
}

// DistinctStudentsStrict returns the distinct student count or the storage error
func (r *Reporter) DistinctStudentsStrict(month string) (int, error) {
	return r.students.CountDistinctStudents(month)
}

// DistinctStudents returns the distinct student count of a month. When the
// count cannot be read it falls back to DefaultStudentCount.
func (r *Reporter) DistinctStudents(month string) int {
	count, err := r.students.CountDistinctStudents(month)
	if err != nil {
		log.Error("count distinct students", "month", month, "err", err)
		return DefaultStudentCount
	}
	return count
}

// MonthDays returns the day reports of a month, or none when they cannot be read
func (r *Reporter) MonthDays(month string) []models.DailyReport {
	records, err := r.days.ListDailyReportsForMonth(month)
	if err != nil {
		log.Error("list day reports", "month", month, "err", err)
		return []models.DailyReport{}
	}
	return records
}

// MonthTotals computes the live totals of any month
func (r *Reporter) MonthTotals(month string) Totals {
	return Aggregate(month, r.MonthDays(month), r.DistinctStudents(month))
}

// LateReport returns the previous month's live totals and whether any days
// were logged for it
func (r *Reporter) LateReport(today time.Time) (Totals, bool) {
	month := PreviousMonthKey(today)
	records := r.MonthDays(month)
	return Aggregate(month, records, r.DistinctStudents(month)), len(records) > 0
}

// LateReportPrompt reports whether to ask if last month's report was
// submitted: it is the first week and nothing is saved for last month
func (r *Reporter) LateReportPrompt(today time.Time) bool {
	if !IsFirstWeek(today) {
		return false
	}
	_, found, err := r.monthly.FindMonthlyReport(PreviousMonthKey(today))
	if err != nil {
		log.Error("find monthly report", "month", PreviousMonthKey(today), "err", err)
		return true
	}
	return !found
}

// SaveMonth recomputes a month's totals from its day reports and saves them
func (r *Reporter) SaveMonth(month string) SaveResult {
	return r.SaveTotals(r.MonthTotals(month))
}

// SaveTotals saves totals as the month's summary, typically after the user
// edited the live figures
func (r *Reporter) SaveTotals(t Totals) SaveResult {
	var comments *string
	if t.Comments != "" {
		comments = &t.Comments
	}

	res, err := r.monthly.UpsertMonthlyReport(db.MonthlyReportInput{
		Month:        t.Month,
		Hours:        t.Hours,
		Placements:   t.Placements,
		ReturnVisits: t.ReturnVisits,
		Studies:      t.Studies,
		Comments:     comments,
	})
	if err != nil {
		log.Error("save monthly report", "month", t.Month, "err", err)
		return SaveResult{Success: false, Message: "Error: " + err.Error(), Totals: t}
	}
	return SaveResult{Success: true, Created: res.Created, Message: res.Message, Totals: t}
}

// Saved returns the stored summary of a month, if any
func (r *Reporter) Saved(month string) (Totals, bool) {
	m, found, err := r.monthly.FindMonthlyReport(month)
	if err != nil {
		log.Error("find monthly report", "month", month, "err", err)
		return Totals{}, false
	}
	if !found {
		return Totals{}, false
	}
	return FromMonthly(m), true
}

// History returns up to n saved months, newest first
func (r *Reporter) History(n int) []Totals {
	if n <= 0 {
		n = db.DefaultRecentMonths
	}
	rows, err := r.monthly.ListRecentMonthlyReports(n)
	if err != nil {
		log.Error("list recent monthly reports", "err", err)
		return []Totals{}
	}

	history := make([]Totals, 0, len(rows))
	for _, m := range rows {
		history = append(history, FromMonthly(m))
	}
	return history
}

// Compose renders totals for sharing
func (r *Reporter) Compose(t Totals, isPioneer bool) string {
	return Submission(t, isPioneer)
}

// Share renders totals and hands the text to the sink
func (r *Reporter) Share(t Totals, isPioneer bool, sink Sink) (string, error) {
	text := r.Compose(t, isPioneer)
	if err := sink.Share(text); err != nil {
		return text, err
	}
	return text, nil
}
