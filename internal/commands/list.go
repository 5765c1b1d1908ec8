package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/balkashynov/servicenote/internal/models"
	"github.com/balkashynov/servicenote/internal/parser"
	"github.com/balkashynov/servicenote/internal/report"
)

var listCmd = &cobra.Command{
	Use:     "ls",
	Aliases: []string{"list"},
	Short:   "List logged days",
	Long:    "List the days logged for a month (the current month by default) with the month's live totals",
	Run: withStore(func(cmd *cobra.Command, args []string, a *app) {
		all, _ := cmd.Flags().GetBool("all")

		var (
			reports []models.DailyReport
			month   string
			err     error
		)
		if all {
			reports, err = a.store.ListDailyReports()
		} else {
			monthFlag, _ := cmd.Flags().GetString("month")
			month, err = parser.ParseMonth(monthFlag, now())
			if err == nil {
				reports, err = a.store.ListDailyReportsForMonth(month)
			}
		}
		if err != nil {
			fmt.Printf("Error fetching reports: %v\n", err)
			return
		}

		if len(reports) == 0 {
			fmt.Println("No days logged. Use 'servicenote log' to record your first day.")
			return
		}

		printDailyTable(reports)

		if month != "" {
			totals := a.reporter.MonthTotals(month)
			fmt.Println(strings.Repeat("-", 80))
			fmt.Printf("Totals for %s: %s hours, %d placements, %d return visits, %d Bible studies\n",
				report.ConvertDateString(month),
				formatHours(totals.Hours),
				totals.Placements,
				totals.ReturnVisits,
				totals.Studies)
		}
	}),
}

// printDailyTable prints day reports as a plain table
func printDailyTable(reports []models.DailyReport) {
	fmt.Printf("%-4s %-11s %-6s %-5s %-4s %-4s %s\n", "ID", "DATE", "HOURS", "PLM", "RV", "BS", "COMMENTS")
	fmt.Println(strings.Repeat("-", 80))

	for _, r := range reports {
		comments := r.Comments
		if len(comments) > 40 {
			comments = comments[:37] + "..."
		}

		fmt.Printf("%-4d %-11s %-6s %-5d %-4d %-4d %s\n",
			r.ID,
			r.Date,
			formatHours(r.Hours),
			r.Placements,
			r.ReturnVisits,
			r.Studies,
			comments)
	}
}

func formatHours(h float64) string {
	return report.FormatHours(h)
}

func init() {
	listCmd.Flags().StringP("month", "m", "", "Month: this, last, yyyy-mm or mm/yyyy")
	listCmd.Flags().BoolP("all", "a", false, "List every logged day")
}
