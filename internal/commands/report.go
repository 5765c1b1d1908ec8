package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/balkashynov/servicenote/internal/parser"
	"github.com/balkashynov/servicenote/internal/report"
	"github.com/balkashynov/servicenote/internal/tui"
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(tui.ColorAccentBright))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(tui.ColorWarning))
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Show the monthly field service report",
	Long: `Show the live totals of the current month and, while it is still pending,
of last month.

The Bible studies figure is the number of different students recorded for the
month, not the sum of the daily studies field.

Examples:
  servicenote report              # current month (and last month if pending)
  servicenote report --late       # last month only
  servicenote report -m 2025-04   # any month
  servicenote report --tui        # interactive report browser`,
	Run: withStore(func(cmd *cobra.Command, args []string, a *app) {
		today := now()

		if useTUI, _ := cmd.Flags().GetBool("tui"); useTUI {
			if err := tui.RunReportTUI(a.reporter, a.store, today, pioneerFlag(cmd)); err != nil {
				fmt.Printf("Error: %v\n", err)
			}
			return
		}

		if cmd.Flags().Changed("month") || cmd.Flags().Changed("late") {
			month, err := selectMonth(cmd)
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				return
			}
			printMonth(a, month)
			return
		}

		window := report.NewWindow(today)
		if a.reporter.LateReportPrompt(today) {
			fmt.Println(warningStyle.Render("Have you submitted last month's report?"))
			fmt.Println()
		}
		if _, hasDays := a.reporter.LateReport(today); hasDays {
			printMonth(a, window.Previous)
			fmt.Println()
		}
		printMonth(a, window.Current)
	}),
}

var reportSaveCmd = &cobra.Command{
	Use:   "save",
	Short: "Save a month's totals",
	Long: `Save the month's totals as its monthly report. Saving again overwrites the
previous totals for that month.

Without overrides the totals are recalculated from the logged days. Any of
--hours, --placements, --rv, --studies or --comment replaces the calculated
figure before saving.`,
	Run: withStore(func(cmd *cobra.Command, args []string, a *app) {
		month, err := selectMonth(cmd)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		draft := a.reporter.MonthTotals(month)
		if cmd.Flags().Changed("hours") {
			draft.Hours, _ = cmd.Flags().GetFloat64("hours")
		}
		if cmd.Flags().Changed("placements") {
			draft.Placements, _ = cmd.Flags().GetInt("placements")
		}
		if cmd.Flags().Changed("rv") {
			draft.ReturnVisits, _ = cmd.Flags().GetInt("rv")
		}
		if cmd.Flags().Changed("studies") {
			draft.Studies, _ = cmd.Flags().GetInt("studies")
		}
		if cmd.Flags().Changed("comment") {
			draft.Comments, _ = cmd.Flags().GetString("comment")
		}

		result := a.reporter.SaveTotals(draft)
		if !result.Success {
			fmt.Println(result.Message)
			return
		}
		fmt.Println(result.Message)
		printTotals(result.Totals)
	}),
}

var reportShareCmd = &cobra.Command{
	Use:   "share",
	Short: "Print the month's report text for sending",
	Long: `Print the report text to send to the congregation secretary.

Publishers share a short form (participation and Bible studies). With --pioneer
(or SERVICENOTE_PIONEER=true) the long form with hours and comments is used.
--copy also places the text on the clipboard.`,
	Run: withStore(func(cmd *cobra.Command, args []string, a *app) {
		month, err := selectMonth(cmd)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		totals := a.reporter.MonthTotals(month)
		if useSaved, _ := cmd.Flags().GetBool("saved"); useSaved {
			saved, found := a.reporter.Saved(month)
			if !found {
				fmt.Printf("No saved report for %s. Run 'servicenote report save' first.\n", report.ConvertDateString(month))
				return
			}
			totals = saved
		}

		pioneer := pioneerFlag(cmd)
		if _, err := a.reporter.Share(totals, pioneer, report.WriterSink{W: os.Stdout}); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		if copyText, _ := cmd.Flags().GetBool("copy"); copyText {
			if _, err := a.reporter.Share(totals, pioneer, report.ClipboardSink{}); err != nil {
				fmt.Printf("Error: %v\n", err)
				return
			}
			fmt.Println("\nCopied to clipboard.")
		}
	}),
}

var reportHistoryCmd = &cobra.Command{
	Use:   "history",
	Short: "Show the most recently saved months",
	Run: withStore(func(cmd *cobra.Command, args []string, a *app) {
		n, _ := cmd.Flags().GetInt("count")

		history := a.reporter.History(n)
		if len(history) == 0 {
			fmt.Println("No saved monthly reports yet. Use 'servicenote report save' to save one.")
			return
		}

		fmt.Printf("%-6s %-16s %-6s %-5s %-4s %s\n", "MM/YY", "MONTH", "HOURS", "PLM", "RV", "BS")
		fmt.Println(strings.Repeat("-", 47))
		for _, t := range history {
			labels := report.FormatMonth(t.Month)
			fmt.Printf("%-6s %-16s %-6s %-5d %-4d %d\n",
				labels.MMYY,
				labels.Full,
				formatHours(t.Hours),
				t.Placements,
				t.ReturnVisits,
				t.Studies)
		}
	}),
}

// selectMonth resolves --late and --month into a YYYY-MM key
func selectMonth(cmd *cobra.Command) (string, error) {
	if late, _ := cmd.Flags().GetBool("late"); late {
		return report.NewWindow(now()).Previous, nil
	}
	raw, _ := cmd.Flags().GetString("month")
	return parser.ParseMonth(raw, now())
}

func pioneerFlag(cmd *cobra.Command) bool {
	if cmd.Flags().Changed("pioneer") {
		pioneer, _ := cmd.Flags().GetBool("pioneer")
		return pioneer
	}
	return cfg.Pioneer
}

// printMonth prints a month's live totals and whether they were saved
func printMonth(a *app, month string) {
	totals := a.reporter.MonthTotals(month)
	fmt.Println(headingStyle.Render("📋 " + report.ConvertDateString(month)))
	printTotals(totals)

	if saved, found := a.reporter.Saved(month); found {
		if saved == totals {
			fmt.Println("  Saved ✓")
		} else {
			fmt.Printf("  Saved totals differ: %s hours, %d placements, %d return visits, %d Bible studies\n",
				formatHours(saved.Hours), saved.Placements, saved.ReturnVisits, saved.Studies)
		}
	} else {
		fmt.Println("  Not saved yet")
	}
}

func printTotals(t report.Totals) {
	fmt.Printf("  Hours: %s\n", formatHours(t.Hours))
	fmt.Printf("  Placements: %d\n", t.Placements)
	fmt.Printf("  Return visits: %d\n", t.ReturnVisits)
	fmt.Printf("  Bible studies: %d\n", t.Studies)
	if t.Comments != "" {
		fmt.Printf("  Comments: %s\n", t.Comments)
	}
}

func init() {
	for _, c := range []*cobra.Command{reportCmd, reportSaveCmd, reportShareCmd} {
		c.Flags().StringP("month", "m", "", "Month: this, last, yyyy-mm or mm/yyyy")
		c.Flags().BoolP("late", "l", false, "Use last month")
	}
	reportCmd.Flags().Bool("tui", false, "Open the interactive report browser")
	reportCmd.Flags().Bool("pioneer", false, "Preview the long report form in the browser")

	addReportFieldFlags(reportSaveCmd)

	reportShareCmd.Flags().Bool("pioneer", false, "Use the long form with hours and comments")
	reportShareCmd.Flags().Bool("copy", false, "Also copy the text to the clipboard")
	reportShareCmd.Flags().Bool("saved", false, "Share the saved totals instead of the live ones")

	reportHistoryCmd.Flags().IntP("count", "n", 3, "Number of months to show")

	reportCmd.AddCommand(reportSaveCmd)
	reportCmd.AddCommand(reportShareCmd)
	reportCmd.AddCommand(reportHistoryCmd)
}
