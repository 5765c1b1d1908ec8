package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/balkashynov/servicenote/internal/db"
	"github.com/balkashynov/servicenote/internal/parser"
)

var editCmd = &cobra.Command{
	Use:   "edit <report_id>",
	Short: "Edit a logged day",
	Long: `Edit a logged day. Only the fields given as flags change.

Usage:
  servicenote edit 42 --hours 3
  servicenote edit 42 --date yesterday --comment "Cart witnessing"`,
	Args: cobra.ExactArgs(1),
	Run: withStore(func(cmd *cobra.Command, args []string, a *app) {
		reportID, err := strconv.ParseUint(args[0], 10, 32)
		if err != nil {
			fmt.Printf("Error: Invalid report ID '%s'. Please provide a valid numeric ID.\n", args[0])
			return
		}

		existing, err := a.store.GetDailyReport(uint(reportID))
		if err != nil {
			fmt.Printf("Error: Report #%d not found.\n", reportID)
			return
		}

		// Start from the stored values and apply the flags given
		input := db.DailyReportInput{
			Date:         existing.Date,
			Hours:        existing.Hours,
			Placements:   existing.Placements,
			ReturnVisits: existing.ReturnVisits,
			Studies:      existing.Studies,
			Comments:     existing.Comments,
		}
		if cmd.Flags().Changed("date") {
			raw, _ := cmd.Flags().GetString("date")
			day, err := parser.ParseDay(raw, now())
			if err != nil {
				fmt.Printf("Error parsing date: %v\n", err)
				return
			}
			input.Date = day
		}
		if cmd.Flags().Changed("hours") {
			input.Hours, _ = cmd.Flags().GetFloat64("hours")
		}
		if cmd.Flags().Changed("placements") {
			input.Placements, _ = cmd.Flags().GetInt("placements")
		}
		if cmd.Flags().Changed("rv") {
			input.ReturnVisits, _ = cmd.Flags().GetInt("rv")
		}
		if cmd.Flags().Changed("studies") {
			input.Studies, _ = cmd.Flags().GetInt("studies")
		}
		if cmd.Flags().Changed("comment") {
			input.Comments, _ = cmd.Flags().GetString("comment")
		}

		updated, err := a.store.UpdateDailyReport(existing.ID, input)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		fmt.Printf("Updated report #%d for %s\n", updated.ID, updated.Date)
		fmt.Printf("  Hours: %s  Placements: %d  Return visits: %d  Studies: %d\n",
			formatHours(updated.Hours), updated.Placements, updated.ReturnVisits, updated.Studies)
	}),
}

func init() {
	editCmd.Flags().StringP("date", "d", "", "New date: today, yesterday, dd/mm/yyyy, yyyy-mm-dd")
	addReportFieldFlags(editCmd)
}
