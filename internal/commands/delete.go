package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:     "rm [report-id]",
	Aliases: []string{"delete"},
	Short:   "Delete a logged day",
	Args:    cobra.ExactArgs(1),
	Run: withStore(func(cmd *cobra.Command, args []string, a *app) {
		reportID, err := strconv.ParseUint(args[0], 10, 32)
		if err != nil {
			fmt.Printf("Error: invalid report ID '%s'\n", args[0])
			return
		}

		existing, err := a.store.GetDailyReport(uint(reportID))
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		if err := a.store.DeleteDailyReport(existing.ID); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		fmt.Printf("Deleted report #%d for %s\n", existing.ID, existing.Date)
		fmt.Println("Saved monthly totals are not recalculated; run 'servicenote report save' to update them.")
	}),
}
