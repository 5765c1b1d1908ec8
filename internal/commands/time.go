package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/balkashynov/servicenote/internal/report"
	"github.com/balkashynov/servicenote/internal/tui"
)

var startCmd = &cobra.Command{
	Use:   "start [note]",
	Short: "Start timing field service",
	Long: `Start timing field service. Opens a live clock by default; use --no-ui to
start the timer and return to the shell.

When the session is stopped its time is logged as a day report, rounded to
the nearest quarter hour.

Examples:
  servicenote start                    # start with the live clock
  servicenote start "Cart witnessing"  # the note becomes the day's comment
  servicenote start --no-ui`,
	Run: withStore(func(cmd *cobra.Command, args []string, a *app) {
		session, err := a.store.StartSession(now(), strings.Join(args, " "))
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		if noUI, _ := cmd.Flags().GetBool("no-ui"); noUI {
			fmt.Printf("⏱️  Started timing field service at %s\n", session.StartedAt.In(time.Local).Format("15:04:05"))
			return
		}
		if err := tui.RunTimerTUI(session, a.store); err != nil {
			fmt.Printf("Error: %v\n", err)
		}
	}),
}

var stopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop timing and log the time",
	Run: withStore(func(cmd *cobra.Command, args []string, a *app) {
		session, day, err := a.store.StopActiveSession(now())
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		duration := time.Duration(session.DurationSeconds) * time.Second
		fmt.Printf("⏹️  Stopped after %s\n", formatDuration(duration))
		fmt.Printf("Logged %s hours as report #%d for %s\n", report.FormatHours(day.Hours), day.ID, day.Date)
	}),
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the running session and today's timed service",
	Run: withStore(func(cmd *cobra.Command, args []string, a *app) {
		current := now()

		session, found, err := a.store.GetActiveSession()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if found {
			fmt.Printf("⏱️  In service since %s (%s)\n",
				session.StartedAt.In(time.Local).Format("15:04"),
				formatDuration(current.Sub(session.StartedAt)))
		} else {
			fmt.Println("No service session running")
		}

		midnight := time.Date(current.Year(), current.Month(), current.Day(), 0, 0, 0, 0, current.Location())
		sessions, err := a.store.ListSessions(midnight, midnight.AddDate(0, 0, 1))
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if len(sessions) == 0 {
			return
		}

		var total time.Duration
		for _, s := range sessions {
			total += time.Duration(s.DurationSeconds) * time.Second
		}
		fmt.Printf("Today: %d finished session(s), %s\n", len(sessions), formatDuration(total))
	}),
}

// formatDuration formats a duration in a human-readable way
func formatDuration(d time.Duration) string {
	if d.Hours() >= 1 {
		return fmt.Sprintf("%.1fh", d.Hours())
	} else if d.Minutes() >= 1 {
		return fmt.Sprintf("%.0fm", d.Minutes())
	}
	return fmt.Sprintf("%.0fs", d.Seconds())
}

func init() {
	startCmd.Flags().Bool("no-ui", false, "Start without the live clock")
}
