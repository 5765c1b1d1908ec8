package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var helpCmd = &cobra.Command{
	Use:   "help",
	Short: "Show comprehensive help for servicenote",
	Long:  `Display detailed help for all servicenote commands and flags.`,
	Run: func(cmd *cobra.Command, args []string) {
		showCustomHelp()
	},
}

func showCustomHelp() {
	fmt.Print(`
 ___ ___ _____   _____ ___ ___   _  _  ___ _____ ___
/ __| __| _ \ \ / /_ _/ __| __| | \| |/ _ \_   _| __|
\__ \ _||   /\ V / | | (__| _|  | .` + "`" + ` | (_) || | | _|
|___/___|_|_\ \_/ |___\___|___| |_|\_|\___/ |_| |___|

servicenote - Field service log and monthly report

COMMANDS:

  log [date]              Log a day of service
    -H, --hours           Hours spent
    -p, --placements      Publications placed
    -r, --rv              Return visits made
    --studies             Studies conducted (defaults to number of --students)
    -s, --students        Bible student IDs studied with (e.g. 3,6)
    -c, --comment         Comment for the day
    -q, --quick           Shorthand: "2.5h 3p 1rv 2bs #3,6 comment"
    -i, --interactive     Open the form

    Dates: today, yesterday, "3 days ago", dd/mm/yyyy, yyyy-mm-dd
    Example:
      servicenote log yesterday -H 2.5 -p 3 -r 1 -s 4

  ls                      List the days of a month with totals
    -m, --month           Month (this, last, yyyy-mm, mm/yyyy)
    -a, --all             Show every logged day

  edit <id>               Change a logged day
  rm <id>                 Delete a logged day

  report                  Show this month (and last month during the first week)
    -m, --month           Show a specific month
    -l, --late            Show last month
    --tui                 Interactive report view

    save                  Save the month's totals
    share                 Print the report text
      --pioneer           Long form with hours
      --copy              Copy to clipboard
      --saved             Share the saved totals instead of live ones
    history               Show recent saved months
      -n, --count         How many months (default 3)

    Interactive keys:
      ←/→           Switch between this month and last month
      p             Toggle pioneer form
      s             Save totals
      d             Delete selected day
      esc/q         Quit

  student add|ls|edit|rm  Manage Bible students
  rv add|ls|edit|rm       Manage return visits
    --recent              Only the two most recent (ls)
  rv convert <id>         Turn a return visit into a Bible student
  note add|ls|edit|rm     Manage personal notes

  search <query>          Search students, return visits and notes
    -l, --limit           Limit number of results
    --json                JSON output

  start [note]            Time field service with a live clock
    --no-ui               Start without the clock
  stop                    Stop timing and log the hours (nearest quarter hour)
  status                  Show the running session and today's timed service

  version                 Show version
  help                    Show this help

GLOBAL FLAGS:
  --db                    Database file (default ~/.servicenote/servicenote.db)

ENVIRONMENT (also read from ~/.servicenote/.env):
  SERVICENOTE_DB_PATH     Database file
  SERVICENOTE_LOG_LEVEL   debug|info|warn|error
  SERVICENOTE_PIONEER     true to share the long form by default

`)
}
