package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/balkashynov/servicenote/internal/config"
	"github.com/balkashynov/servicenote/internal/db"
	"github.com/balkashynov/servicenote/internal/report"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	cfg    *config.Config
	dbFlag string

	// now is replaced in tests
	now = time.Now
)

var rootCmd = &cobra.Command{
	Use:   "servicenote",
	Short: "A field service notebook and monthly report helper",
	Long: `servicenote keeps your field service records on this machine.
Log your daily activity, keep track of return visits, Bible students and notes,
and prepare the monthly report when it is due.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load()
		if err != nil {
			return err
		}
		if dbFlag != "" {
			loaded.DBPath = dbFlag
		}
		cfg = loaded

		log.SetTimeFormat(time.Kitchen)
		log.SetLevel(cfg.LogLevel)
		return nil
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

// app is what a command gets once the database is open
type app struct {
	store    *db.Store
	reporter *report.Reporter
}

// withStore opens the database for the duration of one command and closes
// it afterwards
func withStore(fn func(*cobra.Command, []string, *app)) func(*cobra.Command, []string) {
	return func(cmd *cobra.Command, args []string) {
		database, err := db.Open(cfg.DBPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer func() {
			if err := db.Close(database); err != nil {
				log.Warn("close database", "err", err)
			}
		}()

		store := db.NewStore(database)
		fn(cmd, args, &app{
			store:    store,
			reporter: report.NewReporter(store, store, store),
		})
	}
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("servicenote %s (commit %s, built %s)\n", version, commit, date)
	},
}

// SetVersion sets the version information
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbFlag, "db", "", "Path to the database file")

	rootCmd.AddCommand(logCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(studentCmd)
	rootCmd.AddCommand(rvCmd)
	rootCmd.AddCommand(noteCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(startCmd)
	rootCmd.AddCommand(stopCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(helpCmd)
	rootCmd.AddCommand(versionCmd)
}
