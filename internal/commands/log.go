package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/balkashynov/servicenote/internal/db"
	"github.com/balkashynov/servicenote/internal/parser"
	"github.com/balkashynov/servicenote/internal/tui"
)

var reportFieldFlags = []string{"hours", "placements", "rv", "studies", "comment", "students", "quick"}

var logCmd = &cobra.Command{
	Use:   "log [date]",
	Short: "Log a day of field service",
	Long: `Log a day of field service activity.

Modes:
  Interactive: servicenote log -i (or just 'servicenote log' with no arguments)
  Quick: servicenote log [date] --hours 2.5 --placements 3 --rv 1 --students 3,6
  Shorthand: servicenote log yesterday -q "2.5h 3p 1rv #3,6 Cart witnessing"

Date formats: today (default), yesterday, 3 days ago, dd/mm/yyyy, yyyy-mm-dd

Students listed with --students are counted once each for the month,
no matter how many days mention them.`,
	Args: cobra.ArbitraryArgs,
	Run: withStore(func(cmd *cobra.Command, args []string, a *app) {
		interactive, _ := cmd.Flags().GetBool("interactive")

		// If no args and no fields given, go interactive
		if len(args) == 0 && !anyFlagChanged(cmd, reportFieldFlags) {
			interactive = true
		}

		day, err := parser.ParseDay(strings.Join(args, " "), now())
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		if interactive {
			if err := tui.RunLogDayTUI(a.store, day); err != nil {
				fmt.Printf("Error: %v\n", err)
			}
			return
		}

		input := db.DailyReportInput{Date: day}
		var studentIDs []uint

		if quick, _ := cmd.Flags().GetString("quick"); quick != "" {
			parsed := parser.ParseActivity(quick)
			if len(parsed.Errors) > 0 {
				for _, e := range parsed.Errors {
					fmt.Printf("Error: %s\n", e)
				}
				return
			}
			applyActivity(&input, parsed)
			studentIDs = parsed.Students
		}

		// Explicit flags win over shorthand
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
		if cmd.Flags().Changed("students") {
			studentsFlag, _ := cmd.Flags().GetString("students")
			ids, err := parser.ParseIDList(studentsFlag)
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				return
			}
			studentIDs = ids
		}

		students, err := resolveStudents(a.store, studentIDs)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if input.Studies == 0 {
			input.Studies = len(students)
		}

		saved, err := a.store.LogDay(input, students)
		if err != nil {
			fmt.Printf("Error logging day: %v\n", err)
			return
		}

		fmt.Printf("Logged report #%d for %s\n", saved.ID, saved.Date)
		fmt.Printf("  Hours: %s  Placements: %d  Return visits: %d  Studies: %d\n",
			formatHours(saved.Hours), saved.Placements, saved.ReturnVisits, saved.Studies)
		if len(students) > 0 {
			var names []string
			for _, s := range students {
				names = append(names, s.Name)
			}
			fmt.Printf("  Students: %s\n", strings.Join(names, ", "))
		}
		if saved.Comments != "" {
			fmt.Printf("  Comments: %s\n", saved.Comments)
		}
	}),
}

// resolveStudents turns student IDs into refs carrying the current names
func resolveStudents(store *db.Store, ids []uint) ([]db.StudentRef, error) {
	refs := make([]db.StudentRef, 0, len(ids))
	for _, id := range ids {
		student, err := store.GetBibleStudent(id)
		if err != nil {
			return nil, fmt.Errorf("student #%d: %w", id, err)
		}
		refs = append(refs, db.StudentRef{ID: student.ID, Name: student.StudentName})
	}
	return refs, nil
}

// applyActivity copies the figures found in shorthand onto the input
func applyActivity(input *db.DailyReportInput, parsed parser.ParsedActivity) {
	if parsed.Hours != nil {
		input.Hours = *parsed.Hours
	}
	if parsed.Placements != nil {
		input.Placements = *parsed.Placements
	}
	if parsed.ReturnVisits != nil {
		input.ReturnVisits = *parsed.ReturnVisits
	}
	if parsed.Studies != nil {
		input.Studies = *parsed.Studies
	}
	input.Comments = parsed.Comment
}

func anyFlagChanged(cmd *cobra.Command, names []string) bool {
	for _, name := range names {
		if cmd.Flags().Changed(name) {
			return true
		}
	}
	return false
}

func init() {
	logCmd.Flags().BoolP("interactive", "i", false, "Interactive mode with TUI")
	addReportFieldFlags(logCmd)
	logCmd.Flags().StringP("students", "s", "", "Comma-separated Bible student IDs studied with")
	logCmd.Flags().StringP("quick", "q", "", `Shorthand, e.g. "2.5h 3p 1rv #3,6 comment"`)
}

// addReportFieldFlags registers the numeric day report flags shared by log and edit
func addReportFieldFlags(cmd *cobra.Command) {
	cmd.Flags().Float64P("hours", "H", 0, "Hours spent in the ministry")
	cmd.Flags().IntP("placements", "p", 0, "Placements")
	cmd.Flags().IntP("rv", "r", 0, "Return visits made")
	cmd.Flags().Int("studies", 0, "Bible studies conducted (informational)")
	cmd.Flags().StringP("comment", "c", "", "Comment")
}
