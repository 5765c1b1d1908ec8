package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/balkashynov/servicenote/internal/db"
	"github.com/balkashynov/servicenote/internal/models"
)

var studentCmd = &cobra.Command{
	Use:     "student",
	Aliases: []string{"bs"},
	Short:   "Manage Bible students",
}

var studentAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a Bible student",
	Args:  cobra.MinimumNArgs(1),
	Run: withStore(func(cmd *cobra.Command, args []string, a *app) {
		input := studentInputFromFlags(cmd, db.BibleStudentInput{})
		input.StudentName = strings.Join(args, " ")

		student, err := a.store.CreateBibleStudent(input)
		if err != nil {
			fmt.Printf("Error creating student: %v\n", err)
			return
		}
		fmt.Printf("Added Bible student #%d: %s\n", student.ID, student.StudentName)
	}),
}

var studentListCmd = &cobra.Command{
	Use:     "ls",
	Aliases: []string{"list"},
	Short:   "List Bible students",
	Run: withStore(func(cmd *cobra.Command, args []string, a *app) {
		students, err := a.store.ListBibleStudents()
		if err != nil {
			fmt.Printf("Error fetching students: %v\n", err)
			return
		}
		if len(students) == 0 {
			fmt.Println("No Bible students yet. Use 'servicenote student add <name>' to add one.")
			return
		}

		fmt.Printf("%-4s %-25s %-12s %-20s %s\n", "ID", "NAME", "DAY", "MATERIAL", "PHONE")
		fmt.Println(strings.Repeat("-", 80))
		for _, s := range students {
			fmt.Printf("%-4d %-25s %-12s %-20s %s\n",
				s.ID,
				truncate(s.StudentName, 25),
				truncate(s.StudyDay, 12),
				truncate(s.StudyMaterial, 20),
				s.Phone)
		}
	}),
}

var studentEditCmd = &cobra.Command{
	Use:   "edit <student_id>",
	Short: "Edit a Bible student",
	Long: `Edit a Bible student. Only the fields given as flags change.

Months already recorded keep the name the student had at the time.`,
	Args: cobra.ExactArgs(1),
	Run: withStore(func(cmd *cobra.Command, args []string, a *app) {
		id, ok := parseID(args[0], "student")
		if !ok {
			return
		}

		existing, err := a.store.GetBibleStudent(id)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		input := studentInputFromFlags(cmd, studentInput(existing))
		if cmd.Flags().Changed("name") {
			input.StudentName, _ = cmd.Flags().GetString("name")
		}

		updated, err := a.store.UpdateBibleStudent(id, input)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("Updated Bible student #%d: %s\n", updated.ID, updated.StudentName)
	}),
}

var studentDeleteCmd = &cobra.Command{
	Use:     "rm <student_id>",
	Aliases: []string{"delete"},
	Short:   "Delete a Bible student and the months recorded for them",
	Args:    cobra.ExactArgs(1),
	Run: withStore(func(cmd *cobra.Command, args []string, a *app) {
		id, ok := parseID(args[0], "student")
		if !ok {
			return
		}

		if err := a.store.DeleteBibleStudent(id); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("Deleted Bible student #%d\n", id)
	}),
}

func studentInput(s *models.BibleStudent) db.BibleStudentInput {
	return db.BibleStudentInput{
		StudentName:   s.StudentName,
		Phone:         s.Phone,
		Address:       s.Address,
		StudyMaterial: s.StudyMaterial,
		StudyDay:      s.StudyDay,
		Note:          s.Note,
		Latitude:      s.Latitude,
		Longitude:     s.Longitude,
	}
}

// studentInputFromFlags applies the flags that were given on top of base
func studentInputFromFlags(cmd *cobra.Command, base db.BibleStudentInput) db.BibleStudentInput {
	setString(cmd, "phone", &base.Phone)
	setString(cmd, "address", &base.Address)
	setString(cmd, "material", &base.StudyMaterial)
	setString(cmd, "day", &base.StudyDay)
	setString(cmd, "note", &base.Note)
	setFloat(cmd, "lat", &base.Latitude)
	setFloat(cmd, "lng", &base.Longitude)
	return base
}

func setString(cmd *cobra.Command, name string, dst *string) {
	if cmd.Flags().Changed(name) {
		*dst, _ = cmd.Flags().GetString(name)
	}
}

func setFloat(cmd *cobra.Command, name string, dst *float64) {
	if cmd.Flags().Changed(name) {
		*dst, _ = cmd.Flags().GetFloat64(name)
	}
}

func parseID(raw, kind string) (uint, bool) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		fmt.Printf("Error: invalid %s ID '%s'\n", kind, raw)
		return 0, false
	}
	return uint(id), true
}

func truncate(s string, width int) string {
	if len(s) > width {
		if width > 3 {
			return s[:width-3] + "..."
		}
		return s[:width]
	}
	return s
}

func addLocationFlags(cmd *cobra.Command) {
	cmd.Flags().String("phone", "", "Phone number")
	cmd.Flags().String("address", "", "Address")
	cmd.Flags().String("note", "", "Note")
	cmd.Flags().Float64("lat", 0, "Latitude")
	cmd.Flags().Float64("lng", 0, "Longitude")
}

func init() {
	for _, c := range []*cobra.Command{studentAddCmd, studentEditCmd} {
		addLocationFlags(c)
		c.Flags().String("material", "", "Study material")
		c.Flags().String("day", "", "Study day, e.g. Tuesday 18:00")
	}
	studentEditCmd.Flags().String("name", "", "New name")

	studentCmd.AddCommand(studentAddCmd)
	studentCmd.AddCommand(studentListCmd)
	studentCmd.AddCommand(studentEditCmd)
	studentCmd.AddCommand(studentDeleteCmd)
}
