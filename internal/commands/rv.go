package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/balkashynov/servicenote/internal/db"
	"github.com/balkashynov/servicenote/internal/models"
	"github.com/balkashynov/servicenote/internal/parser"
)

var rvCmd = &cobra.Command{
	Use:     "rv",
	Aliases: []string{"interest"},
	Short:   "Manage return visits",
}

var rvAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a return visit",
	Args:  cobra.MinimumNArgs(1),
	Run: withStore(func(cmd *cobra.Command, args []string, a *app) {
		input, err := interestInputFromFlags(cmd, db.InterestedPersonInput{})
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		input.Name = strings.Join(args, " ")
		if input.LastVisit == "" {
			input.LastVisit, _ = parser.ParseDay("today", now())
		}

		person, err := a.store.CreateInterestedPerson(input)
		if err != nil {
			fmt.Printf("Error creating return visit: %v\n", err)
			return
		}
		fmt.Printf("Added return visit #%d: %s\n", person.ID, person.Name)
		if person.Appointment != "" {
			fmt.Printf("  Next visit: %s\n", person.Appointment)
		}
	}),
}

var rvListCmd = &cobra.Command{
	Use:     "ls",
	Aliases: []string{"list"},
	Short:   "List return visits, most recently visited first",
	Run: withStore(func(cmd *cobra.Command, args []string, a *app) {
		limit := 0
		if recent, _ := cmd.Flags().GetBool("recent"); recent {
			limit = db.RecentInterestsLimit
		}

		persons, err := a.store.ListInterestedPersons(limit)
		if err != nil {
			fmt.Printf("Error fetching return visits: %v\n", err)
			return
		}
		if len(persons) == 0 {
			fmt.Println("No return visits yet. Use 'servicenote rv add <name>' to add one.")
			return
		}

		fmt.Printf("%-4s %-22s %-11s %-16s %s\n", "ID", "NAME", "LAST VISIT", "NEXT VISIT", "TOPIC")
		fmt.Println(strings.Repeat("-", 80))
		for _, p := range persons {
			fmt.Printf("%-4d %-22s %-11s %-16s %s\n",
				p.ID,
				truncate(p.Name, 22),
				p.LastVisit,
				truncate(p.Appointment, 16),
				truncate(p.Topic, 25))
		}
	}),
}

var rvEditCmd = &cobra.Command{
	Use:   "edit <rv_id>",
	Short: "Edit a return visit",
	Args:  cobra.ExactArgs(1),
	Run: withStore(func(cmd *cobra.Command, args []string, a *app) {
		id, ok := parseID(args[0], "return visit")
		if !ok {
			return
		}

		existing, err := a.store.GetInterestedPerson(id)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		input, err := interestInputFromFlags(cmd, interestInput(existing))
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if cmd.Flags().Changed("name") {
			input.Name, _ = cmd.Flags().GetString("name")
		}

		updated, err := a.store.UpdateInterestedPerson(id, input)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("Updated return visit #%d: %s\n", updated.ID, updated.Name)
	}),
}

var rvDeleteCmd = &cobra.Command{
	Use:     "rm <rv_id>",
	Aliases: []string{"delete"},
	Short:   "Delete a return visit",
	Args:    cobra.ExactArgs(1),
	Run: withStore(func(cmd *cobra.Command, args []string, a *app) {
		id, ok := parseID(args[0], "return visit")
		if !ok {
			return
		}
		if err := a.store.DeleteInterestedPerson(id); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("Deleted return visit #%d\n", id)
	}),
}

var rvConvertCmd = &cobra.Command{
	Use:   "convert <rv_id>",
	Short: "Turn a return visit into a Bible study",
	Long: `Turn a return visit into a Bible student. The topic becomes the study
material and the appointment becomes the study day. The return visit is removed.`,
	Args: cobra.ExactArgs(1),
	Run: withStore(func(cmd *cobra.Command, args []string, a *app) {
		id, ok := parseID(args[0], "return visit")
		if !ok {
			return
		}

		student, err := a.store.ConvertToBibleStudy(id)
		if err != nil {
			fmt.Printf("Error converting return visit: %v\n", err)
			return
		}
		fmt.Printf("Return visit #%d is now Bible student #%d: %s\n", id, student.ID, student.StudentName)
	}),
}

func interestInput(p *models.InterestedPerson) db.InterestedPersonInput {
	return db.InterestedPersonInput{
		Name:        p.Name,
		Address:     p.Address,
		Phone:       p.Phone,
		Placement:   p.Placement,
		Topic:       p.Topic,
		Appointment: p.Appointment,
		Note:        p.Note,
		LastVisit:   p.LastVisit,
		Latitude:    p.Latitude,
		Longitude:   p.Longitude,
	}
}

func interestInputFromFlags(cmd *cobra.Command, base db.InterestedPersonInput) (db.InterestedPersonInput, error) {
	setString(cmd, "phone", &base.Phone)
	setString(cmd, "address", &base.Address)
	setString(cmd, "note", &base.Note)
	setString(cmd, "placement", &base.Placement)
	setString(cmd, "topic", &base.Topic)
	setString(cmd, "appointment", &base.Appointment)
	setFloat(cmd, "lat", &base.Latitude)
	setFloat(cmd, "lng", &base.Longitude)

	if cmd.Flags().Changed("visited") {
		raw, _ := cmd.Flags().GetString("visited")
		day, err := parser.ParseDay(raw, now())
		if err != nil {
			return base, err
		}
		base.LastVisit = day
	}
	return base, nil
}

func init() {
	for _, c := range []*cobra.Command{rvAddCmd, rvEditCmd} {
		addLocationFlags(c)
		c.Flags().String("placement", "", "Publication placed")
		c.Flags().String("topic", "", "Topic discussed")
		c.Flags().String("appointment", "", "Next visit, e.g. Saturday 10:00")
		c.Flags().String("visited", "", "Last visit date (default today)")
	}
	rvEditCmd.Flags().String("name", "", "New name")
	rvListCmd.Flags().Bool("recent", false, "Show only the two most recent")

	rvCmd.AddCommand(rvAddCmd)
	rvCmd.AddCommand(rvListCmd)
	rvCmd.AddCommand(rvEditCmd)
	rvCmd.AddCommand(rvDeleteCmd)
	rvCmd.AddCommand(rvConvertCmd)
}
