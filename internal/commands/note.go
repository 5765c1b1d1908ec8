package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/balkashynov/servicenote/internal/db"
	"github.com/balkashynov/servicenote/internal/parser"
)

var noteCmd = &cobra.Command{
	Use:   "note",
	Short: "Manage personal notes",
}

var noteAddCmd = &cobra.Command{
	Use:   "add <title> <content...>",
	Short: "Add a note",
	Args:  cobra.MinimumNArgs(2),
	Run: withStore(func(cmd *cobra.Command, args []string, a *app) {
		today, _ := parser.ParseDay("today", now())
		note, err := a.store.CreateNote(db.NoteInput{
			Title:       args[0],
			Content:     strings.Join(args[1:], " "),
			DateCreated: today,
		})
		if err != nil {
			fmt.Printf("Error creating note: %v\n", err)
			return
		}
		fmt.Printf("Added note #%d: %s\n", note.ID, note.Title)
	}),
}

var noteListCmd = &cobra.Command{
	Use:     "ls",
	Aliases: []string{"list"},
	Short:   "List notes, newest first",
	Run: withStore(func(cmd *cobra.Command, args []string, a *app) {
		notes, err := a.store.ListNotes()
		if err != nil {
			fmt.Printf("Error fetching notes: %v\n", err)
			return
		}
		if len(notes) == 0 {
			fmt.Println("No notes yet.")
			return
		}

		full, _ := cmd.Flags().GetBool("full")
		for _, n := range notes {
			fmt.Printf("#%d  %s  %s\n", n.ID, n.DateCreated, n.Title)
			if full {
				fmt.Printf("    %s\n", strings.ReplaceAll(n.Content, "\n", "\n    "))
			} else {
				fmt.Printf("    %s\n", truncate(strings.ReplaceAll(n.Content, "\n", " "), 72))
			}
		}
	}),
}

var noteEditCmd = &cobra.Command{
	Use:   "edit <note_id>",
	Short: "Edit a note's title or content",
	Args:  cobra.ExactArgs(1),
	Run: withStore(func(cmd *cobra.Command, args []string, a *app) {
		id, ok := parseID(args[0], "note")
		if !ok {
			return
		}

		existing, err := a.store.GetNote(id)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		title, content := existing.Title, existing.Content
		setString(cmd, "title", &title)
		setString(cmd, "content", &content)
		if title == existing.Title && content == existing.Content {
			fmt.Println("Nothing to change. Use --title or --content.")
			return
		}

		updated, err := a.store.UpdateNote(id, title, content)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("Updated note #%d: %s\n", updated.ID, updated.Title)
	}),
}

var noteDeleteCmd = &cobra.Command{
	Use:     "rm <note_id>",
	Aliases: []string{"delete"},
	Short:   "Delete a note",
	Args:    cobra.ExactArgs(1),
	Run: withStore(func(cmd *cobra.Command, args []string, a *app) {
		id, ok := parseID(args[0], "note")
		if !ok {
			return
		}
		if err := a.store.DeleteNote(id); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("Deleted note #%d\n", id)
	}),
}

func init() {
	noteListCmd.Flags().Bool("full", false, "Show full note content")
	noteEditCmd.Flags().String("title", "", "New title")
	noteEditCmd.Flags().String("content", "", "New content")

	noteCmd.AddCommand(noteAddCmd)
	noteCmd.AddCommand(noteListCmd)
	noteCmd.AddCommand(noteEditCmd)
	noteCmd.AddCommand(noteDeleteCmd)
}
