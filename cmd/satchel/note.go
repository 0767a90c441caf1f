// Note commands: create, edit, list, search and sort notes.
package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/satchel/pkg/types"
)

var (
	noteTitle   string
	noteContent string
	noteTags    []string
)

var noteCmd = &cobra.Command{
	Use:   "note",
	Short: "Manage the note book",
}

var noteAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a new note",
	Long: `Add creates a note with a title, free-text content and optional tags.

Example:
  satchel note add --title "Shopping" --content "milk, bread" --tag "#home"`,
	RunE: runNoteAdd,
}

var noteEditCmd = &cobra.Command{
	Use:   "edit <title> <content>",
	Short: "Replace a note's content",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := notes.EditContent(args[0], joinArgs(args[1:])); err != nil {
			return err
		}
		fmt.Println("Note updated.")
		return nil
	},
}

var noteRenameCmd = &cobra.Command{
	Use:   "rename <title> <new-title>",
	Short: "Rename a note",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := notes.Rename(args[0], args[1]); err != nil {
			return err
		}
		fmt.Println("Note renamed.")
		return nil
	},
}

var noteDeleteCmd = &cobra.Command{
	Use:   "delete <title>",
	Short: "Delete a note",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := notes.Delete(args[0]); err != nil {
			return err
		}
		fmt.Printf("Note %q deleted.\n", args[0])
		return nil
	},
}

var noteListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all notes",
	RunE: func(cmd *cobra.Command, args []string) error {
		printNotes(notes.All(), "No notes saved.")
		return nil
	},
}

var noteSearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search notes by title, content or tag",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := strings.Join(args, " ")
		printNotes(notes.Search(query), fmt.Sprintf("No notes match %q.", query))
		return nil
	},
}

var noteSortCmd = &cobra.Command{
	Use:   "sort",
	Short: "List notes grouped by their smallest tag",
	Long:  `Sort lists all notes ordered by their lexicographically smallest tag; notes without tags come last.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		printNotes(notes.SortByTag(), "No notes saved.")
		return nil
	},
}

func init() {
	noteAddCmd.Flags().StringVar(&noteTitle, "title", "", "note title (required)")
	noteAddCmd.Flags().StringVar(&noteContent, "content", "", "note content (required)")
	noteAddCmd.Flags().StringSliceVar(&noteTags, "tag", nil, "hashtag label, repeatable")
	_ = noteAddCmd.MarkFlagRequired("title")
	_ = noteAddCmd.MarkFlagRequired("content")

	noteCmd.AddCommand(noteAddCmd)
	noteCmd.AddCommand(noteEditCmd)
	noteCmd.AddCommand(noteRenameCmd)
	noteCmd.AddCommand(noteDeleteCmd)
	noteCmd.AddCommand(noteListCmd)
	noteCmd.AddCommand(noteSearchCmd)
	noteCmd.AddCommand(noteSortCmd)
	noteCmd.AddCommand(tagCmd)
}

func runNoteAdd(cmd *cobra.Command, args []string) error {
	note, err := types.NewNote(noteTitle, noteContent)
	if err != nil {
		return err
	}
	for _, tag := range noteTags {
		if err := note.AddTag(tag); err != nil {
			return err
		}
	}
	if err := notes.Add(note); err != nil {
		return err
	}
	fmt.Printf("Note %q added.\n", note.Title)
	return nil
}

func printNotes(list []*types.Note, emptyMessage string) {
	if len(list) == 0 {
		fmt.Println(emptyMessage)
		return
	}
	for _, note := range list {
		fmt.Println(note)
	}
}
