// Tag commands: attach and detach hashtag labels on notes.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var tagCmd = &cobra.Command{
	Use:   "tag",
	Short: "Manage a note's tags",
}

var tagAddCmd = &cobra.Command{
	Use:   "add <title> <#tag>...",
	Short: "Add tags to a note",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := notes.AddTags(args[0], args[1:]); err != nil {
			return err
		}
		fmt.Printf("Tags added to %q.\n", args[0])
		return nil
	},
}

var tagRemoveCmd = &cobra.Command{
	Use:   "remove <title> <#tag>...",
	Short: "Remove tags from a note",
	Long:  `Remove detaches the given tags. Tags the note does not carry are skipped without error.`,
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := notes.RemoveTags(args[0], args[1:]); err != nil {
			return err
		}
		fmt.Printf("Tags removed from %q.\n", args[0])
		return nil
	},
}

var tagListCmd = &cobra.Command{
	Use:   "list <#tag>",
	Short: "List notes carrying a tag",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		printNotes(notes.WithTag(args[0]), fmt.Sprintf("No notes carry %s.", args[0]))
		return nil
	},
}

func init() {
	tagCmd.AddCommand(tagAddCmd)
	tagCmd.AddCommand(tagRemoveCmd)
	tagCmd.AddCommand(tagListCmd)
}
