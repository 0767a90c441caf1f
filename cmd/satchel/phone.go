// Phone commands: manage the ordered phone list of a contact.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var phoneCmd = &cobra.Command{
	Use:   "phone",
	Short: "Manage a contact's phone numbers",
}

var phoneAddCmd = &cobra.Command{
	Use:   "add <name> <phone>",
	Short: "Add a phone number to a contact",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		record, err := contacts.Get(args[0])
		if err != nil {
			return err
		}
		if err := record.AddPhone(args[1]); err != nil {
			return err
		}
		fmt.Println("Phone added.")
		return nil
	},
}

var phoneChangeCmd = &cobra.Command{
	Use:   "change <name> <old-phone> <new-phone>",
	Short: "Replace a phone number in place",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		record, err := contacts.Get(args[0])
		if err != nil {
			return err
		}
		if err := record.UpdatePhone(args[1], args[2]); err != nil {
			return err
		}
		fmt.Println("Phone updated.")
		return nil
	},
}

var phoneRemoveCmd = &cobra.Command{
	Use:   "remove <name> <phone>",
	Short: "Remove a phone number from a contact",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		record, err := contacts.Get(args[0])
		if err != nil {
			return err
		}
		if err := record.RemovePhone(args[1]); err != nil {
			return err
		}
		fmt.Println("Phone removed.")
		return nil
	},
}

func init() {
	phoneCmd.AddCommand(phoneAddCmd)
	phoneCmd.AddCommand(phoneChangeCmd)
	phoneCmd.AddCommand(phoneRemoveCmd)
}
