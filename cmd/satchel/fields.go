// Optional field commands: email, address and birthday on a contact.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var emailCmd = &cobra.Command{
	Use:   "email",
	Short: "Manage a contact's email",
}

var emailSetCmd = &cobra.Command{
	Use:   "set <name> <email>",
	Short: "Set or replace the contact's email",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		record, err := contacts.Get(args[0])
		if err != nil {
			return err
		}
		if err := record.SetEmail(args[1]); err != nil {
			return err
		}
		fmt.Println("Email set.")
		return nil
	},
}

var emailClearCmd = &cobra.Command{
	Use:   "clear <name>",
	Short: "Remove the contact's email",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		record, err := contacts.Get(args[0])
		if err != nil {
			return err
		}
		record.ClearEmail()
		fmt.Println("Email cleared.")
		return nil
	},
}

var addressCmd = &cobra.Command{
	Use:   "address",
	Short: "Manage a contact's address",
}

var addressSetCmd = &cobra.Command{
	Use:   "set <name> <address>",
	Short: "Set or replace the contact's address",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		record, err := contacts.Get(args[0])
		if err != nil {
			return err
		}
		if err := record.SetAddress(joinArgs(args[1:])); err != nil {
			return err
		}
		fmt.Println("Address set.")
		return nil
	},
}

var addressClearCmd = &cobra.Command{
	Use:   "clear <name>",
	Short: "Remove the contact's address",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		record, err := contacts.Get(args[0])
		if err != nil {
			return err
		}
		record.ClearAddress()
		fmt.Println("Address cleared.")
		return nil
	},
}

var birthdayCmd = &cobra.Command{
	Use:   "birthday",
	Short: "Manage a contact's birthday",
}

var birthdaySetCmd = &cobra.Command{
	Use:   "set <name> <DD.MM.YYYY>",
	Short: "Set or replace the contact's birthday",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		record, err := contacts.Get(args[0])
		if err != nil {
			return err
		}
		if err := record.SetBirthday(args[1]); err != nil {
			return err
		}
		fmt.Println("Birthday set.")
		return nil
	},
}

var birthdayShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show the contact's birthday",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		record, err := contacts.Get(args[0])
		if err != nil {
			return err
		}
		if record.Birthday == nil {
			fmt.Printf("%s has no birthday set.\n", record.Name.Value)
			return nil
		}
		fmt.Printf("%s's birthday: %s\n", record.Name.Value, record.Birthday.Value)
		return nil
	},
}

var birthdayClearCmd = &cobra.Command{
	Use:   "clear <name>",
	Short: "Remove the contact's birthday",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		record, err := contacts.Get(args[0])
		if err != nil {
			return err
		}
		record.ClearBirthday()
		fmt.Println("Birthday cleared.")
		return nil
	},
}

func init() {
	emailCmd.AddCommand(emailSetCmd)
	emailCmd.AddCommand(emailClearCmd)
	addressCmd.AddCommand(addressSetCmd)
	addressCmd.AddCommand(addressClearCmd)
	birthdayCmd.AddCommand(birthdaySetCmd)
	birthdayCmd.AddCommand(birthdayShowCmd)
	birthdayCmd.AddCommand(birthdayClearCmd)
}
