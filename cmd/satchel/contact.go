// Contact commands: create, show, list and delete address book records.
package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/satchel/pkg/types"
)

var (
	contactName  string
	contactPhone string
)

var contactCmd = &cobra.Command{
	Use:   "contact",
	Short: "Manage address book contacts",
}

var contactAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a new contact",
	Long: `Add creates a new contact with a name and its first phone number.

Example:
  satchel contact add --name "Ann Black" --phone 0501234567`,
	RunE: runContactAdd,
}

var contactDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a contact",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		if err := contacts.Delete(name); err != nil {
			return err
		}
		fmt.Printf("Contact %q deleted.\n", name)
		return nil
	},
}

var contactShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show one contact",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		record, err := contacts.Get(args[0])
		if err != nil {
			return err
		}
		fmt.Println(record)
		return nil
	},
}

var contactListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all contacts",
	RunE: func(cmd *cobra.Command, args []string) error {
		if contacts.Len() == 0 {
			fmt.Println("No contacts saved.")
			return nil
		}
		for _, record := range contacts.All() {
			fmt.Println(record)
		}
		return nil
	},
}

func init() {
	contactAddCmd.Flags().StringVar(&contactName, "name", "", "contact name (required)")
	contactAddCmd.Flags().StringVar(&contactPhone, "phone", "", "first phone number, 10 digits (required)")
	_ = contactAddCmd.MarkFlagRequired("name")
	_ = contactAddCmd.MarkFlagRequired("phone")

	contactCmd.AddCommand(contactAddCmd)
	contactCmd.AddCommand(contactDeleteCmd)
	contactCmd.AddCommand(contactShowCmd)
	contactCmd.AddCommand(contactListCmd)
	contactCmd.AddCommand(phoneCmd)
	contactCmd.AddCommand(emailCmd)
	contactCmd.AddCommand(addressCmd)
	contactCmd.AddCommand(birthdayCmd)
}

func runContactAdd(cmd *cobra.Command, args []string) error {
	record, err := types.NewRecord(contactName, contactPhone)
	if err != nil {
		return err
	}
	if err := contacts.Add(record); err != nil {
		return err
	}
	fmt.Printf("Contact %q added.\n", record.Name.Value)
	return nil
}

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search contacts by any field",
	Long: `Search matches the query, case-insensitively, against contact names,
phones, emails, addresses and birthday dates.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := strings.Join(args, " ")
		found := contacts.Search(query)
		if len(found) == 0 {
			fmt.Printf("No contacts match %q.\n", query)
			return nil
		}
		for _, record := range found {
			fmt.Println(record)
		}
		return nil
	},
}
