// Birthdays command: list contacts with birthdays inside a day window.
package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var birthdaysDays int

var birthdaysCmd = &cobra.Command{
	Use:   "birthdays",
	Short: "Show upcoming birthdays",
	Long: `Birthdays lists every contact whose next birthday falls within the
given number of days from today, soonest first. The printed greeting date
moves weekend birthdays to the following Monday.

Example:
  satchel birthdays
  satchel birthdays --days 30`,
	RunE: runBirthdays,
}

func init() {
	birthdaysCmd.Flags().IntVar(&birthdaysDays, "days", -1, "window in days (default from config)")
}

func runBirthdays(cmd *cobra.Command, args []string) error {
	window := birthdaysDays
	if !cmd.Flags().Changed("days") {
		window = birthdayWindow
	}

	upcoming, err := contacts.UpcomingBirthdays(time.Now(), window)
	if err != nil {
		return err
	}
	if len(upcoming) == 0 {
		fmt.Printf("No birthdays in %s.\n", pluralDays(window))
		return nil
	}

	fmt.Printf("Birthdays in %s:\n", pluralDays(window))
	for _, u := range upcoming {
		fmt.Printf("  %s -> %s\n", u.Record.Name.Value, congratulationDate(u.Date).Format("02.01.2006"))
	}
	return nil
}

// congratulationDate shifts weekend occurrences to the following Monday.
func congratulationDate(occurrence time.Time) time.Time {
	switch occurrence.Weekday() {
	case time.Saturday:
		return occurrence.AddDate(0, 0, 2)
	case time.Sunday:
		return occurrence.AddDate(0, 0, 1)
	default:
		return occurrence
	}
}

func pluralDays(n int) string {
	if n == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", n)
}
