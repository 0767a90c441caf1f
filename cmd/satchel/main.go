// Package main provides the satchel CLI, a personal assistant that keeps a
// contact address book and a note book on disk.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/satchel/internal/paths"
	"github.com/mesh-intelligence/satchel/internal/store"
	"github.com/mesh-intelligence/satchel/pkg/types"
)

var (
	// flagConfigDir and flagDataDir are set by the global flags.
	flagConfigDir string
	flagDataDir   string

	// db, contacts and notes are initialized on startup and saved on
	// shutdown. Commands operate on the in-memory books only.
	db       *store.Store
	contacts *types.AddressBook
	notes    *types.NoteBook

	// birthdayWindow is the configured default for the birthdays command.
	birthdayWindow = types.DefaultBirthdayWindow
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "satchel",
	Short: "Satchel is a personal contacts and notes assistant",
	Long: `Satchel keeps a contact address book and a note book in local JSON
files. Contacts carry validated phones, email, address and birthday fields;
notes carry free text and hashtag labels. Both books load on startup and
save on shutdown.`,
	SilenceUsage:       true,
	PersistentPreRunE:  openBooks,
	PersistentPostRunE: saveBooks,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (default: .satchel-db)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(contactCmd)
	rootCmd.AddCommand(birthdaysCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(noteCmd)
}

// openBooks loads configuration and reads both books from disk.
func openBooks(cmd *cobra.Command, args []string) error {
	if cmd.Name() == "version" {
		return nil
	}

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if w := cfg.GetInt(cfgKeyBirthdayWindow); w >= 0 {
		birthdayWindow = w
	}

	dataDir, err := paths.ResolveDataDir(flagDataDir, cfg.GetString(cfgKeyDataDir))
	if err != nil {
		return fmt.Errorf("resolve data dir: %w", err)
	}

	db = store.New(dataDir)
	contacts, notes, err = db.Load()
	if err != nil {
		return fmt.Errorf("load books: %w", err)
	}
	return nil
}

// saveBooks writes both books back to disk.
func saveBooks(cmd *cobra.Command, args []string) error {
	if db == nil {
		return nil
	}
	if err := db.Save(contacts, notes); err != nil {
		return fmt.Errorf("save books: %w", err)
	}
	return nil
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("satchel v0.1.0")
	},
}
