// ABOUTME: CLI command for migrating between storage backends.
// ABOUTME: Copies entries from the JSON store into SQLite, or back.
package main

import (
	"fmt"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/harperreed/daylog/internal/store"
	"github.com/spf13/cobra"
)

var migrateDryRun bool

var migrateCmd = &cobra.Command{
	Use:   "migrate <json|sqlite>",
	Short: "Migrate entries to another backend",
	Long: `Copy all entries from the current backend into the named one.

The source store is left untouched. Entries already present in the
destination (same date) are skipped. After a successful migration,
set "backend" in the config to the new value to start using it.

EXAMPLES:

  daylog migrate sqlite --dry-run   # Preview what would be copied
  daylog migrate sqlite             # Copy JSON entries into SQLite`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"json", "sqlite"},
	RunE: func(cmd *cobra.Command, args []string) error {
		target := args[0]
		if target != "json" && target != "sqlite" {
			return fmt.Errorf("unknown backend: %s (use json or sqlite)", target)
		}
		if target == cfg.GetBackend() {
			return fmt.Errorf("already using the %s backend", target)
		}

		export, err := store.Export(appStore)
		if err != nil {
			return fmt.Errorf("failed to read source store: %w", err)
		}
		if len(export.Entries) == 0 {
			fmt.Println("Nothing to migrate: source store is empty.")
			return nil
		}

		if migrateDryRun {
			color.Yellow("Dry run: would copy %d entries to the %s backend.", len(export.Entries), target)
			return nil
		}

		dataDir := cfg.GetDataDir()
		var dest store.Store
		switch target {
		case "json":
			dest = store.NewJSONStore(filepath.Join(dataDir, "metrics.json"), cfg.GetHabits())
		case "sqlite":
			dest, err = store.OpenSQLite(filepath.Join(dataDir, "daylog.db"), cfg.GetHabits())
			if err != nil {
				return fmt.Errorf("failed to open destination: %w", err)
			}
		}
		defer dest.Close()

		added, err := store.Import(dest, export)
		if err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}

		color.Green("✓ Copied %d entries to the %s backend", added, target)
		if skipped := len(export.Entries) - added; skipped > 0 {
			fmt.Printf("  %d already present, skipped\n", skipped)
		}
		fmt.Println()
		fmt.Printf("Set \"backend\": %q in %s to switch over.\n", target, "~/.config/daylog/config.json")
		return nil
	},
}

func init() {
	migrateCmd.Flags().BoolVar(&migrateDryRun, "dry-run", false, "preview migration without making changes")
	rootCmd.AddCommand(migrateCmd)
}
