// ABOUTME: CLI command for deleting a stored entry.
// ABOUTME: Deletes by date and recomputes derived analytics.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:     "delete <date>",
	Aliases: []string{"del", "rm"},
	Short:   "Delete a stored entry",
	Long: `Delete the stored entry for a date.

Streaks, weekly summaries, and trends are recomputed after deletion.
The source markdown document is untouched; 'daylog extract' can
re-create the entry from it.

EXAMPLES:

  daylog delete 2026-03-01
  daylog rm 2026-03-01`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		date := args[0]

		entry, err := appStore.Get(date)
		if err != nil {
			return fmt.Errorf("failed to read store: %w", err)
		}
		if entry == nil {
			return fmt.Errorf("no entry for %s", date)
		}

		if err := appStore.Delete(date); err != nil {
			return fmt.Errorf("failed to delete entry: %w", err)
		}

		color.Yellow("✗ Deleted %s", date)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
