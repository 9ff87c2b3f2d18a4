// ABOUTME: CLI command for showing a single stored entry.
// ABOUTME: Prints full entry JSON or a compact summary.
package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var showJSON bool

var showCmd = &cobra.Command{
	Use:   "show <date>",
	Short: "Show the stored entry for a date",
	Long: `Show the stored entry for a date.

EXAMPLES:

  daylog show 2026-03-01           # Compact summary
  daylog show 2026-03-01 --json    # Full entry as JSON`,
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

		if showJSON {
			data, err := json.MarshalIndent(entry, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(data))
			return nil
		}

		fmt.Println(entry.Date)
		printEntrySummary(entry)
		if len(entry.Notes) > 0 {
			fmt.Println("  Notes:")
			for _, n := range entry.Notes {
				fmt.Printf("    - %s\n", n)
			}
		}
		return nil
	},
}

func init() {
	showCmd.Flags().BoolVar(&showJSON, "json", false, "print the full entry as JSON")
	rootCmd.AddCommand(showCmd)
}
