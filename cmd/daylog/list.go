// ABOUTME: CLI command for listing stored entries.
// ABOUTME: One line per day with the headline numbers.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var listLimit int

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls", "l"},
	Short:   "List stored entries",
	Long: `List stored entries, most recent first.

OUTPUT FORMAT:

  Each line shows: DATE  SLEEP  MOOD  TODOS  HABITS

  A dash means the field was absent from that day's document.

EXAMPLES:

  daylog list          # Last 20 entries
  daylog list -n 60    # Last 60 entries`,
	RunE: func(cmd *cobra.Command, args []string) error {
		entries, err := appStore.Entries()
		if err != nil {
			return fmt.Errorf("failed to list entries: %w", err)
		}

		if len(entries) == 0 {
			fmt.Println("No entries found. Run 'daylog extract' to add one.")
			return nil
		}

		// Most recent first
		for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
			entries[i], entries[j] = entries[j], entries[i]
		}
		if listLimit > 0 && len(entries) > listLimit {
			entries = entries[:listLimit]
		}

		faint := color.New(color.Faint)
		for _, e := range entries {
			sleep := "-"
			if e.Sleep.Hours != nil {
				sleep = fmt.Sprintf("%.1fh", *e.Sleep.Hours)
			}
			mood := fmtMood(e.Mood.Morning)
			todos := "-"
			if e.Todos.Total > 0 {
				todos = fmt.Sprintf("%d/%d", e.Todos.Completed, e.Todos.Total)
			}
			habits := "-"
			if len(e.Habits.Details) > 0 {
				habits = fmt.Sprintf("%d/%d", len(e.Habits.Completed), len(e.Habits.Details))
			}
			notes := ""
			if len(e.Notes) > 0 {
				notes = faint.Sprintf("  (%d notes)", len(e.Notes))
			}

			fmt.Printf("%s  sleep %-6s mood %-4s todos %-5s habits %-5s%s\n",
				e.Date, sleep, mood, todos, habits, notes)
		}
		return nil
	},
}

func init() {
	listCmd.Flags().IntVarP(&listLimit, "limit", "n", 20, "max number of results")
	rootCmd.AddCommand(listCmd)
}
