// ABOUTME: CLI command for the habit report.
// ABOUTME: Prints streaks, weekly summaries, and trends per habit.
package main

import (
	"fmt"
	"sort"

	"github.com/fatih/color"
	"github.com/harperreed/daylog/internal/analytics"
	"github.com/spf13/cobra"
)

var habitsCmd = &cobra.Command{
	Use:   "habits",
	Short: "Show habit streaks and trends",
	Long: `Show per-habit streaks, weekly completion summaries, and trends.

  Streaks count consecutive completed days backward from the most
  recent entry; a day where the habit went untracked breaks the run.

  Weekly summaries group by ISO week. Trends compare the two most
  recent weeks: a move of 10 points or more is improving/declining,
  anything smaller is stable.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		snap, err := appStore.Snapshot()
		if err != nil {
			return fmt.Errorf("failed to read store: %w", err)
		}

		if len(snap.Entries) == 0 {
			fmt.Println("No entries found. Run 'daylog extract' to add one.")
			return nil
		}

		habits := cfg.GetHabits()
		faint := color.New(color.Faint)

		fmt.Println("STREAKS")
		for _, h := range habits {
			s := snap.Streaks[h.ID]
			fmt.Printf("  %-14s current %-3d %s\n",
				h.Name, s.Current, faint.Sprintf("(best %d)", s.Longest))
		}

		fmt.Println()
		fmt.Println("TRENDS (last two weeks)")
		for _, h := range habits {
			trend := snap.Trends[h.ID]
			line := fmt.Sprintf("  %-14s %s", h.Name, trend)
			switch trend {
			case analytics.TrendImproving:
				color.Green(line)
			case analytics.TrendDeclining:
				color.Red(line)
			default:
				fmt.Println(line)
			}
		}

		if len(snap.WeeklySummaries) > 0 {
			weeks := make([]string, 0, len(snap.WeeklySummaries))
			for w := range snap.WeeklySummaries {
				weeks = append(weeks, w)
			}
			sort.Sort(sort.Reverse(sort.StringSlice(weeks)))
			if len(weeks) > 4 {
				weeks = weeks[:4]
			}

			fmt.Println()
			fmt.Println("WEEKLY COMPLETION")
			for _, w := range weeks {
				summary := snap.WeeklySummaries[w]
				overall := "-"
				if v := summary[analytics.OverallKey]; v != nil {
					overall = fmt.Sprintf("%.0f%%", *v*100)
				}
				fmt.Printf("  %s  overall %s\n", w, overall)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(habitsCmd)
}
