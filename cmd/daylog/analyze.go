// ABOUTME: CLI command for rolling-window analysis.
// ABOUTME: Prints averages, weekday patterns, correlations, streaks, and warnings.
package main

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/harperreed/daylog/internal/analytics"
	"github.com/spf13/cobra"
)

var analyzeWindow int

var analyzeCmd = &cobra.Command{
	Use:     "analyze",
	Aliases: []string{"a"},
	Short:   "Analyze recent entries",
	Long: `Run rolling-window analysis over stored entries.

WHAT YOU GET:

  Averages       Sleep, mood, weight, and todo completion over the window
  Weak days      Weekdays that consistently underperform on todos
  Correlations   Sleep-to-mood and mood-to-completion, when enough data
  Streak         Signed run of on-track (>=50% todos) days
  Todo target    Recommended todo count for tomorrow
  Warnings       Low sleep, low mood, declining completion

EXAMPLES:

  daylog analyze            # 7-day window
  daylog analyze -w 30      # 30-day window`,
	RunE: func(cmd *cobra.Command, args []string) error {
		entries, err := appStore.Entries()
		if err != nil {
			return fmt.Errorf("failed to read store: %w", err)
		}
		if len(entries) == 0 {
			fmt.Println("No entries found. Run 'daylog extract' to add one.")
			return nil
		}

		now := time.Now()
		faint := color.New(color.Faint)

		avg := analytics.RollingAverages(entries, analyzeWindow, now)
		fmt.Printf("AVERAGES %s\n", faint.Sprintf("(last %d days, %d with data)", analyzeWindow, avg.SampleDays))
		printAvg("Sleep", avg.SleepHours, "h")
		printAvg("Sleep quality", avg.SleepQuality, "/10")
		printAvg("Morning mood", avg.MorningMood, "/10")
		printAvg("Bedtime mood", avg.BedtimeMood, "/10")
		printAvg("Weight", avg.WeightLbs, " lbs")
		if avg.TodoCompletion != nil {
			fmt.Printf("  %-14s %.0f%%\n", "Todos", *avg.TodoCompletion*100)
		}

		patterns := analytics.DayOfWeekPatterns(entries, analyzeWindow, now)
		if len(patterns.WeakDays) > 0 {
			fmt.Println()
			fmt.Println("WEAK DAYS")
			for _, d := range patterns.WeakDays {
				p := patterns.ByDay[d]
				fmt.Printf("  %-10s %.0f%% todo completion over %d days\n",
					d, p.TodoCompletion*100, p.Samples)
			}
		}

		corr := analytics.CorrelationAnalysis(entries, 30, now)
		if len(corr.Insights) > 0 {
			fmt.Println()
			fmt.Println("CORRELATIONS (30 days)")
			for _, s := range corr.Insights {
				fmt.Printf("  %s\n", s)
			}
		}

		streak := analytics.CalculateComplianceStreak(entries)
		fmt.Println()
		switch streak.Status {
		case "positive":
			color.Green("STREAK: %d days on track %s", streak.Current, faint.Sprintf("(best %d)", streak.Longest))
		case "negative":
			color.Red("STREAK: %d days below target %s", -streak.Current, faint.Sprintf("(best %d)", streak.Longest))
		default:
			fmt.Println("STREAK: no todo data yet")
		}

		fmt.Printf("Suggested todos for tomorrow: %d\n",
			analytics.RecommendedTodoCount(entries, now))

		warnings := analytics.Warnings(entries, now)
		if len(warnings) > 0 {
			fmt.Println()
			for _, w := range warnings {
				color.Yellow("⚠ %s", w)
			}
		}
		return nil
	},
}

func printAvg(label string, v *float64, unit string) {
	if v == nil {
		return
	}
	fmt.Printf("  %-14s %.1f%s\n", label, *v, unit)
}

func init() {
	analyzeCmd.Flags().IntVarP(&analyzeWindow, "window", "w", 7, "rolling window in days")
	rootCmd.AddCommand(analyzeCmd)
}
