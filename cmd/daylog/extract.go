// ABOUTME: CLI command for extracting a daily document into the store.
// ABOUTME: Runs the extraction pipeline and reports notes and analytics.
package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/harperreed/daylog/internal/extract"
	"github.com/harperreed/daylog/internal/models"
	"github.com/spf13/cobra"
)

var extractForce bool

var extractCmd = &cobra.Command{
	Use:     "extract [date]",
	Aliases: []string{"x"},
	Short:   "Extract metrics from a daily document",
	Long: `Extract structured metrics from a daily markdown document and
append them to the store.

The date defaults to today. The document is read from the configured
documents directory as <date>.md. Extraction is best-effort: fields
that cannot be parsed are left empty and noted, never fatal.

Appending is idempotent by date. Re-extracting an already-stored day
leaves the store unchanged unless --force is given, which replaces
the stored entry.

EXAMPLES:

  daylog extract                 # Extract today's document
  daylog extract 2026-03-01      # Extract a specific day
  daylog extract 2026-03-01 -f   # Re-extract, replacing the stored entry`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		date := time.Now().Format(models.DateFormat)
		if len(args) == 1 {
			date = args[0]
		}
		if _, err := time.Parse(models.DateFormat, date); err != nil {
			return fmt.Errorf("invalid date %q (use YYYY-MM-DD)", date)
		}

		extractor := extract.New(
			&extract.DirSource{Dir: cfg.GetDocsDir()},
			cfg.GetHabits(),
			cfg.Estimator(),
		)

		entry, err := extractor.ExtractDay(cmd.Context(), date)
		if err != nil {
			if errors.Is(err, extract.ErrNoDocument) {
				return fmt.Errorf("no document for %s in %s", date, cfg.GetDocsDir())
			}
			return fmt.Errorf("extraction failed: %w", err)
		}

		if extractForce {
			existing, err := appStore.Get(date)
			if err != nil {
				return fmt.Errorf("failed to read store: %w", err)
			}
			if existing != nil {
				if err := appStore.Delete(date); err != nil {
					return fmt.Errorf("failed to replace entry: %w", err)
				}
			}
		}

		added, err := appStore.Append(entry)
		if err != nil {
			return fmt.Errorf("failed to store entry: %w", err)
		}

		if !added {
			color.Yellow("Entry for %s already exists; store unchanged.", date)
			fmt.Println("Use --force to re-extract and replace it.")
			return nil
		}

		color.Green("✓ Extracted %s", date)
		printEntrySummary(entry)

		if len(entry.Notes) > 0 {
			fmt.Println()
			color.Yellow("Extraction notes:")
			for _, n := range entry.Notes {
				fmt.Printf("  - %s\n", n)
			}
		}
		return nil
	},
}

func printEntrySummary(e *models.DailyEntry) {
	faint := color.New(color.Faint)

	if e.Sleep.Hours != nil {
		fmt.Printf("  Sleep:    %.2f h", *e.Sleep.Hours)
		if e.Sleep.Quality != nil {
			fmt.Print(faint.Sprintf("  (quality %.1f/10)", *e.Sleep.Quality))
		}
		fmt.Println()
	}
	if e.WeightLbs != nil {
		fmt.Printf("  Weight:   %.1f lbs\n", *e.WeightLbs)
	}
	if e.Mood.Morning != nil || e.Mood.Bedtime != nil {
		fmt.Printf("  Mood:     %s / %s\n",
			fmtMood(e.Mood.Morning), fmtMood(e.Mood.Bedtime))
	}
	if len(e.Training.Activities) > 0 || len(e.Training.StrengthExercises) > 0 {
		fmt.Printf("  Training: %d activities, %d lifts\n",
			len(e.Training.Activities), len(e.Training.StrengthExercises))
	}
	if e.Todos.Total > 0 {
		fmt.Printf("  Todos:    %d/%d (%.0f%%)\n",
			e.Todos.Completed, e.Todos.Total, e.Todos.CompletionRate*100)
	}
	if len(e.Habits.Details) > 0 {
		fmt.Printf("  Habits:   %d/%d (%.0f%%)\n",
			len(e.Habits.Completed), len(e.Habits.Details), e.Habits.CompletionRate*100)
	}
	if e.Nutrition.Calories != nil {
		fmt.Printf("  Fuel:     %d kcal", *e.Nutrition.Calories)
		if e.Nutrition.ProteinG != nil {
			fmt.Print(faint.Sprintf("  (%dg protein)", *e.Nutrition.ProteinG))
		}
		fmt.Println()
	}
}

func fmtMood(v *float64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%.1f", *v)
}

func init() {
	extractCmd.Flags().BoolVarP(&extractForce, "force", "f", false, "replace an existing entry for the date")
	rootCmd.AddCommand(extractCmd)
}
