// ABOUTME: CLI command for generating the tiered planning context.
// ABOUTME: Emits JSON sized for an LLM prompt: recent days full, older summarized.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/harperreed/daylog/internal/analytics"
	"github.com/spf13/cobra"
)

var (
	contextFullDays    int
	contextSummaryDays int
	contextOutput      string
)

var contextCmd = &cobra.Command{
	Use:   "context",
	Short: "Generate planning context JSON",
	Long: `Generate a tiered JSON context for daily planning.

The most recent days are included in full; the days before them are
compressed to one-line summaries. Rolling averages, weekday patterns,
correlations, the compliance streak, a recommended todo count,
warnings, and habit analytics ride along.

The output is meant to be pasted into (or piped to) an LLM prompt.

EXAMPLES:

  daylog context                    # 3 full + 4 summarized days to stdout
  daylog context --full 5           # More full-detail days
  daylog context -o context.json    # Write to a file`,
	RunE: func(cmd *cobra.Command, args []string) error {
		entries, err := appStore.Entries()
		if err != nil {
			return fmt.Errorf("failed to read store: %w", err)
		}

		c := analytics.BuildContext(entries, cfg.GetHabits(),
			contextFullDays, contextSummaryDays, time.Now())

		data, err := json.MarshalIndent(c, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal context: %w", err)
		}

		if contextOutput != "" {
			if err := os.WriteFile(contextOutput, data, 0600); err != nil {
				return fmt.Errorf("failed to write file: %w", err)
			}
			color.Green("✓ Context written to %s", contextOutput)
			return nil
		}
		fmt.Println(string(data))
		return nil
	},
}

func init() {
	contextCmd.Flags().IntVar(&contextFullDays, "full", analytics.DefaultFullDays, "days included in full detail")
	contextCmd.Flags().IntVar(&contextSummaryDays, "summary", analytics.DefaultSummaryDays, "older days included as summaries")
	contextCmd.Flags().StringVarP(&contextOutput, "output", "o", "", "output file (default: stdout)")
	rootCmd.AddCommand(contextCmd)
}
