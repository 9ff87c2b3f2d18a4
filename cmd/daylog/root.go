// ABOUTME: Root Cobra command for daylog CLI.
// ABOUTME: Handles config loading and store lifecycle via PersistentPre/PostRunE.
package main

import (
	"fmt"

	"github.com/harperreed/daylog/internal/config"
	"github.com/harperreed/daylog/internal/store"
	"github.com/spf13/cobra"
)

var (
	cfg      *config.Config
	appStore store.Store
)

var rootCmd = &cobra.Command{
	Use:   "daylog",
	Short: "Extract and analyze daily log metrics",
	Long: `Daylog turns free-form daily markdown logs into structured metrics
and rolling analysis.

WHAT IT READS:

  One markdown file per day (YYYY-MM-DD.md) with loosely structured
  sections: Daily Stats, Training Output, Strength Log, Today's Todos,
  Daily Habits, and Fuel Log. Missing or malformed sections never fail
  extraction; fields are simply left empty.

QUICK START:

  $ daylog extract 2026-03-01      # Parse a day's log into the store
  $ daylog show 2026-03-01         # View the stored entry
  $ daylog list                    # Recent entries at a glance
  $ daylog habits                  # Streaks, weekly summaries, trends
  $ daylog analyze                 # Rolling averages, patterns, warnings
  $ daylog context                 # Tiered JSON context for planning

BACKENDS:

  Entries live in a JSON file by default. Set "backend": "sqlite" in the
  config to use SQLite instead, and 'daylog migrate' to move data over.

SYNC:

  $ daylog sync push      # Mirror entries to Charm Cloud (E2E encrypted)
  $ daylog sync status    # Check sync status

MCP INTEGRATION:

  Run 'daylog mcp' to start the Model Context Protocol server for use
  with Claude Desktop or other MCP-compatible AI assistants:

  {
    "mcpServers": {
      "daylog": { "command": "daylog", "args": ["mcp"] }
    }
  }

DATA STORAGE:

  Config lives at ~/.config/daylog/config.json. Entries live under
  ~/.local/share/daylog/ unless data_dir says otherwise.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip store init for commands that don't need it
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		appStore, err = cfg.OpenStorage()
		if err != nil {
			return fmt.Errorf("failed to open storage: %w", err)
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if appStore != nil {
			return appStore.Close()
		}
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
