// ABOUTME: CLI command for starting the MCP server.
// ABOUTME: Runs a stdio-based MCP server for AI assistant integration.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/harperreed/daylog/internal/extract"
	"github.com/harperreed/daylog/internal/mcp"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server",
	Long: `Start the Model Context Protocol (MCP) server for AI assistant integration.

MCP allows AI assistants like Claude to interact with your entries through
a standardized protocol. The server communicates via stdin/stdout.

CLAUDE DESKTOP CONFIGURATION:

  Add this to your Claude Desktop config (claude_desktop_config.json):

  {
    "mcpServers": {
      "daylog": {
        "command": "daylog",
        "args": ["mcp"]
      }
    }
  }

AVAILABLE TOOLS:

  extract_day    Extract a daily document and store it
  get_entry      Get the stored entry for a date
  list_entries   List recent entries
  habit_report   Get streaks, weekly summaries, and trends
  analyze        Run rolling-window analysis
  delete_entry   Delete the entry for a date

AVAILABLE RESOURCES:

  daylog://recent     Last 7 entries
  daylog://context    Tiered planning context
  daylog://warnings   Active pattern warnings`,
	RunE: func(cmd *cobra.Command, args []string) error {
		extractor := extract.New(
			&extract.DirSource{Dir: cfg.GetDocsDir()},
			cfg.GetHabits(),
			cfg.Estimator(),
		)

		server, err := mcp.NewServer(appStore, extractor, cfg.GetHabits())
		if err != nil {
			return err
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		// Handle shutdown signals
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-sigChan
			cancel()
		}()

		return server.Serve(ctx)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
