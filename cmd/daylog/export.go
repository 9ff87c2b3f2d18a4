// ABOUTME: CLI commands for exporting and importing entry data.
// ABOUTME: Supports JSON, YAML, and Markdown export formats.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/harperreed/daylog/internal/store"
	"github.com/spf13/cobra"
)

var exportOutput string

var exportCmd = &cobra.Command{
	Use:   "export <format>",
	Short: "Export entry data",
	Long: `Export stored entries in various formats.

FORMATS:

  json       Full JSON export (suitable for backup/restore)
  yaml       YAML export (human-readable)
  markdown   Markdown table (for documentation/sharing)

EXAMPLES:

  daylog export json                 # Export all data as JSON
  daylog export json -o backup.json  # Save to file
  daylog export yaml                 # Export as YAML
  daylog export markdown             # One table row per day`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"json", "yaml", "markdown"},
	RunE: func(cmd *cobra.Command, args []string) error {
		format := args[0]

		export, err := store.Export(appStore)
		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}

		var data []byte
		switch format {
		case "json":
			data, err = export.RenderJSON()
		case "yaml":
			data, err = export.RenderYAML()
		case "markdown":
			data = export.RenderMarkdown()
		default:
			return fmt.Errorf("unknown format: %s (use json, yaml, or markdown)", format)
		}
		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}

		if exportOutput != "" {
			if err := os.WriteFile(exportOutput, data, 0600); err != nil {
				return fmt.Errorf("failed to write file: %w", err)
			}
			color.Green("✓ Exported %d entries to %s", len(export.Entries), exportOutput)
			return nil
		}
		fmt.Println(string(data))
		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import entry data from a backup",
	Long: `Import entries from a previously exported JSON or YAML file.

Entries whose dates already exist in the store are skipped; import
never overwrites.

EXAMPLES:

  daylog import backup.json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		filename := args[0]

		data, err := os.ReadFile(filename)
		if err != nil {
			return fmt.Errorf("failed to read file: %w", err)
		}

		export, err := store.ParseExport(data)
		if err != nil {
			return fmt.Errorf("failed to parse %s: %w", filename, err)
		}

		added, err := store.Import(appStore, export)
		if err != nil {
			return fmt.Errorf("import failed: %w", err)
		}

		skipped := len(export.Entries) - added
		color.Green("✓ Imported %d entries from %s", added, filename)
		if skipped > 0 {
			fmt.Printf("  %d already present, skipped\n", skipped)
		}
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file (default: stdout)")

	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
}
