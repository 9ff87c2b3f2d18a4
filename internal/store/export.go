// ABOUTME: Export and import for daylog data in JSON, YAML, and Markdown.
// ABOUTME: Markdown export is read-only; import accepts the JSON format.
package store

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/harperreed/daylog/internal/models"
)

// ExportData wraps a snapshot with provenance for interchange.
type ExportData struct {
	Version    string              `json:"version" yaml:"version"`
	ExportedAt time.Time           `json:"exported_at" yaml:"exported_at"`
	Tool       string              `json:"tool" yaml:"tool"`
	Entries    []models.DailyEntry `json:"entries" yaml:"entries"`
}

// Export gathers all entries from a store for serialization.
func Export(s Store) (*ExportData, error) {
	entries, err := s.Entries()
	if err != nil {
		return nil, fmt.Errorf("export entries: %w", err)
	}
	return &ExportData{
		Version:    SchemaVersion,
		ExportedAt: time.Now(),
		Tool:       "daylog",
		Entries:    entries,
	}, nil
}

// Import appends every exported entry, skipping dates that already
// exist. Returns the number of entries actually added.
func Import(s Store, data *ExportData) (int, error) {
	added := 0
	for i := range data.Entries {
		ok, err := s.Append(&data.Entries[i])
		if err != nil {
			return added, fmt.Errorf("import entry %s: %w", data.Entries[i].Date, err)
		}
		if ok {
			added++
		}
	}
	return added, nil
}

// RenderJSON serializes the export as indented JSON.
func (d *ExportData) RenderJSON() ([]byte, error) {
	out, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("render JSON: %w", err)
	}
	return out, nil
}

// RenderYAML serializes the export as YAML.
func (d *ExportData) RenderYAML() ([]byte, error) {
	out, err := yaml.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("render YAML: %w", err)
	}
	return out, nil
}

// RenderMarkdown serializes the export as a readable summary table.
func (d *ExportData) RenderMarkdown() []byte {
	var b strings.Builder
	b.WriteString("# Daylog Export\n\n")
	b.WriteString(fmt.Sprintf("Exported: %s\n\n", d.ExportedAt.Format("2006-01-02 15:04")))
	b.WriteString("| Date | Sleep | Mood AM | Todos | Habits | Notes |\n")
	b.WriteString("|------|-------|---------|-------|--------|-------|\n")

	entries := make([]models.DailyEntry, len(d.Entries))
	copy(entries, d.Entries)
	sort.Slice(entries, func(i, j int) bool { return entries[i].Date < entries[j].Date })

	for _, e := range entries {
		b.WriteString(fmt.Sprintf("| %s | %s | %s | %d/%d | %.0f%% | %d |\n",
			e.Date,
			fmtOpt(e.Sleep.Hours, "%.1fh"),
			fmtOpt(e.Mood.Morning, "%.0f"),
			e.Todos.Completed, e.Todos.Total,
			e.Habits.CompletionRate*100,
			len(e.Notes)))
	}
	return []byte(b.String())
}

func fmtOpt(v *float64, format string) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf(format, *v)
}

// ParseExport decodes a JSON export payload.
func ParseExport(data []byte) (*ExportData, error) {
	var d ExportData
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("parse export: %w", err)
	}
	return &d, nil
}
