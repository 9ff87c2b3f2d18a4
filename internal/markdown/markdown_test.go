// ABOUTME: Tests for section, table, checkbox, and inline field extraction.
// ABOUTME: Validates the never-raise contract on absent and malformed input.
package markdown

import (
	"reflect"
	"testing"
)

const sampleDoc = `# 2026-03-01

Workout Type:: endurance

## Daily Stats

| Sleep Hours | 7:30 |
| Sleep Quality | 8 |
| Weight | 180 |

## Today's Todos

- [x] Write report
- [X] Review PRs
- [x] Call dentist
- [ ] File taxes
- [ ] Clean desk

## Fuel Log

- Oatmeal with berries
- Chicken salad
`

func TestExtractSection(t *testing.T) {
	got := ExtractSection(sampleDoc, "Daily Stats")
	rows := ParseTableRows(got)
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows in Daily Stats, got %d: %v", len(rows), rows)
	}

	// Section runs to end of document when it is last.
	fuel := ExtractSection(sampleDoc, "Fuel Log")
	lines := FreeTextLines(fuel)
	if len(lines) != 2 {
		t.Errorf("expected 2 fuel lines, got %d: %v", len(lines), lines)
	}
}

func TestExtractSectionMissing(t *testing.T) {
	if got := ExtractSection(sampleDoc, "Strength Log"); got != "" {
		t.Errorf("expected empty string for missing section, got %q", got)
	}
	if got := ExtractSection("", "Daily Stats"); got != "" {
		t.Errorf("expected empty string for empty document, got %q", got)
	}
}

func TestParseTableRows(t *testing.T) {
	section := `
| Exercise | Sets | Reps | Weight |
|----------|------|------|--------|
| Squat | 5 | 5 | 225 |
| Bench Press | 3 | 8 | 185 |
| malformed
`
	rows := ParseTableRows(section)
	want := [][]string{
		{"Squat", "5", "5", "225"},
		{"Bench Press", "3", "8", "185"},
	}
	if !reflect.DeepEqual(rows, want) {
		t.Errorf("rows mismatch:\ngot  %v\nwant %v", rows, want)
	}
}

func TestParseTableRowsNoHeader(t *testing.T) {
	// Label/value tables without a separator keep every row.
	section := "| Sleep Hours | 7:30 |\n| Weight | 180 |"
	rows := ParseTableRows(section)
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0][0] != "Sleep Hours" || rows[0][1] != "7:30" {
		t.Errorf("unexpected first row: %v", rows[0])
	}
}

func TestParseTableRowsBlankRow(t *testing.T) {
	// A blank pipe row is not a separator; it must not swallow the
	// data row above it, and it contributes no row itself.
	section := "| Sleep Hours | 7:30 |\n|  |  |\n| Weight | 180 |"
	rows := ParseTableRows(section)
	want := [][]string{
		{"Sleep Hours", "7:30"},
		{"Weight", "180"},
	}
	if !reflect.DeepEqual(rows, want) {
		t.Errorf("rows mismatch:\ngot  %v\nwant %v", rows, want)
	}
}

func TestCountCheckboxes(t *testing.T) {
	section := ExtractSection(sampleDoc, "Today's Todos")
	checked, total := CountCheckboxes(section)
	if checked != 3 || total != 5 {
		t.Errorf("got (%d, %d), want (3, 5)", checked, total)
	}

	checked, total = CountCheckboxes("no checkboxes here")
	if checked != 0 || total != 0 {
		t.Errorf("got (%d, %d) for plain text, want (0, 0)", checked, total)
	}
}

func TestCheckboxItems(t *testing.T) {
	items := CheckboxItems("- [x] Meditation\n- [ ] Reading\n* not a box")
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].Label != "Meditation" || !items[0].Done {
		t.Errorf("unexpected first item: %+v", items[0])
	}
	if items[1].Label != "Reading" || items[1].Done {
		t.Errorf("unexpected second item: %+v", items[1])
	}
}

func TestInlineField(t *testing.T) {
	if got := InlineField(sampleDoc, "Workout Type"); got != "endurance" {
		t.Errorf("got %q, want endurance", got)
	}
	if got := InlineField(sampleDoc, "workout type"); got != "endurance" {
		t.Errorf("case-insensitive lookup failed: %q", got)
	}
	if got := InlineField(sampleDoc, "Nonexistent"); got != "" {
		t.Errorf("expected empty for missing field, got %q", got)
	}
}
