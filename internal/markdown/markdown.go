// ABOUTME: Line-oriented extraction of sections, tables, checkboxes, and inline fields.
// ABOUTME: Deliberately not a full markdown parser; malformed input degrades silently.
package markdown

import (
	"regexp"
	"strings"
)

var (
	checkedRe   = regexp.MustCompile(`(?i)^\s*-\s*\[x\]`)
	uncheckedRe = regexp.MustCompile(`^\s*-\s*\[ \]`)
	// A separator row must carry at least one dash so that a blank
	// pipe row is not mistaken for one.
	separatorRe = regexp.MustCompile(`^\s*\|?[\s|:]*-[\s|:-]*\|?\s*$`)
)

// ExtractSection returns the text between the given "## Heading" line and
// the next "## " heading, or the end of the document. Returns an empty
// string when the heading does not exist. Heading matching is exact on the
// heading text after the marker, case-insensitive.
func ExtractSection(text, heading string) string {
	lines := strings.Split(text, "\n")
	start := -1
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if !strings.HasPrefix(trimmed, "## ") {
			continue
		}
		name := strings.TrimSpace(strings.TrimPrefix(trimmed, "## "))
		if start == -1 && strings.EqualFold(name, heading) {
			start = i + 1
			continue
		}
		if start != -1 {
			return strings.Join(lines[start:i], "\n")
		}
	}
	if start == -1 {
		return ""
	}
	return strings.Join(lines[start:], "\n")
}

// ParseTableRows splits pipe-table lines into trimmed cell lists. Separator
// rows ("---") are skipped, and the row immediately preceding a separator
// is treated as a header and dropped. Rows with fewer than two cells are
// skipped rather than reported.
func ParseTableRows(section string) [][]string {
	var rows [][]string
	for _, line := range strings.Split(section, "\n") {
		trimmed := strings.TrimSpace(line)
		if !strings.Contains(trimmed, "|") {
			continue
		}
		if separatorRe.MatchString(trimmed) {
			// The previous row was the header for this separator.
			if len(rows) > 0 {
				rows = rows[:len(rows)-1]
			}
			continue
		}
		cells := splitCells(trimmed)
		if len(cells) < 2 || allEmpty(cells) {
			continue
		}
		rows = append(rows, cells)
	}
	return rows
}

func allEmpty(cells []string) bool {
	for _, c := range cells {
		if c != "" {
			return false
		}
	}
	return true
}

func splitCells(line string) []string {
	line = strings.Trim(line, "|")
	parts := strings.Split(line, "|")
	cells := make([]string, 0, len(parts))
	for _, p := range parts {
		cells = append(cells, strings.TrimSpace(p))
	}
	return cells
}

// CountCheckboxes counts "- [x]" (case-insensitive) and "- [ ]" lines in a
// section, returning checked and total counts.
func CountCheckboxes(section string) (checked, total int) {
	for _, line := range strings.Split(section, "\n") {
		switch {
		case checkedRe.MatchString(line):
			checked++
			total++
		case uncheckedRe.MatchString(line):
			total++
		}
	}
	return checked, total
}

// CheckboxItems returns the label and state of every checkbox line in a
// section, in document order.
func CheckboxItems(section string) []CheckboxItem {
	var items []CheckboxItem
	for _, line := range strings.Split(section, "\n") {
		var done bool
		switch {
		case checkedRe.MatchString(line):
			done = true
		case uncheckedRe.MatchString(line):
			done = false
		default:
			continue
		}
		idx := strings.Index(line, "]")
		label := strings.TrimSpace(line[idx+1:])
		items = append(items, CheckboxItem{Label: label, Done: done})
	}
	return items
}

// CheckboxItem is one "- [x] Label" line.
type CheckboxItem struct {
	Label string
	Done  bool
}

// InlineField finds the first "Label:: value" line for the given label and
// returns its value, or an empty string when absent. Label matching is
// case-insensitive.
func InlineField(text, label string) string {
	for _, line := range strings.Split(text, "\n") {
		idx := strings.Index(line, "::")
		if idx < 0 {
			continue
		}
		key := strings.TrimSpace(strings.TrimLeft(line[:idx], "-* "))
		if strings.EqualFold(key, label) {
			return strings.TrimSpace(line[idx+2:])
		}
	}
	return ""
}

// FreeTextLines returns the non-empty, non-heading lines of a section,
// trimmed. Used for sections handed to external collaborators verbatim.
func FreeTextLines(section string) []string {
	var out []string
	for _, line := range strings.Split(section, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		out = append(out, strings.TrimLeft(trimmed, "- "))
	}
	return out
}
