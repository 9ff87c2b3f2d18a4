// ABOUTME: HabitDefinition model and name-based lookup helpers.
// ABOUTME: Habits are referenced by stable ID so renames keep history intact.
package models

import "strings"

// HabitDefinition is an externally configured habit. Records reference
// habits by ID everywhere so renaming a habit never rewrites history.
type HabitDefinition struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// DefaultHabits is the habit set used when no configuration exists.
var DefaultHabits = []HabitDefinition{
	{ID: "meditation", Name: "Meditation"},
	{ID: "reading", Name: "Reading"},
	{ID: "stretching", Name: "Stretching"},
	{ID: "journaling", Name: "Journaling"},
	{ID: "no_alcohol", Name: "No Alcohol"},
}

// MatchHabit finds the definition whose name matches the given label
// case-insensitively. Returns nil when no habit matches.
func MatchHabit(defs []HabitDefinition, label string) *HabitDefinition {
	label = strings.TrimSpace(label)
	for i := range defs {
		if strings.EqualFold(defs[i].Name, label) {
			return &defs[i]
		}
	}
	return nil
}
