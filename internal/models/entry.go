// ABOUTME: DailyEntry model and its nullable sub-blocks for one day's log.
// ABOUTME: Covers sleep, mood, training, todos, habits, and nutrition data.
package models

import (
	"time"

	"github.com/google/uuid"
)

// DateFormat is the canonical date key layout, e.g. "2026-08-30".
const DateFormat = "2006-01-02"

// DailyEntry holds everything extracted from one day's log document.
// The Date field is the identity: exactly one entry exists per date.
// Every sub-block is optional; a failed sub-parse leaves nulls plus a
// human-readable line in Notes rather than aborting the extraction.
type DailyEntry struct {
	ID        uuid.UUID `json:"id"`
	Date      string    `json:"date"`
	Sleep     Sleep     `json:"sleep"`
	WeightLbs *float64  `json:"weight_lbs"`
	Mood      Mood      `json:"mood"`
	Training  Training  `json:"training"`
	Todos     Todos     `json:"todos"`
	Habits    Habits    `json:"habits"`
	Nutrition Nutrition `json:"nutrition"`
	Notes     []string  `json:"extraction_notes"`
	CreatedAt time.Time `json:"created_at"`
}

// NewDailyEntry creates an empty entry for a date with a fresh ID.
func NewDailyEntry(date string) *DailyEntry {
	return &DailyEntry{
		ID:        uuid.New(),
		Date:      date,
		Notes:     []string{},
		CreatedAt: time.Now(),
	}
}

// AddNote records an extraction warning on the entry.
func (e *DailyEntry) AddNote(note string) {
	e.Notes = append(e.Notes, note)
}

// Day parses the entry's date key. Returns the zero time if malformed.
func (e *DailyEntry) Day() time.Time {
	t, _ := time.Parse(DateFormat, e.Date)
	return t
}

// Sleep holds nightly sleep duration and subjective quality.
type Sleep struct {
	Hours   *float64 `json:"hours"`
	Quality *float64 `json:"quality"` // 1-10 scale
}

// Mood holds morning and bedtime mood scores on a 1-10 scale.
type Mood struct {
	Morning *float64 `json:"morning"`
	Bedtime *float64 `json:"bedtime"`
}

// Activity is one cardio session from the Training Output table.
type Activity struct {
	Type            string   `json:"type"`
	Distance        *float64 `json:"distance"`
	DistanceUnit    string   `json:"distance_unit"`
	DurationMinutes *float64 `json:"duration_minutes"`
	AvgHR           *int     `json:"avg_hr,omitempty"`
	AvgWatts        *int     `json:"avg_watts,omitempty"`
}

// StrengthExercise is one row from the Strength Log table.
type StrengthExercise struct {
	Exercise  string   `json:"exercise"`
	Sets      *int     `json:"sets"`
	Reps      *int     `json:"reps"`
	WeightLbs *float64 `json:"weight_lbs"`
}

// Training aggregates the day's workout data.
type Training struct {
	WorkoutType       string             `json:"workout_type"`
	Activities        []Activity         `json:"activities"`
	StrengthExercises []StrengthExercise `json:"strength_exercises"`
}

// Todos summarizes the day's checkbox task list.
type Todos struct {
	Total          int     `json:"total"`
	Completed      int     `json:"completed"`
	CompletionRate float64 `json:"completion_rate"`
}

// Habits records which configured habits were completed or missed.
// Details maps habit ID to completion for every habit tracked that day.
type Habits struct {
	Completed      []string        `json:"completed"`
	Missed         []string        `json:"missed"`
	CompletionRate float64         `json:"completion_rate"`
	Details        map[string]bool `json:"details"`
}

// Tracked reports whether the habit appeared in this day's log at all.
func (h Habits) Tracked(habitID string) bool {
	_, ok := h.Details[habitID]
	return ok
}

// Done reports whether the habit was tracked and completed.
func (h Habits) Done(habitID string) bool {
	return h.Details[habitID]
}

// NutritionItem is one free-text line from the Fuel Log.
type NutritionItem struct {
	Description string `json:"description"`
}

// Nutrition holds estimated daily macros. All values come from the
// macro-estimation collaborator and stay null when it is unavailable.
type Nutrition struct {
	Calories  *int            `json:"calories"`
	ProteinG  *int            `json:"protein_g"`
	CarbsG    *int            `json:"carbs_g"`
	FatG      *int            `json:"fat_g"`
	FiberG    *int            `json:"fiber_g"`
	LineItems []NutritionItem `json:"line_items"`
}
