// ABOUTME: Best-effort extraction of one day's document into a DailyEntry.
// ABOUTME: Every sub-block failure degrades to nulls plus an extraction note.
package extract

import (
	"context"
	"fmt"
	"strings"

	"github.com/harperreed/daylog/internal/macro"
	"github.com/harperreed/daylog/internal/markdown"
	"github.com/harperreed/daylog/internal/models"
	"github.com/harperreed/daylog/internal/normalize"
)

// Section headings recognized in a daily document.
const (
	sectionDailyStats = "Daily Stats"
	sectionTraining   = "Training Output"
	sectionStrength   = "Strength Log"
	sectionTodos      = "Today's Todos"
	sectionHabits     = "Daily Habits"
	sectionFuelLog    = "Fuel Log"
)

// Extractor turns a date's document into a DailyEntry. The macro
// estimator may be nil, in which case nutrition stays null with a note.
type Extractor struct {
	Docs      DocumentSource
	Habits    []models.HabitDefinition
	Estimator macro.Estimator
}

// New creates an Extractor with the given collaborators.
func New(docs DocumentSource, habits []models.HabitDefinition, estimator macro.Estimator) *Extractor {
	return &Extractor{Docs: docs, Habits: habits, Estimator: estimator}
}

// ExtractDay produces the entry for one date. The only failure mode is a
// missing document (ErrNoDocument); everything else returns an entry,
// possibly with null sub-blocks and notes explaining what degraded.
func (x *Extractor) ExtractDay(ctx context.Context, date string) (*models.DailyEntry, error) {
	text, err := x.Docs.Read(date)
	if err != nil {
		return nil, err
	}

	entry := models.NewDailyEntry(date)
	x.extractStats(entry, text)
	x.extractTraining(entry, text)
	x.extractStrength(entry, text)
	x.extractTodos(entry, text)
	x.extractHabits(entry, text)
	x.extractNutrition(ctx, entry, text)
	return entry, nil
}

// extractStats fills sleep, weight, and mood from the Daily Stats table.
func (x *Extractor) extractStats(entry *models.DailyEntry, text string) {
	section := markdown.ExtractSection(text, sectionDailyStats)
	if strings.TrimSpace(section) == "" {
		return
	}

	rows := markdown.ParseTableRows(section)
	if len(rows) == 0 {
		entry.AddNote("daily stats: no table rows")
		return
	}

	for _, row := range rows {
		label, value := row[0], row[1]
		switch {
		case strings.EqualFold(label, "Sleep Hours"):
			entry.Sleep.Hours = normalize.SleepHours(value)
		case strings.EqualFold(label, "Sleep Quality"):
			entry.Sleep.Quality = normalize.QualityScore(value, 10)
		case strings.EqualFold(label, "Weight"):
			entry.WeightLbs = normalize.Float(strings.TrimSuffix(value, "lbs"))
		case strings.EqualFold(label, "Morning Mood"):
			entry.Mood.Morning = normalize.QualityScore(value, 10)
		case strings.EqualFold(label, "Bedtime Mood"):
			entry.Mood.Bedtime = normalize.QualityScore(value, 10)
		}
	}
}

// extractTraining fills cardio activities from the Training Output table.
// The second cell carries "distance/duration"; the third is watts for bike
// rows and heart rate otherwise.
func (x *Extractor) extractTraining(entry *models.DailyEntry, text string) {
	entry.Training.WorkoutType = markdown.InlineField(text, "Workout Type")

	section := markdown.ExtractSection(text, sectionTraining)
	if strings.TrimSpace(section) == "" {
		return
	}

	for _, row := range markdown.ParseTableRows(section) {
		actType := strings.ToLower(strings.TrimSpace(row[0]))
		switch actType {
		case "swim", "bike", "run":
		default:
			continue
		}

		dist, dur := normalize.TrainingValue(row[1])
		act := models.Activity{
			Type:            actType,
			Distance:        dist,
			DurationMinutes: dur,
			DistanceUnit:    distanceUnit(actType),
		}
		if len(row) > 2 {
			effort := normalize.Int(strings.TrimRight(strings.TrimSpace(row[2]), "wW bpm"))
			if actType == "bike" {
				act.AvgWatts = effort
			} else {
				act.AvgHR = effort
			}
		}
		if act.Distance == nil && act.DurationMinutes == nil {
			entry.AddNote(fmt.Sprintf("training: unparsable %s row %q", actType, row[1]))
			continue
		}
		entry.Training.Activities = append(entry.Training.Activities, act)
	}
}

// Swim distances are logged in yards, bike and run in miles.
func distanceUnit(actType string) string {
	if actType == "swim" {
		return "yd"
	}
	return "mi"
}

// extractStrength fills strength exercises from the Strength Log table.
func (x *Extractor) extractStrength(entry *models.DailyEntry, text string) {
	section := markdown.ExtractSection(text, sectionStrength)
	if strings.TrimSpace(section) == "" {
		return
	}

	for _, row := range markdown.ParseTableRows(section) {
		if len(row) < 4 {
			continue
		}
		ex := models.StrengthExercise{
			Exercise:  row[0],
			Sets:      normalize.Int(row[1]),
			Reps:      normalize.Int(row[2]),
			WeightLbs: normalize.Float(strings.TrimSuffix(strings.TrimSpace(row[3]), "lbs")),
		}
		if ex.Exercise == "" {
			continue
		}
		entry.Training.StrengthExercises = append(entry.Training.StrengthExercises, ex)
	}
}

// extractTodos counts the day's checkboxes.
func (x *Extractor) extractTodos(entry *models.DailyEntry, text string) {
	section := markdown.ExtractSection(text, sectionTodos)
	if strings.TrimSpace(section) == "" {
		return
	}

	checked, total := markdown.CountCheckboxes(section)
	entry.Todos = models.Todos{Total: total, Completed: checked}
	if total > 0 {
		entry.Todos.CompletionRate = float64(checked) / float64(total)
	}
}

// extractHabits matches checkbox labels against configured habit names.
// Unrecognized labels are noted once so typos surface instead of
// silently dropping a habit.
func (x *Extractor) extractHabits(entry *models.DailyEntry, text string) {
	entry.Habits.Details = map[string]bool{}

	section := markdown.ExtractSection(text, sectionHabits)
	if strings.TrimSpace(section) == "" {
		return
	}

	for _, item := range markdown.CheckboxItems(section) {
		def := models.MatchHabit(x.Habits, item.Label)
		if def == nil {
			entry.AddNote(fmt.Sprintf("habits: unrecognized habit %q", item.Label))
			continue
		}
		entry.Habits.Details[def.ID] = item.Done
		if item.Done {
			entry.Habits.Completed = append(entry.Habits.Completed, def.ID)
		} else {
			entry.Habits.Missed = append(entry.Habits.Missed, def.ID)
		}
	}

	tracked := len(entry.Habits.Details)
	if tracked > 0 {
		entry.Habits.CompletionRate = float64(len(entry.Habits.Completed)) / float64(tracked)
	}
}

// extractNutrition hands the Fuel Log to the macro estimator. Estimator
// failure is a partial parse failure of this sub-block only: nutrition
// stays null, a note is recorded, and no retry happens here.
func (x *Extractor) extractNutrition(ctx context.Context, entry *models.DailyEntry, text string) {
	section := markdown.ExtractSection(text, sectionFuelLog)

	// A hand-counted "Calories:: ~3500" or "Calories:: 3500-4000" line
	// takes precedence over whatever the estimator comes back with.
	if raw := markdown.InlineField(section, "Calories"); raw != "" {
		if v := normalize.ApproxInt(raw); v > 0 {
			entry.Nutrition.Calories = &v
		}
	}

	var items []string
	for _, line := range markdown.FreeTextLines(section) {
		if strings.Contains(line, "::") {
			continue
		}
		items = append(items, line)
	}
	if len(items) == 0 {
		return
	}

	for _, item := range items {
		entry.Nutrition.LineItems = append(entry.Nutrition.LineItems, models.NutritionItem{Description: item})
	}

	if x.Estimator == nil {
		entry.AddNote("nutrition: macro estimator not configured")
		return
	}

	m, err := x.Estimator.Estimate(ctx, items)
	if err != nil {
		entry.AddNote(fmt.Sprintf("nutrition: macro estimation failed: %v", err))
		return
	}

	if entry.Nutrition.Calories == nil {
		entry.Nutrition.Calories = &m.Calories
	}
	entry.Nutrition.ProteinG = &m.ProteinG
	entry.Nutrition.CarbsG = &m.CarbsG
	entry.Nutrition.FatG = &m.FatG
	if m.FiberG > 0 {
		entry.Nutrition.FiberG = &m.FiberG
	}
}
