// ABOUTME: Tiered context payload assembly for LLM prompting.
// ABOUTME: Recent days keep full detail; older days compress to one-line summaries.
package analytics

import (
	"time"

	"github.com/harperreed/daylog/internal/models"
)

// Default tier sizes: full detail for the 3 most recent days, compressed
// summaries for the 4 before that.
const (
	DefaultFullDays    = 3
	DefaultSummaryDays = 4
)

// DaySummary is the compressed form of an older day.
type DaySummary struct {
	Date            string   `json:"date"`
	SleepHours      *float64 `json:"sleep_hours"`
	MorningMood     *float64 `json:"morning_mood"`
	TodoCompletion  float64  `json:"todo_completion"`
	HabitCompletion float64  `json:"habit_completion"`
	Trained         bool     `json:"trained"`
}

// Context is the bounded-size payload handed to the prompting layer. It
// reshapes what the other analyzers already computed; nothing new is
// derived here.
type Context struct {
	GeneratedAt      string                        `json:"generated_at"`
	RecentDays       []models.DailyEntry           `json:"recent_days"`
	OlderDays        []DaySummary                  `json:"older_days"`
	WeeklyAverages   Averages                      `json:"weekly_averages"`
	WeekdayPatterns  WeekdayPatterns               `json:"weekday_patterns"`
	Correlations     Correlations                  `json:"correlations"`
	ComplianceStreak ComplianceStreak              `json:"compliance_streak"`
	RecommendedTodos int                           `json:"recommended_todos"`
	Warnings         []string                      `json:"warnings"`
	HabitStreaks     map[string]StreakPair         `json:"habit_streaks"`
	HabitTrends      map[string]Trend              `json:"habit_trends"`
	WeeklySummaries  map[string]map[string]*float64 `json:"weekly_summaries"`
}

// BuildContext assembles the tiered payload from the full entry history.
func BuildContext(entries []models.DailyEntry, habits []models.HabitDefinition, fullDays, summaryDays int, asOf time.Time) Context {
	if fullDays <= 0 {
		fullDays = DefaultFullDays
	}
	if summaryDays <= 0 {
		summaryDays = DefaultSummaryDays
	}

	desc := sortedByDateDesc(entries)

	ctx := Context{
		GeneratedAt:      asOf.Format(time.RFC3339),
		RecentDays:       []models.DailyEntry{},
		OlderDays:        []DaySummary{},
		WeeklyAverages:   RollingAverages(entries, 7, asOf),
		WeekdayPatterns:  DayOfWeekPatterns(entries, 30, asOf),
		Correlations:     CorrelationAnalysis(entries, 30, asOf),
		ComplianceStreak: CalculateComplianceStreak(entries),
		RecommendedTodos: RecommendedTodoCount(entries, asOf),
		Warnings:         Warnings(entries, asOf),
		HabitStreaks:     CalculateStreaks(entries, habits),
	}

	weekly := CalculateWeeklySummaries(entries, habits)
	ctx.WeeklySummaries = weekly
	ctx.HabitTrends = CalculateTrends(weekly, habits)

	for i, e := range desc {
		switch {
		case i < fullDays:
			ctx.RecentDays = append(ctx.RecentDays, e)
		case i < fullDays+summaryDays:
			ctx.OlderDays = append(ctx.OlderDays, summarizeDay(e))
		default:
			return ctx
		}
	}
	return ctx
}

func summarizeDay(e models.DailyEntry) DaySummary {
	return DaySummary{
		Date:            e.Date,
		SleepHours:      e.Sleep.Hours,
		MorningMood:     e.Mood.Morning,
		TodoCompletion:  e.Todos.CompletionRate,
		HabitCompletion: e.Habits.CompletionRate,
		Trained:         len(e.Training.Activities) > 0 || len(e.Training.StrengthExercises) > 0,
	}
}
