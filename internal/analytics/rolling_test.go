// ABOUTME: Tests for rolling averages, weekday patterns, correlations, and warnings.
// ABOUTME: Windows are anchored at a fixed asOf date so fixtures stay deterministic.
package analytics

import (
	"math"
	"testing"
	"time"

	"github.com/harperreed/daylog/internal/models"
)

func asOf(t *testing.T, date string) time.Time {
	t.Helper()
	v, err := time.Parse(models.DateFormat, date)
	if err != nil {
		t.Fatal(err)
	}
	return v
}

// day builds an entry with sleep, morning mood, and a todo ratio.
func day(date string, sleep, mood float64, done, total int) models.DailyEntry {
	e := models.NewDailyEntry(date)
	if sleep > 0 {
		e.Sleep.Hours = &sleep
	}
	if mood > 0 {
		e.Mood.Morning = &mood
	}
	e.Todos = models.Todos{Total: total, Completed: done}
	if total > 0 {
		e.Todos.CompletionRate = float64(done) / float64(total)
	}
	return *e
}

func TestRollingAverages(t *testing.T) {
	entries := []models.DailyEntry{
		day("2026-03-05", 7.0, 6, 4, 5),
		day("2026-03-06", 8.0, 8, 5, 5),
		day("2026-03-07", 6.0, 7, 3, 5),
		day("2026-02-01", 2.0, 1, 0, 5), // outside the window
	}

	avg := RollingAverages(entries, 7, asOf(t, "2026-03-07"))
	if avg.SampleDays != 3 {
		t.Fatalf("sample days = %d, want 3", avg.SampleDays)
	}
	if avg.SleepHours == nil || *avg.SleepHours != 7.0 {
		t.Errorf("sleep avg = %v, want 7.0", avg.SleepHours)
	}
	if avg.MorningMood == nil || *avg.MorningMood != 7.0 {
		t.Errorf("mood avg = %v, want 7.0", avg.MorningMood)
	}
	if avg.TodoCompletion == nil || math.Abs(*avg.TodoCompletion-0.8) > 0.001 {
		t.Errorf("todo avg = %v, want 0.8", avg.TodoCompletion)
	}
	if avg.WeightLbs != nil {
		t.Errorf("weight avg = %v, want nil with no weights", avg.WeightLbs)
	}
}

func TestRollingAveragesEmpty(t *testing.T) {
	avg := RollingAverages(nil, 7, asOf(t, "2026-03-07"))
	if avg.SampleDays != 0 || avg.SleepHours != nil {
		t.Errorf("expected empty averages, got %+v", avg)
	}
}

func TestDayOfWeekPatterns(t *testing.T) {
	// 2026-03-02 and 2026-03-09 are Mondays; both under 50%.
	entries := []models.DailyEntry{
		day("2026-03-02", 7, 6, 1, 5),
		day("2026-03-09", 7, 6, 2, 5),
		day("2026-03-03", 7, 6, 5, 5),
		day("2026-03-10", 7, 6, 4, 5),
	}

	patterns := DayOfWeekPatterns(entries, 30, asOf(t, "2026-03-10"))
	if len(patterns.WeakDays) != 1 || patterns.WeakDays[0] != "Monday" {
		t.Errorf("weak days = %v, want [Monday]", patterns.WeakDays)
	}
	mon := patterns.ByDay["Monday"]
	if mon.Samples != 2 || math.Abs(mon.TodoCompletion-0.3) > 0.001 {
		t.Errorf("Monday pattern = %+v", mon)
	}
}

func TestDayOfWeekPatternsSampleFloor(t *testing.T) {
	// A single bad Wednesday must not be flagged.
	entries := []models.DailyEntry{
		day("2026-03-04", 7, 6, 0, 5),
		day("2026-03-05", 7, 6, 5, 5),
		day("2026-03-06", 7, 6, 5, 5),
	}

	patterns := DayOfWeekPatterns(entries, 30, asOf(t, "2026-03-06"))
	if len(patterns.WeakDays) != 0 {
		t.Errorf("weak days = %v, want none with 1 sample", patterns.WeakDays)
	}
	if patterns.ByDay["Wednesday"].Samples != 1 {
		t.Errorf("Wednesday samples = %d, want 1", patterns.ByDay["Wednesday"].Samples)
	}
}

func TestCorrelationAnalysis(t *testing.T) {
	// Sleep and mood rise together over 6 days.
	var entries []models.DailyEntry
	sleeps := []float64{5, 6, 6.5, 7, 7.5, 8}
	moods := []float64{3, 4, 5, 6, 7, 8}
	dates := datesBack("2026-03-07", 6)
	for i, d := range dates {
		entries = append(entries, day(d, sleeps[i], moods[i], i, 5))
	}

	c := CorrelationAnalysis(entries, 30, asOf(t, "2026-03-07"))
	if c.SleepMood == nil {
		t.Fatalf("sleep/mood correlation missing, insights: %v", c.Insights)
	}
	if *c.SleepMood < 0.95 {
		t.Errorf("sleep/mood r = %f, want near 1", *c.SleepMood)
	}
	if c.MoodCompletion == nil || *c.MoodCompletion < 0.95 {
		t.Errorf("mood/completion correlation = %v", c.MoodCompletion)
	}
	if len(c.Insights) != 2 {
		t.Errorf("insights = %v", c.Insights)
	}
}

func TestCorrelationInsufficientData(t *testing.T) {
	entries := []models.DailyEntry{
		day("2026-03-05", 7, 6, 4, 5),
		day("2026-03-06", 8, 7, 5, 5),
		day("2026-03-07", 6, 5, 3, 5),
	}

	c := CorrelationAnalysis(entries, 30, asOf(t, "2026-03-07"))
	if c.SleepMood != nil || c.MoodCompletion != nil {
		t.Error("expected nil correlations below the entry floor")
	}
	if len(c.Insights) != 1 {
		t.Fatalf("insights = %v", c.Insights)
	}
	if got := c.Insights[0]; len(got) == 0 || got[:17] != "insufficient data" {
		t.Errorf("insight = %q, want insufficient data message", got)
	}
}

func TestComplianceStreakSignConvention(t *testing.T) {
	// Most-recent-first rates: 0.9, 0.85, 0.3.
	entries := []models.DailyEntry{
		day("2026-03-07", 7, 6, 9, 10),
		day("2026-03-06", 7, 6, 17, 20),
		day("2026-03-05", 7, 6, 3, 10),
	}

	streak := CalculateComplianceStreak(entries)
	if streak.Current != 2 {
		t.Errorf("current = %d, want 2", streak.Current)
	}
	if streak.Status != "positive" {
		t.Errorf("status = %s, want positive", streak.Status)
	}
	if streak.Longest != 2 {
		t.Errorf("longest = %d, want 2", streak.Longest)
	}
}

func TestComplianceStreakNegative(t *testing.T) {
	entries := []models.DailyEntry{
		day("2026-03-07", 7, 6, 1, 10),
		day("2026-03-06", 7, 6, 2, 10),
		day("2026-03-05", 7, 6, 9, 10),
	}

	streak := CalculateComplianceStreak(entries)
	if streak.Current != -2 || streak.Status != "negative" {
		t.Errorf("streak = %+v, want current -2 negative", streak)
	}
	if streak.Longest != 1 {
		t.Errorf("longest = %d, want 1", streak.Longest)
	}
}

func TestComplianceStreakMissingDayBreaks(t *testing.T) {
	entries := []models.DailyEntry{
		day("2026-03-07", 7, 6, 9, 10),
		day("2026-03-06", 7, 6, 0, 0), // no todos recorded
		day("2026-03-05", 7, 6, 9, 10),
	}

	streak := CalculateComplianceStreak(entries)
	if streak.Current != 1 {
		t.Errorf("current = %d, want 1", streak.Current)
	}
}

func TestRecommendedTodoCount(t *testing.T) {
	build := func(done, total int) []models.DailyEntry {
		var entries []models.DailyEntry
		for _, d := range datesBack("2026-03-07", 5) {
			entries = append(entries, day(d, 7, 6, done, total))
		}
		return entries
	}
	ref := asOf(t, "2026-03-07")

	if got := RecommendedTodoCount(build(1, 5), ref); got != 2 {
		t.Errorf("struggling week: got %d, want 2", got)
	}
	if got := RecommendedTodoCount(build(3, 5), ref); got != 3 {
		t.Errorf("middling week: got %d, want 3", got)
	}
	if got := RecommendedTodoCount(build(5, 5), ref); got != 4 {
		t.Errorf("strong week: got %d, want 4", got)
	}
	if got := RecommendedTodoCount(nil, ref); got != 3 {
		t.Errorf("no data: got %d, want 3", got)
	}
}

func TestWarnings(t *testing.T) {
	var entries []models.DailyEntry
	for _, d := range datesBack("2026-03-07", 5) {
		entries = append(entries, day(d, 5.5, 3, 1, 5))
	}

	warns := Warnings(entries, asOf(t, "2026-03-07"))
	if len(warns) != 4 {
		t.Errorf("expected all 4 warnings, got %v", warns)
	}
}

func TestWarningsQuietWeek(t *testing.T) {
	var entries []models.DailyEntry
	for _, d := range datesBack("2026-03-07", 5) {
		e := day(d, 8, 8, 5, 5)
		e.Training.Activities = []models.Activity{{Type: "run"}}
		entries = append(entries, e)
	}

	if warns := Warnings(entries, asOf(t, "2026-03-07")); len(warns) != 0 {
		t.Errorf("expected no warnings, got %v", warns)
	}
}
