// ABOUTME: Per-habit streaks, ISO-week completion ratios, and trend classification.
// ABOUTME: All functions take the full entry history and recompute from scratch.
package analytics

import (
	"fmt"
	"sort"

	"github.com/harperreed/daylog/internal/models"
)

// Trend classifies a habit's two-week movement.
type Trend string

const (
	TrendImproving        Trend = "improving"
	TrendStable           Trend = "stable"
	TrendDeclining        Trend = "declining"
	TrendInsufficientData Trend = "insufficient_data"
)

// trendThreshold is the rise or fall, in completion-rate points, that
// separates improving/declining from stable. A single fixed threshold
// with no smoothing; intentionally simplistic.
const trendThreshold = 0.10

// StreakPair carries a habit's current and all-time-best streaks.
type StreakPair struct {
	Current int `json:"current"`
	Longest int `json:"longest"`
}

// OverallKey is the per-week aggregate entry in a weekly summary map.
const OverallKey = "_overall"

// IsoWeekKey formats a date key like "2026-W09" per ISO-8601 week numbering.
func IsoWeekKey(e *models.DailyEntry) string {
	year, week := e.Day().ISOWeek()
	return fmt.Sprintf("%d-W%02d", year, week)
}

// sortedByDateDesc returns entries sorted most-recent-first by date key.
// Date keys sort lexically because of the fixed YYYY-MM-DD layout.
func sortedByDateDesc(entries []models.DailyEntry) []models.DailyEntry {
	out := make([]models.DailyEntry, len(entries))
	copy(out, entries)
	sort.Slice(out, func(i, j int) bool { return out[i].Date > out[j].Date })
	return out
}

// CalculateStreaks computes current and longest completion streaks for
// every configured habit. The current streak counts consecutive
// completions backward from the most recent entry and stops at the first
// miss; a day where the habit was not tracked counts as a miss. The
// longest streak is the best run anywhere in history, found by a second
// forward pass.
func CalculateStreaks(entries []models.DailyEntry, habits []models.HabitDefinition) map[string]StreakPair {
	desc := sortedByDateDesc(entries)

	result := make(map[string]StreakPair, len(habits))
	for _, h := range habits {
		var pair StreakPair

		for _, e := range desc {
			if !e.Habits.Done(h.ID) {
				break
			}
			pair.Current++
		}

		// Forward pass over the full history for the best run.
		run := 0
		for i := len(desc) - 1; i >= 0; i-- {
			if desc[i].Habits.Done(h.ID) {
				run++
				if run > pair.Longest {
					pair.Longest = run
				}
			} else {
				run = 0
			}
		}

		result[h.ID] = pair
	}
	return result
}

// CalculateWeeklySummaries groups entries by ISO week and computes each
// habit's completion ratio over the days it was tracked. Habits untracked
// all week map to nil rather than zero. The OverallKey value is the mean
// of the week's per-day habit completion rates.
func CalculateWeeklySummaries(entries []models.DailyEntry, habits []models.HabitDefinition) map[string]map[string]*float64 {
	byWeek := map[string][]models.DailyEntry{}
	for _, e := range entries {
		key := IsoWeekKey(&e)
		byWeek[key] = append(byWeek[key], e)
	}

	summaries := make(map[string]map[string]*float64, len(byWeek))
	for week, weekEntries := range byWeek {
		summary := map[string]*float64{}

		for _, h := range habits {
			tracked, completed := 0, 0
			for _, e := range weekEntries {
				if !e.Habits.Tracked(h.ID) {
					continue
				}
				tracked++
				if e.Habits.Done(h.ID) {
					completed++
				}
			}
			if tracked == 0 {
				summary[h.ID] = nil
				continue
			}
			rate := float64(completed) / float64(tracked)
			summary[h.ID] = &rate
		}

		overallTotal, overallDays := 0.0, 0
		for _, e := range weekEntries {
			if len(e.Habits.Details) == 0 {
				continue
			}
			overallTotal += e.Habits.CompletionRate
			overallDays++
		}
		if overallDays > 0 {
			overall := overallTotal / float64(overallDays)
			summary[OverallKey] = &overall
		} else {
			summary[OverallKey] = nil
		}

		summaries[week] = summary
	}
	return summaries
}

// CalculateTrends classifies each habit by comparing the two most recent
// ISO weeks. Fewer than two weeks of data, or a habit untracked in either
// week, yields TrendInsufficientData.
func CalculateTrends(weeklySummaries map[string]map[string]*float64, habits []models.HabitDefinition) map[string]Trend {
	weeks := make([]string, 0, len(weeklySummaries))
	for w := range weeklySummaries {
		weeks = append(weeks, w)
	}
	sort.Strings(weeks)

	trends := make(map[string]Trend, len(habits))
	if len(weeks) < 2 {
		for _, h := range habits {
			trends[h.ID] = TrendInsufficientData
		}
		return trends
	}

	prev := weeklySummaries[weeks[len(weeks)-2]]
	last := weeklySummaries[weeks[len(weeks)-1]]

	for _, h := range habits {
		p, l := prev[h.ID], last[h.ID]
		if p == nil || l == nil {
			trends[h.ID] = TrendInsufficientData
			continue
		}
		switch delta := *l - *p; {
		case delta > trendThreshold:
			trends[h.ID] = TrendImproving
		case delta < -trendThreshold:
			trends[h.ID] = TrendDeclining
		default:
			trends[h.ID] = TrendStable
		}
	}
	return trends
}
