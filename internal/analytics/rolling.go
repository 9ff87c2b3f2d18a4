// ABOUTME: Rolling-window trend analysis: averages, weekday patterns, correlations,
// ABOUTME: signed compliance streaks, adaptive todo counts, and warning triggers.
package analytics

import (
	"fmt"
	"math"
	"time"

	"github.com/harperreed/daylog/internal/models"
)

// Fixed analysis policy. These are chosen thresholds, not learned ones.
const (
	complianceThreshold = 0.5 // a day is "on track" at >=50% todo completion
	weakDayThreshold    = 0.5
	weakDayMinSamples   = 2 // one bad Tuesday is noise, two is a pattern
	minCorrelationPairs = 3
	minCorrelationDays  = 5
	lowSleepWarning     = 6.5
	lowMoodWarning      = 5.0
)

// Averages holds rolling per-metric means over a trailing window.
type Averages struct {
	SleepHours     *float64 `json:"sleep_hours"`
	SleepQuality   *float64 `json:"sleep_quality"`
	MorningMood    *float64 `json:"morning_mood"`
	BedtimeMood    *float64 `json:"bedtime_mood"`
	WeightLbs      *float64 `json:"weight_lbs"`
	TodoCompletion *float64 `json:"todo_completion"`
	SampleDays     int      `json:"sample_days"`
}

// DayPattern is one weekday's aggregate todo performance.
type DayPattern struct {
	Samples        int     `json:"samples"`
	TodoCompletion float64 `json:"todo_completion"`
}

// WeekdayPatterns flags weekdays that consistently underperform.
type WeekdayPatterns struct {
	WeakDays []string              `json:"weak_days"`
	ByDay    map[string]DayPattern `json:"by_day"`
}

// Correlations holds Pearson coefficients between metric pairs, nil when
// the sample is too small to be meaningful.
type Correlations struct {
	SleepMood      *float64 `json:"sleep_mood_correlation"`
	MoodCompletion *float64 `json:"mood_completion_correlation"`
	Insights       []string `json:"insights"`
}

// ComplianceStreak is a signed run of days relative to the compliance
// threshold: positive for consecutive days at or above it, negative for
// consecutive days below, anchored at the most recent entry.
type ComplianceStreak struct {
	Current int    `json:"current_streak"`
	Longest int    `json:"longest_streak"`
	Status  string `json:"status"` // "positive", "negative", or "none"
}

// windowEntries returns entries whose date falls within the trailing
// window ending at asOf, most-recent-first. The cutoff is a lexical
// date-string comparison: correct for contiguous daily use, degraded
// only when far-past days reappear after long gaps.
func windowEntries(entries []models.DailyEntry, windowDays int, asOf time.Time) []models.DailyEntry {
	cutoff := asOf.AddDate(0, 0, -windowDays).Format(models.DateFormat)
	ceiling := asOf.Format(models.DateFormat)

	var out []models.DailyEntry
	for _, e := range sortedByDateDesc(entries) {
		if e.Date > ceiling || e.Date <= cutoff {
			continue
		}
		out = append(out, e)
	}
	return out
}

// RollingAverages computes per-metric means over the trailing window.
func RollingAverages(entries []models.DailyEntry, windowDays int, asOf time.Time) Averages {
	window := windowEntries(entries, windowDays, asOf)
	avg := Averages{SampleDays: len(window)}
	if len(window) == 0 {
		return avg
	}

	avg.SleepHours = meanOf(window, func(e models.DailyEntry) *float64 { return e.Sleep.Hours })
	avg.SleepQuality = meanOf(window, func(e models.DailyEntry) *float64 { return e.Sleep.Quality })
	avg.MorningMood = meanOf(window, func(e models.DailyEntry) *float64 { return e.Mood.Morning })
	avg.BedtimeMood = meanOf(window, func(e models.DailyEntry) *float64 { return e.Mood.Bedtime })
	avg.WeightLbs = meanOf(window, func(e models.DailyEntry) *float64 { return e.WeightLbs })
	avg.TodoCompletion = meanOf(window, func(e models.DailyEntry) *float64 {
		if e.Todos.Total == 0 {
			return nil
		}
		r := e.Todos.CompletionRate
		return &r
	})
	return avg
}

func meanOf(entries []models.DailyEntry, get func(models.DailyEntry) *float64) *float64 {
	sum, n := 0.0, 0
	for _, e := range entries {
		if v := get(e); v != nil {
			sum += *v
			n++
		}
	}
	if n == 0 {
		return nil
	}
	mean := sum / float64(n)
	return &mean
}

// DayOfWeekPatterns buckets the trailing window by weekday and flags a
// weekday weak when its mean todo completion is below the threshold and
// it has at least weakDayMinSamples samples.
func DayOfWeekPatterns(entries []models.DailyEntry, windowDays int, asOf time.Time) WeekdayPatterns {
	window := windowEntries(entries, windowDays, asOf)

	sums := map[string]float64{}
	counts := map[string]int{}
	for _, e := range window {
		d := e.Day()
		if d.IsZero() || e.Todos.Total == 0 {
			continue
		}
		name := d.Weekday().String()
		sums[name] += e.Todos.CompletionRate
		counts[name]++
	}

	patterns := WeekdayPatterns{ByDay: map[string]DayPattern{}, WeakDays: []string{}}
	// Walk weekdays in calendar order for stable output.
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		name := wd.String()
		n := counts[name]
		if n == 0 {
			continue
		}
		mean := sums[name] / float64(n)
		patterns.ByDay[name] = DayPattern{Samples: n, TodoCompletion: mean}
		if mean < weakDayThreshold && n >= weakDayMinSamples {
			patterns.WeakDays = append(patterns.WeakDays, name)
		}
	}
	return patterns
}

// CorrelationAnalysis computes Pearson correlations between sleep hours
// and morning mood, and between morning mood and todo completion. Each
// pair needs at least minCorrelationPairs points and the window at least
// minCorrelationDays entries, otherwise the coefficient stays nil and an
// insufficient-data insight is reported instead.
func CorrelationAnalysis(entries []models.DailyEntry, windowDays int, asOf time.Time) Correlations {
	window := windowEntries(entries, windowDays, asOf)
	c := Correlations{Insights: []string{}}

	if len(window) < minCorrelationDays {
		c.Insights = append(c.Insights,
			fmt.Sprintf("insufficient data for correlations (%d days, need %d)", len(window), minCorrelationDays))
		return c
	}

	var sleepX, moodY []float64
	var moodX, todoY []float64
	for _, e := range window {
		if e.Sleep.Hours != nil && e.Mood.Morning != nil {
			sleepX = append(sleepX, *e.Sleep.Hours)
			moodY = append(moodY, *e.Mood.Morning)
		}
		if e.Mood.Morning != nil && e.Todos.Total > 0 {
			moodX = append(moodX, *e.Mood.Morning)
			todoY = append(todoY, e.Todos.CompletionRate)
		}
	}

	if r, ok := pearson(sleepX, moodY); ok {
		c.SleepMood = &r
		c.Insights = append(c.Insights, describeCorrelation("sleep and morning mood", r))
	} else {
		c.Insights = append(c.Insights, "insufficient data for sleep/mood correlation")
	}

	if r, ok := pearson(moodX, todoY); ok {
		c.MoodCompletion = &r
		c.Insights = append(c.Insights, describeCorrelation("morning mood and todo completion", r))
	} else {
		c.Insights = append(c.Insights, "insufficient data for mood/completion correlation")
	}
	return c
}

// pearson computes the Pearson correlation coefficient over paired
// samples. Reports ok=false below the minimum pair count or when either
// series has zero variance.
func pearson(xs, ys []float64) (float64, bool) {
	n := len(xs)
	if n != len(ys) || n < minCorrelationPairs {
		return 0, false
	}

	var sumX, sumY float64
	for i := 0; i < n; i++ {
		sumX += xs[i]
		sumY += ys[i]
	}
	meanX := sumX / float64(n)
	meanY := sumY / float64(n)

	var num, denX, denY float64
	for i := 0; i < n; i++ {
		dx := xs[i] - meanX
		dy := ys[i] - meanY
		num += dx * dy
		denX += dx * dx
		denY += dy * dy
	}
	if denX == 0 || denY == 0 {
		return 0, false
	}
	return num / math.Sqrt(denX*denY), true
}

func describeCorrelation(pair string, r float64) string {
	strength := "weak"
	switch abs := math.Abs(r); {
	case abs >= 0.7:
		strength = "strong"
	case abs >= 0.4:
		strength = "moderate"
	}
	direction := "positive"
	if r < 0 {
		direction = "negative"
	}
	return fmt.Sprintf("%s %s correlation between %s (r=%.2f)", strength, direction, pair, r)
}

// CalculateComplianceStreak computes the signed todo-compliance streak.
// Direction is fixed by the most recent entry; the scan stops the moment
// a day does not match the established direction or has no todos.
func CalculateComplianceStreak(entries []models.DailyEntry) ComplianceStreak {
	desc := sortedByDateDesc(entries)

	streak := ComplianceStreak{Status: "none"}
	var positive bool
	for i, e := range desc {
		if e.Todos.Total == 0 {
			break
		}
		onTrack := e.Todos.CompletionRate >= complianceThreshold
		if i == 0 {
			positive = onTrack
		} else if onTrack != positive {
			break
		}
		if positive {
			streak.Current++
		} else {
			streak.Current--
		}
	}

	switch {
	case streak.Current > 0:
		streak.Status = "positive"
	case streak.Current < 0:
		streak.Status = "negative"
	}

	// Longest positive run anywhere in history.
	run := 0
	for i := len(desc) - 1; i >= 0; i-- {
		e := desc[i]
		if e.Todos.Total > 0 && e.Todos.CompletionRate >= complianceThreshold {
			run++
			if run > streak.Longest {
				streak.Longest = run
			}
		} else {
			run = 0
		}
	}
	return streak
}

// RecommendedTodoCount maps the 7-day average completion rate into a
// recommended daily load. Struggling weeks are offered fewer todos, not
// more; the result always lands in [2,5].
func RecommendedTodoCount(entries []models.DailyEntry, asOf time.Time) int {
	avg := RollingAverages(entries, 7, asOf)

	count := 3
	switch {
	case avg.TodoCompletion == nil:
		count = 3
	case *avg.TodoCompletion < 0.5:
		count = 2
	case *avg.TodoCompletion < 0.8:
		count = 3
	default:
		count = 4
	}

	if count < 2 {
		count = 2
	}
	if count > 5 {
		count = 5
	}
	return count
}

// Warnings evaluates the fixed threshold checks over recent history and
// returns a human-readable line per triggered condition.
func Warnings(entries []models.DailyEntry, asOf time.Time) []string {
	warnings := []string{}
	desc := sortedByDateDesc(entries)

	if avg := RollingAverages(entries, 7, asOf); avg.SleepHours != nil && *avg.SleepHours < lowSleepWarning {
		warnings = append(warnings,
			fmt.Sprintf("average sleep %.1fh over the last week is below %.1fh", *avg.SleepHours, lowSleepWarning))
	}

	// Last 3 mornings all below the mood floor.
	if len(desc) >= 3 {
		low := true
		for _, e := range desc[:3] {
			if e.Mood.Morning == nil || *e.Mood.Morning >= lowMoodWarning {
				low = false
				break
			}
		}
		if low {
			warnings = append(warnings, "morning mood below 5 for the last 3 days")
		}
	}

	// 3 or more of the last 5 days without any training activity.
	if len(desc) >= 5 {
		idle := 0
		for _, e := range desc[:5] {
			if len(e.Training.Activities) == 0 && len(e.Training.StrengthExercises) == 0 {
				idle++
			}
		}
		if idle >= 3 {
			warnings = append(warnings, fmt.Sprintf("%d of the last 5 days had no training", idle))
		}
	}

	// Last 3 days all under 50% todo completion.
	if len(desc) >= 3 {
		struggling := true
		for _, e := range desc[:3] {
			if e.Todos.Total == 0 || e.Todos.CompletionRate >= complianceThreshold {
				struggling = false
				break
			}
		}
		if struggling {
			warnings = append(warnings, "todo completion under 50% for the last 3 days")
		}
	}

	return warnings
}
