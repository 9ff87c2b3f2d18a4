// ABOUTME: Converts free-text human entries into canonical numeric values.
// ABOUTME: Handles H:MM times, percentage slips, distance/duration pairs, and ranges.
package normalize

import (
	"math"
	"strconv"
	"strings"
)

// durationMinutesCutoff decides how a bare "A:B" duration is read: when A
// is at least 10 it is taken as minutes:seconds, otherwise hours:minutes.
// A value like "9:30" is genuinely ambiguous between 9h30m and 9m30s; the
// cutoff is a compatibility policy, not a disambiguation.
const durationMinutesCutoff = 10

// SleepHours converts "H:MM" or a bare decimal into decimal hours.
// Returns nil for empty, zero, or non-numeric input.
func SleepHours(raw string) *float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	if h, m, ok := splitClock(raw); ok {
		v := h + m/60
		if v <= 0 {
			return nil
		}
		return &v
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v <= 0 {
		return nil
	}
	return &v
}

// QualityScore normalizes a subjective score onto a 1-scaleMax scale. A
// parsed value above scaleMax is divided by 10, treating it as a 0-100
// percentage entered by mistake. Returns nil for non-positive or
// unparsable input.
func QualityScore(raw string, scaleMax float64) *float64 {
	raw = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(raw), "%"))
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v <= 0 {
		return nil
	}
	if v > scaleMax {
		v = v / 10
	}
	return &v
}

// TrainingValue splits a "distance/duration" cell into its parts. Either
// part may be nil when absent or unparsable. Duration accepts "A:B" clock
// notation subject to durationMinutesCutoff, or a bare decimal of minutes.
func TrainingValue(raw string) (distance, durationMinutes *float64) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	distPart := raw
	durPart := ""
	if idx := strings.Index(raw, "/"); idx >= 0 {
		distPart = strings.TrimSpace(raw[:idx])
		durPart = strings.TrimSpace(raw[idx+1:])
	}

	if d, err := strconv.ParseFloat(stripApprox(distPart), 64); err == nil && d > 0 {
		distance = &d
	}
	if durPart != "" {
		durationMinutes = parseDuration(durPart)
	}
	return distance, durationMinutes
}

func parseDuration(raw string) *float64 {
	if a, b, ok := splitClock(raw); ok {
		var minutes float64
		if a >= durationMinutesCutoff {
			minutes = a + b/60 // minutes:seconds
		} else {
			minutes = a*60 + b // hours:minutes
		}
		if minutes <= 0 {
			return nil
		}
		return &minutes
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v <= 0 {
		return nil
	}
	return &v
}

// ApproxInt parses loosely entered integers: "~3500" drops the tilde,
// "3500-4000" becomes the rounded midpoint, and non-numeric sentinels like
// "missed" or "N/A" collapse to 0.
func ApproxInt(raw string) int {
	raw = stripApprox(strings.TrimSpace(raw))
	if raw == "" {
		return 0
	}

	if lo, hi, ok := splitRange(raw); ok {
		return int(math.Round((lo + hi) / 2))
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}
	return int(math.Round(v))
}

// Int parses a plain integer cell, nil when unparsable.
func Int(raw string) *int {
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return nil
	}
	return &v
}

// Float parses a plain decimal cell, nil when unparsable.
func Float(raw string) *float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return nil
	}
	return &v
}

func stripApprox(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "~")
	s = strings.ReplaceAll(s, ",", "")
	return strings.TrimSpace(s)
}

// splitClock parses "A:B" into its two numeric components.
func splitClock(raw string) (a, b float64, ok bool) {
	idx := strings.Index(raw, ":")
	if idx < 0 {
		return 0, 0, false
	}
	a, errA := parsePart(raw[:idx])
	b, errB := parsePart(raw[idx+1:])
	if errA != nil || errB != nil {
		return 0, 0, false
	}
	return a, b, true
}

func parsePart(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}

// splitRange parses "lo-hi" where both sides are numeric.
func splitRange(raw string) (lo, hi float64, ok bool) {
	idx := strings.Index(raw, "-")
	if idx <= 0 {
		return 0, 0, false
	}
	lo, errLo := parsePart(raw[:idx])
	hi, errHi := parsePart(raw[idx+1:])
	if errLo != nil || errHi != nil {
		return 0, 0, false
	}
	return lo, hi, true
}
