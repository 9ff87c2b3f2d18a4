// ABOUTME: Store interface and the persisted snapshot structure.
// ABOUTME: Defines the contract shared by the JSON and SQLite backends.
package store

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/harperreed/daylog/internal/analytics"
	"github.com/harperreed/daylog/internal/models"
)

// SchemaVersion is written into every persisted snapshot.
const SchemaVersion = "1.0"

// Snapshot is the full persisted structure: raw entries plus the three
// derived analytics blocks, recomputed over the whole history on every
// append. O(N) per write is fine at one human entry per day.
type Snapshot struct {
	Version         string                         `json:"version"`
	Entries         []models.DailyEntry            `json:"entries"`
	LastUpdated     string                         `json:"last_updated"`
	Streaks         map[string]analytics.StreakPair `json:"streaks"`
	WeeklySummaries map[string]map[string]*float64 `json:"weekly_summaries"`
	Trends          map[string]analytics.Trend     `json:"trends"`
}

// Find returns the entry for a date, or nil.
func (s *Snapshot) Find(date string) *models.DailyEntry {
	for i := range s.Entries {
		if s.Entries[i].Date == date {
			return &s.Entries[i]
		}
	}
	return nil
}

// recompute refreshes the derived blocks from the entry list.
func (s *Snapshot) recompute(habits []models.HabitDefinition) {
	s.Streaks = analytics.CalculateStreaks(s.Entries, habits)
	s.WeeklySummaries = analytics.CalculateWeeklySummaries(s.Entries, habits)
	s.Trends = analytics.CalculateTrends(s.WeeklySummaries, habits)
}

// Store is the storage contract for daily entries. Appends are
// idempotent by date key: appending an existing date is a no-op.
type Store interface {
	// Append persists the entry unless its date already exists.
	// Returns false without error for the duplicate no-op case.
	Append(e *models.DailyEntry) (bool, error)

	// Snapshot returns the full store including derived analytics.
	Snapshot() (*Snapshot, error)

	// Entries returns all stored entries.
	Entries() ([]models.DailyEntry, error)

	// Get returns the entry for a date, or nil when absent.
	Get(date string) (*models.DailyEntry, error)

	// Delete removes the entry for a date and recomputes derived blocks.
	Delete(date string) error

	Close() error
}

// DataDir returns the default XDG data directory for daylog.
func DataDir() string {
	if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
		return filepath.Join(dir, "daylog")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "daylog")
}

// AtomicWrite serializes a write as temp-file-then-rename so a crash
// mid-write can never corrupt an existing file.
func AtomicWrite(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".daylog-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Chmod(0600); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename into place: %w", err)
	}
	return nil
}
