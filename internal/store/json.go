// ABOUTME: JSON file store: append-only with atomic writes and idempotent appends.
// ABOUTME: Corrupted files are preserved via rename-to-backup, never overwritten blind.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/harperreed/daylog/internal/models"
)

// JSONStore persists the snapshot as a single JSON file. This is the
// default backend and the one whose on-disk format other tools read.
type JSONStore struct {
	path   string
	habits []models.HabitDefinition
}

var _ Store = (*JSONStore)(nil)

// NewJSONStore creates a store at the given path. The file is created
// lazily on first append.
func NewJSONStore(path string, habits []models.HabitDefinition) *JSONStore {
	return &JSONStore{path: path, habits: habits}
}

// Path returns the store file location.
func (s *JSONStore) Path() string {
	return s.path
}

// Close is a no-op for the file-backed store.
func (s *JSONStore) Close() error {
	return nil
}

// load reads the snapshot from disk. A missing file yields a fresh empty
// snapshot. A corrupted file is renamed to <path>.backup so the data is
// preserved for inspection, and a fresh snapshot is returned.
func (s *JSONStore) load() (*Snapshot, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return s.fresh(), nil
		}
		return nil, fmt.Errorf("read store: %w", err)
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		backup := s.path + ".backup"
		if renameErr := os.Rename(s.path, backup); renameErr != nil {
			return nil, fmt.Errorf("store corrupted and backup failed: %w", renameErr)
		}
		return s.fresh(), nil
	}
	if snap.Version == "" {
		snap.Version = SchemaVersion
	}
	if snap.Entries == nil {
		snap.Entries = []models.DailyEntry{}
	}
	return &snap, nil
}

func (s *JSONStore) fresh() *Snapshot {
	return &Snapshot{
		Version: SchemaVersion,
		Entries: []models.DailyEntry{},
	}
}

// save recomputes the derived blocks and writes the snapshot atomically.
func (s *JSONStore) save(snap *Snapshot) error {
	snap.recompute(s.habits)
	snap.LastUpdated = time.Now().UTC().Format(time.RFC3339)

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("encode store: %w", err)
	}
	return AtomicWrite(s.path, data)
}

// Append persists the entry unless its date already exists.
func (s *JSONStore) Append(e *models.DailyEntry) (bool, error) {
	snap, err := s.load()
	if err != nil {
		return false, err
	}

	if snap.Find(e.Date) != nil {
		return false, nil
	}

	snap.Entries = append(snap.Entries, *e)
	if err := s.save(snap); err != nil {
		return false, err
	}
	return true, nil
}

// Snapshot returns the persisted snapshot including derived analytics.
func (s *JSONStore) Snapshot() (*Snapshot, error) {
	return s.load()
}

// Entries returns all stored entries.
func (s *JSONStore) Entries() ([]models.DailyEntry, error) {
	snap, err := s.load()
	if err != nil {
		return nil, err
	}
	return snap.Entries, nil
}

// Get returns the stored entry for a date, or nil when absent.
func (s *JSONStore) Get(date string) (*models.DailyEntry, error) {
	snap, err := s.load()
	if err != nil {
		return nil, err
	}
	return snap.Find(date), nil
}

// Delete removes the entry for a date. Deleting an absent date is an
// error so callers notice typos.
func (s *JSONStore) Delete(date string) error {
	snap, err := s.load()
	if err != nil {
		return err
	}

	kept := snap.Entries[:0]
	found := false
	for _, e := range snap.Entries {
		if e.Date == date {
			found = true
			continue
		}
		kept = append(kept, e)
	}
	if !found {
		return fmt.Errorf("no entry for %s", date)
	}
	snap.Entries = kept
	return s.save(snap)
}
