// ABOUTME: SQLite store backend using modernc.org/sqlite (pure Go, no CGO).
// ABOUTME: Entries live as JSON rows keyed by date; derived blocks compute on read.
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/harperreed/daylog/internal/models"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS entries (
	date TEXT PRIMARY KEY,
	id TEXT NOT NULL,
	record TEXT NOT NULL,
	created_at TEXT NOT NULL
);
`

// SQLiteStore is the alternate backend for histories that outgrow a
// single JSON file. It honors the same idempotent-append contract; the
// derived analytics blocks are computed on read instead of stored.
type SQLiteStore struct {
	db     *sql.DB
	habits []models.HabitDefinition
}

var _ Store = (*SQLiteStore)(nil)

// OpenSQLite opens or creates the database at the given path.
func OpenSQLite(dbPath string, habits []models.HabitDefinition) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0750); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL; PRAGMA busy_timeout=5000;"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("configure pragmas: %w", err)
	}
	if _, err := db.Exec(sqliteSchema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("initialize schema: %w", err)
	}

	return &SQLiteStore{db: db, habits: habits}, nil
}

// Close releases the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Append inserts the entry unless its date already exists.
func (s *SQLiteStore) Append(e *models.DailyEntry) (bool, error) {
	var exists int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM entries WHERE date = ?`, e.Date).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check duplicate date: %w", err)
	}
	if exists > 0 {
		return false, nil
	}

	record, err := json.Marshal(e)
	if err != nil {
		return false, fmt.Errorf("encode entry: %w", err)
	}

	_, err = s.db.Exec(
		`INSERT INTO entries (date, id, record, created_at) VALUES (?, ?, ?, ?)`,
		e.Date, e.ID.String(), string(record), time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return false, fmt.Errorf("insert entry: %w", err)
	}
	return true, nil
}

// Entries returns all stored entries in date order.
func (s *SQLiteStore) Entries() ([]models.DailyEntry, error) {
	rows, err := s.db.Query(`SELECT record FROM entries ORDER BY date`)
	if err != nil {
		return nil, fmt.Errorf("query entries: %w", err)
	}
	defer func() { _ = rows.Close() }()

	entries := []models.DailyEntry{}
	for rows.Next() {
		var record string
		if err := rows.Scan(&record); err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}
		var e models.DailyEntry
		if err := json.Unmarshal([]byte(record), &e); err != nil {
			return nil, fmt.Errorf("decode entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Snapshot assembles the full store view with derived analytics.
func (s *SQLiteStore) Snapshot() (*Snapshot, error) {
	entries, err := s.Entries()
	if err != nil {
		return nil, err
	}

	var lastUpdated string
	err = s.db.QueryRow(`SELECT COALESCE(MAX(created_at), '') FROM entries`).Scan(&lastUpdated)
	if err != nil {
		return nil, fmt.Errorf("query last update: %w", err)
	}

	snap := &Snapshot{
		Version:     SchemaVersion,
		Entries:     entries,
		LastUpdated: lastUpdated,
	}
	snap.recompute(s.habits)
	return snap, nil
}

// Get returns the entry for a date, or nil when absent.
func (s *SQLiteStore) Get(date string) (*models.DailyEntry, error) {
	var record string
	err := s.db.QueryRow(`SELECT record FROM entries WHERE date = ?`, date).Scan(&record)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query entry: %w", err)
	}

	var e models.DailyEntry
	if err := json.Unmarshal([]byte(record), &e); err != nil {
		return nil, fmt.Errorf("decode entry: %w", err)
	}
	return &e, nil
}

// Delete removes the entry for a date.
func (s *SQLiteStore) Delete(date string) error {
	res, err := s.db.Exec(`DELETE FROM entries WHERE date = ?`, date)
	if err != nil {
		return fmt.Errorf("delete entry: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete entry: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("no entry for %s", date)
	}
	return nil
}
