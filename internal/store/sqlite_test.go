// ABOUTME: Tests for the SQLite store backend.
// ABOUTME: Verifies the shared Store contract against a temp database.
package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harperreed/daylog/internal/models"
)

func testSQLite(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := OpenSQLite(filepath.Join(t.TempDir(), "daylog.db"), models.DefaultHabits)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestSQLiteAppendIdempotent(t *testing.T) {
	s := testSQLite(t)

	added, err := s.Append(entryFor("2026-03-01"))
	require.NoError(t, err)
	assert.True(t, added)

	added, err = s.Append(entryFor("2026-03-01"))
	require.NoError(t, err)
	assert.False(t, added)

	entries, err := s.Entries()
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestSQLiteSnapshot(t *testing.T) {
	s := testSQLite(t)
	_, err := s.Append(entryFor("2026-03-01"))
	require.NoError(t, err)
	_, err = s.Append(entryFor("2026-03-02"))
	require.NoError(t, err)

	snap, err := s.Snapshot()
	require.NoError(t, err)
	assert.Len(t, snap.Entries, 2)
	assert.NotEmpty(t, snap.LastUpdated)
	assert.Equal(t, 2, snap.Streaks["meditation"].Current)
	assert.Contains(t, snap.Trends, "meditation")
}

func TestSQLiteGetAndDelete(t *testing.T) {
	s := testSQLite(t)
	_, err := s.Append(entryFor("2026-03-01"))
	require.NoError(t, err)

	e, err := s.Get("2026-03-01")
	require.NoError(t, err)
	require.NotNil(t, e)
	assert.Equal(t, 7.5, *e.Sleep.Hours)

	e, err = s.Get("2026-03-02")
	require.NoError(t, err)
	assert.Nil(t, e)

	require.NoError(t, s.Delete("2026-03-01"))
	assert.Error(t, s.Delete("2026-03-01"))
}

func TestMigrateJSONToSQLite(t *testing.T) {
	js := testStore(t)
	_, err := js.Append(entryFor("2026-03-01"))
	require.NoError(t, err)
	_, err = js.Append(entryFor("2026-03-02"))
	require.NoError(t, err)

	data, err := Export(js)
	require.NoError(t, err)

	sq := testSQLite(t)
	added, err := Import(sq, data)
	require.NoError(t, err)
	assert.Equal(t, 2, added)

	// Re-import is a no-op thanks to idempotent appends.
	added, err = Import(sq, data)
	require.NoError(t, err)
	assert.Equal(t, 0, added)
}
