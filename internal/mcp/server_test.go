// ABOUTME: Tests for MCP tool and resource handlers.
// ABOUTME: Exercises handlers directly against a temp JSON store.
package mcp

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harperreed/daylog/internal/extract"
	"github.com/harperreed/daylog/internal/models"
	"github.com/harperreed/daylog/internal/store"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	dir := t.TempDir()
	st := store.NewJSONStore(filepath.Join(dir, "metrics.json"), models.DefaultHabits)
	t.Cleanup(func() { _ = st.Close() })

	extractor := extract.New(&extract.DirSource{Dir: filepath.Join(dir, "days")}, models.DefaultHabits, nil)
	s, err := NewServer(st, extractor, models.DefaultHabits)
	require.NoError(t, err)
	return s
}

func seedEntry(t *testing.T, s *Server, date string, done, total int) {
	t.Helper()
	e := models.NewDailyEntry(date)
	e.Todos.Total = total
	e.Todos.Completed = done
	if total > 0 {
		e.Todos.CompletionRate = float64(done) / float64(total)
	}
	_, err := s.store.Append(e)
	require.NoError(t, err)
}

func TestGetEntryMissing(t *testing.T) {
	s := newTestServer(t)

	_, out, err := s.handleGetEntry(context.Background(), nil, getEntryInput{Date: "2026-03-01"})
	require.NoError(t, err)
	msg, ok := out.(map[string]any)
	require.True(t, ok)
	assert.Contains(t, msg["message"], "No entry")
}

func TestGetEntryFound(t *testing.T) {
	s := newTestServer(t)
	seedEntry(t, s, "2026-03-01", 3, 4)

	_, out, err := s.handleGetEntry(context.Background(), nil, getEntryInput{Date: "2026-03-01"})
	require.NoError(t, err)
	entry, ok := out.(*models.DailyEntry)
	require.True(t, ok)
	assert.Equal(t, "2026-03-01", entry.Date)
	assert.Equal(t, 4, entry.Todos.Total)
}

func TestListEntriesOrderAndLimit(t *testing.T) {
	s := newTestServer(t)
	seedEntry(t, s, "2026-03-01", 1, 2)
	seedEntry(t, s, "2026-03-02", 2, 2)
	seedEntry(t, s, "2026-03-03", 0, 1)

	_, out, err := s.handleListEntries(context.Background(), nil, listEntriesInput{Limit: 2})
	require.NoError(t, err)
	entries, ok := out.([]models.DailyEntry)
	require.True(t, ok)
	require.Len(t, entries, 2)
	assert.Equal(t, "2026-03-03", entries[0].Date)
	assert.Equal(t, "2026-03-02", entries[1].Date)
}

func TestExtractDayInvalidDate(t *testing.T) {
	s := newTestServer(t)

	_, _, err := s.handleExtractDay(context.Background(), nil, extractDayInput{Date: "03/01/2026"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid date")
}

func TestExtractDayMissingDocument(t *testing.T) {
	s := newTestServer(t)

	_, _, err := s.handleExtractDay(context.Background(), nil, extractDayInput{Date: "2026-03-01"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no document")
}

func TestDeleteEntry(t *testing.T) {
	s := newTestServer(t)
	seedEntry(t, s, "2026-03-01", 1, 1)

	_, out, err := s.handleDeleteEntry(context.Background(), nil, getEntryInput{Date: "2026-03-01"})
	require.NoError(t, err)
	assert.Contains(t, out.Message, "2026-03-01")

	entry, err := s.store.Get("2026-03-01")
	require.NoError(t, err)
	assert.Nil(t, entry)
}

func TestDeleteEntryMissing(t *testing.T) {
	s := newTestServer(t)

	_, _, err := s.handleDeleteEntry(context.Background(), nil, getEntryInput{Date: "2026-03-01"})
	require.Error(t, err)
}

func TestHabitReport(t *testing.T) {
	s := newTestServer(t)
	e := models.NewDailyEntry("2026-03-01")
	e.Habits.Details = map[string]bool{"meditation": true}
	e.Habits.Completed = []string{"meditation"}
	e.Habits.CompletionRate = 1.0
	_, err := s.store.Append(e)
	require.NoError(t, err)

	_, out, err := s.handleHabitReport(context.Background(), nil, struct{}{})
	require.NoError(t, err)
	report, ok := out.(map[string]any)
	require.True(t, ok)
	assert.Contains(t, report, "streaks")
	assert.Contains(t, report, "weekly_summaries")
	assert.Contains(t, report, "trends")
}

func TestAnalyzeEmptyStore(t *testing.T) {
	s := newTestServer(t)

	_, out, err := s.handleAnalyze(context.Background(), nil, analyzeInput{})
	require.NoError(t, err)
	msg, ok := out.(map[string]any)
	require.True(t, ok)
	assert.Contains(t, msg["message"], "No entries")
}

func TestAnalyzeWithEntries(t *testing.T) {
	s := newTestServer(t)
	seedEntry(t, s, "2026-03-01", 3, 4)
	seedEntry(t, s, "2026-03-02", 4, 4)

	_, out, err := s.handleAnalyze(context.Background(), nil, analyzeInput{WindowDays: 7})
	require.NoError(t, err)
	result, ok := out.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, 7, result["window_days"])
	assert.Contains(t, result, "averages")
	assert.Contains(t, result, "compliance_streak")
	assert.Contains(t, result, "recommended_todos")
}

func TestRecentResource(t *testing.T) {
	s := newTestServer(t)
	seedEntry(t, s, "2026-03-01", 1, 1)

	res, err := s.handleRecentResource(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, res.Contents, 1)
	assert.Equal(t, "daylog://recent", res.Contents[0].URI)
	assert.Contains(t, res.Contents[0].Text, "2026-03-01")
}

func TestContextResource(t *testing.T) {
	s := newTestServer(t)
	seedEntry(t, s, "2026-03-01", 2, 3)

	res, err := s.handleContextResource(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, res.Contents, 1)
	assert.Contains(t, res.Contents[0].Text, "recent_days")
}

func TestWarningsResource(t *testing.T) {
	s := newTestServer(t)

	res, err := s.handleWarningsResource(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, res.Contents, 1)
	assert.Contains(t, res.Contents[0].Text, "warnings")
}
