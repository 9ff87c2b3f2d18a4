// ABOUTME: MCP tool implementations for daily entries.
// ABOUTME: Covers extraction, listing, habit reports, and rolling analysis.
package mcp

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/harperreed/daylog/internal/analytics"
	"github.com/harperreed/daylog/internal/extract"
	"github.com/harperreed/daylog/internal/models"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerTools() {
	// extract_day
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "extract_day",
		Description: "Extract metrics from a daily document and append them to the store",
	}, s.handleExtractDay)

	// get_entry
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_entry",
		Description: "Get the stored entry for a date",
	}, s.handleGetEntry)

	// list_entries
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_entries",
		Description: "List stored entries, most recent first",
	}, s.handleListEntries)

	// habit_report
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "habit_report",
		Description: "Get habit streaks, weekly summaries, and trends",
	}, s.handleHabitReport)

	// analyze
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "analyze",
		Description: "Run rolling-window analysis: averages, patterns, correlations, warnings",
	}, s.handleAnalyze)

	// delete_entry
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "delete_entry",
		Description: "Delete the entry for a date",
	}, s.handleDeleteEntry)
}

// Tool input/output types

type extractDayInput struct {
	Date string `json:"date" jsonschema:"Date of the daily document (YYYY-MM-DD)"`
}

type extractDayOutput struct {
	Date    string   `json:"date"`
	Added   bool     `json:"added"`
	Notes   []string `json:"extraction_notes,omitempty"`
	Message string   `json:"message"`
}

type getEntryInput struct {
	Date string `json:"date" jsonschema:"Entry date (YYYY-MM-DD)"`
}

type listEntriesInput struct {
	Limit int `json:"limit,omitempty" jsonschema:"Max results (default 20)"`
}

type analyzeInput struct {
	WindowDays int `json:"window_days,omitempty" jsonschema:"Rolling window in days (default 7)"`
}

type simpleOutput struct {
	Message string `json:"message"`
}

// Tool handlers

func (s *Server) handleExtractDay(ctx context.Context, req *mcp.CallToolRequest, input extractDayInput) (*mcp.CallToolResult, extractDayOutput, error) {
	if s.extractor == nil {
		return nil, extractDayOutput{}, fmt.Errorf("no document directory configured")
	}
	if _, err := time.Parse(models.DateFormat, input.Date); err != nil {
		return nil, extractDayOutput{}, fmt.Errorf("invalid date %q: want YYYY-MM-DD", input.Date)
	}

	entry, err := s.extractor.ExtractDay(ctx, input.Date)
	if err != nil {
		if errors.Is(err, extract.ErrNoDocument) {
			return nil, extractDayOutput{}, fmt.Errorf("no document for %s", input.Date)
		}
		return nil, extractDayOutput{}, fmt.Errorf("failed to extract: %w", err)
	}

	added, err := s.store.Append(entry)
	if err != nil {
		return nil, extractDayOutput{}, fmt.Errorf("failed to append: %w", err)
	}

	msg := fmt.Sprintf("Extracted and stored %s", input.Date)
	if !added {
		msg = fmt.Sprintf("Entry for %s already exists; store unchanged", input.Date)
	}
	return nil, extractDayOutput{
		Date:    input.Date,
		Added:   added,
		Notes:   entry.Notes,
		Message: msg,
	}, nil
}

func (s *Server) handleGetEntry(ctx context.Context, req *mcp.CallToolRequest, input getEntryInput) (*mcp.CallToolResult, any, error) {
	entry, err := s.store.Get(input.Date)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read store: %w", err)
	}
	if entry == nil {
		return nil, map[string]any{"message": fmt.Sprintf("No entry for %s.", input.Date)}, nil
	}
	return nil, entry, nil
}

func (s *Server) handleListEntries(ctx context.Context, req *mcp.CallToolRequest, input listEntriesInput) (*mcp.CallToolResult, any, error) {
	if input.Limit <= 0 {
		input.Limit = 20
	}

	entries, err := s.store.Entries()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list entries: %w", err)
	}
	if len(entries) == 0 {
		return nil, map[string]any{"message": "No entries found."}, nil
	}

	// Most recent first
	for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
		entries[i], entries[j] = entries[j], entries[i]
	}
	if len(entries) > input.Limit {
		entries = entries[:input.Limit]
	}
	return nil, entries, nil
}

func (s *Server) handleHabitReport(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, any, error) {
	snap, err := s.store.Snapshot()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read store: %w", err)
	}

	return nil, map[string]any{
		"streaks":          snap.Streaks,
		"weekly_summaries": snap.WeeklySummaries,
		"trends":           snap.Trends,
	}, nil
}

func (s *Server) handleAnalyze(ctx context.Context, req *mcp.CallToolRequest, input analyzeInput) (*mcp.CallToolResult, any, error) {
	window := input.WindowDays
	if window <= 0 {
		window = 7
	}

	entries, err := s.store.Entries()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read store: %w", err)
	}
	if len(entries) == 0 {
		return nil, map[string]any{"message": "No entries to analyze."}, nil
	}

	now := time.Now()
	return nil, map[string]any{
		"window_days":       window,
		"averages":          analytics.RollingAverages(entries, window, now),
		"weekday_patterns":  analytics.DayOfWeekPatterns(entries, window, now),
		"correlations":      analytics.CorrelationAnalysis(entries, 30, now),
		"compliance_streak": analytics.CalculateComplianceStreak(entries),
		"recommended_todos": analytics.RecommendedTodoCount(entries, now),
		"warnings":          analytics.Warnings(entries, now),
	}, nil
}

func (s *Server) handleDeleteEntry(ctx context.Context, req *mcp.CallToolRequest, input getEntryInput) (*mcp.CallToolResult, simpleOutput, error) {
	if err := s.store.Delete(input.Date); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to delete entry: %w", err)
	}
	return nil, simpleOutput{
		Message: fmt.Sprintf("Deleted entry: %s", input.Date),
	}, nil
}
