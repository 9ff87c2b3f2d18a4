// ABOUTME: MCP resource implementations for daily entries.
// ABOUTME: Provides daylog://recent, daylog://context, and daylog://warnings.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/harperreed/daylog/internal/analytics"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerResources() {
	// daylog://recent - last 7 entries
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "daylog://recent",
		Name:        "Recent Daily Entries",
		Description: "Last 7 daily entries, most recent first",
		MIMEType:    "application/json",
	}, s.handleRecentResource)

	// daylog://context - tiered LLM context
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "daylog://context",
		Name:        "Daily Planning Context",
		Description: "Tiered context: recent days in full, older days summarized, plus analytics",
		MIMEType:    "application/json",
	}, s.handleContextResource)

	// daylog://warnings - active pattern warnings
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "daylog://warnings",
		Name:        "Pattern Warnings",
		Description: "Active warnings from the last 7 days of entries",
		MIMEType:    "application/json",
	}, s.handleWarningsResource)
}

// Resource handlers

func (s *Server) handleRecentResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	entries, err := s.store.Entries()
	if err != nil {
		return nil, fmt.Errorf("failed to list entries: %w", err)
	}

	for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
		entries[i], entries[j] = entries[j], entries[i]
	}
	if len(entries) > 7 {
		entries = entries[:7]
	}

	return jsonResource("daylog://recent", map[string]any{
		"entries": entries,
		"count":   len(entries),
	})
}

func (s *Server) handleContextResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	entries, err := s.store.Entries()
	if err != nil {
		return nil, fmt.Errorf("failed to list entries: %w", err)
	}

	c := analytics.BuildContext(entries, s.habits,
		analytics.DefaultFullDays, analytics.DefaultSummaryDays, time.Now())

	return jsonResource("daylog://context", c)
}

func (s *Server) handleWarningsResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	entries, err := s.store.Entries()
	if err != nil {
		return nil, fmt.Errorf("failed to list entries: %w", err)
	}

	warnings := analytics.Warnings(entries, time.Now())
	return jsonResource("daylog://warnings", map[string]any{
		"warnings": warnings,
		"count":    len(warnings),
	})
}

func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
