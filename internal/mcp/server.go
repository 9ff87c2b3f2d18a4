// ABOUTME: MCP server setup for the daily entry store.
// ABOUTME: Wraps the MCP server with storage and extraction access.
package mcp

import (
	"context"

	"github.com/harperreed/daylog/internal/extract"
	"github.com/harperreed/daylog/internal/models"
	"github.com/harperreed/daylog/internal/store"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Server wraps the MCP server with storage and extraction access.
type Server struct {
	mcpServer *mcp.Server
	store     store.Store
	extractor *extract.Extractor
	habits    []models.HabitDefinition
}

// NewServer creates a new MCP server over the given store. The
// extractor may be nil when no document directory is configured, in
// which case the extract_day tool reports that.
func NewServer(st store.Store, extractor *extract.Extractor, habits []models.HabitDefinition) (*Server, error) {
	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    "daylog",
			Version: "1.0.0",
		},
		nil,
	)

	s := &Server{
		mcpServer: mcpServer,
		store:     st,
		extractor: extractor,
		habits:    habits,
	}

	s.registerTools()
	s.registerResources()

	return s, nil
}

// Serve starts the MCP server using stdio transport.
func (s *Server) Serve(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}
