// ABOUTME: MCP server setup for the training log.
// ABOUTME: Wraps the MCP server with store access and analytics policy.
package mcp

import (
	"context"

	"github.com/harperreed/ironlog/internal/analytics"
	"github.com/harperreed/ironlog/internal/models"
	"github.com/harperreed/ironlog/internal/storage"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Server wraps the MCP server with storage access. It exposes read and
// analytics tools only; live session execution stays on the interactive
// surface.
type Server struct {
	mcpServer *mcp.Server
	repo      storage.Repository
	owner     string
	cfg       analytics.Config
}

// NewServer creates a new MCP server over the given store.
func NewServer(repo storage.Repository, owner string, cfg analytics.Config) (*Server, error) {
	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    "ironlog",
			Version: "1.0.0",
		},
		nil,
	)

	s := &Server{
		mcpServer: mcpServer,
		repo:      repo,
		owner:     owner,
		cfg:       cfg,
	}

	s.registerTools()
	s.registerResources()

	return s, nil
}

// Serve starts the MCP server using stdio transport.
func (s *Server) Serve(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}

// history loads the analytics input: completed non-template workouts plus
// the catalog lookup.
func (s *Server) history() ([]*models.Workout, analytics.Catalog, error) {
	workouts, err := s.repo.ListCompletedWorkouts(s.owner)
	if err != nil {
		return nil, nil, err
	}
	types, err := s.repo.ListExerciseTypes()
	if err != nil {
		return nil, nil, err
	}
	return workouts, analytics.NewCatalog(types), nil
}
