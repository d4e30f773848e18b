// ABOUTME: MCP resource implementations for the training log.
// ABOUTME: Provides ironlog://dashboard, ironlog://records, and ironlog://weekly resources.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/harperreed/ironlog/internal/analytics"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerResources() {
	// ironlog://dashboard - headline stats
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "ironlog://dashboard",
		Name:        "Training Dashboard",
		Description: "Totals, current streak, top records, recent workouts, weekly series",
		MIMEType:    "application/json",
	}, s.handleDashboardResource)

	// ironlog://records - personal records
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "ironlog://records",
		Name:        "Personal Records",
		Description: "Top personal records across all exercises",
		MIMEType:    "application/json",
	}, s.handleRecordsResource)

	// ironlog://weekly - weekly training series
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "ironlog://weekly",
		Name:        "Weekly Training Stats",
		Description: "Per-week volume, workout count, and duration",
		MIMEType:    "application/json",
	}, s.handleWeeklyResource)
}

// Resource handlers

func (s *Server) handleDashboardResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	workouts, catalog, err := s.history()
	if err != nil {
		return nil, fmt.Errorf("failed to load history: %w", err)
	}

	stats := analytics.Dashboard(workouts, catalog, time.Now(), s.cfg)
	return jsonResource("ironlog://dashboard", stats)
}

func (s *Server) handleRecordsResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	workouts, catalog, err := s.history()
	if err != nil {
		return nil, fmt.Errorf("failed to load history: %w", err)
	}

	records := analytics.PersonalRecords(workouts, catalog)
	return jsonResource("ironlog://records", records)
}

func (s *Server) handleWeeklyResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	workouts, _, err := s.history()
	if err != nil {
		return nil, fmt.Errorf("failed to load history: %w", err)
	}

	series := analytics.WeeklySeries(workouts, s.cfg)
	return jsonResource("ironlog://weekly", series)
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
