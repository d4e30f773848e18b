// ABOUTME: MCP tool implementations for the training log.
// ABOUTME: Read and analytics operations over workouts, records, and weekly trends.
package mcp

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/harperreed/ironlog/internal/analytics"
	"github.com/harperreed/ironlog/internal/storage"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerTools() {
	// list_workouts
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_workouts",
		Description: "List recent workouts, optionally only templates or only completed sessions",
	}, s.handleListWorkouts)

	// get_workout
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_workout",
		Description: "Get a workout with all its exercises and sets",
	}, s.handleGetWorkout)

	// list_exercise_types
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_exercise_types",
		Description: "List the exercise catalog",
	}, s.handleListExerciseTypes)

	// get_dashboard
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_dashboard",
		Description: "Get dashboard stats: totals, current streak, records, weekly series",
	}, s.handleGetDashboard)

	// list_personal_records
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_personal_records",
		Description: "List top personal records (max weight, max reps, max single-set volume)",
	}, s.handleListRecords)

	// get_weekly_stats
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_weekly_stats",
		Description: "Get per-week volume, workout count, and duration",
	}, s.handleWeeklyStats)

	// check_plateau
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "check_plateau",
		Description: "Check whether a weekly metric (volume, count, duration) has plateaued",
	}, s.handleCheckPlateau)

	// estimate_one_rep_max
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "estimate_one_rep_max",
		Description: "Estimate a one-rep max from weight and reps (Brzycki formula)",
	}, s.handleOneRepMax)
}

// Tool input/output types

type listWorkoutsInput struct {
	Limit     int  `json:"limit,omitempty" jsonschema:"Max results (default 20)"`
	Templates bool `json:"templates,omitempty" jsonschema:"List templates instead of sessions"`
}

type getWorkoutInput struct {
	ID string `json:"id" jsonschema:"Workout UUID"`
}

type weeklyStatsInput struct {
	Weeks int `json:"weeks,omitempty" jsonschema:"Max number of recent weeks (default all)"`
}

type checkPlateauInput struct {
	Metric string `json:"metric,omitempty" jsonschema:"Weekly metric to test: volume (default), count, or duration"`
}

type oneRepMaxInput struct {
	Weight float64 `json:"weight" jsonschema:"Weight lifted"`
	Reps   int     `json:"reps" jsonschema:"Reps performed"`
}

type oneRepMaxOutput struct {
	Estimate int    `json:"estimate"`
	Message  string `json:"message"`
}

// Tool handlers

func (s *Server) handleListWorkouts(ctx context.Context, req *mcp.CallToolRequest, input listWorkoutsInput) (*mcp.CallToolResult, any, error) {
	if input.Limit <= 0 {
		input.Limit = 20
	}

	templates := input.Templates
	workouts, err := s.repo.ListWorkouts(s.owner, storage.ListOptions{
		Templates: &templates,
		Limit:     input.Limit,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list workouts: %w", err)
	}

	if len(workouts) == 0 {
		return nil, map[string]interface{}{"message": "No workouts found."}, nil
	}

	return nil, workouts, nil
}

func (s *Server) handleGetWorkout(ctx context.Context, req *mcp.CallToolRequest, input getWorkoutInput) (*mcp.CallToolResult, any, error) {
	id, err := uuid.Parse(input.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid workout id: %s", input.ID)
	}

	w, err := s.repo.GetWorkout(id)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get workout: %w", err)
	}

	return nil, w, nil
}

func (s *Server) handleListExerciseTypes(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, any, error) {
	types, err := s.repo.ListExerciseTypes()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list exercise types: %w", err)
	}

	if len(types) == 0 {
		return nil, map[string]interface{}{"message": "Catalog is empty."}, nil
	}

	return nil, types, nil
}

func (s *Server) handleGetDashboard(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, any, error) {
	workouts, catalog, err := s.history()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load history: %w", err)
	}

	stats := analytics.Dashboard(workouts, catalog, time.Now(), s.cfg)
	return nil, stats, nil
}

func (s *Server) handleListRecords(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, any, error) {
	workouts, catalog, err := s.history()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load history: %w", err)
	}

	records := analytics.PersonalRecords(workouts, catalog)
	if len(records) == 0 {
		return nil, map[string]interface{}{"message": "No records yet."}, nil
	}

	return nil, records, nil
}

func (s *Server) handleWeeklyStats(ctx context.Context, req *mcp.CallToolRequest, input weeklyStatsInput) (*mcp.CallToolResult, any, error) {
	workouts, _, err := s.history()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load history: %w", err)
	}

	series := analytics.WeeklySeries(workouts, s.cfg)
	if input.Weeks > 0 && len(series) > input.Weeks {
		series = series[len(series)-input.Weeks:]
	}

	if len(series) == 0 {
		return nil, map[string]interface{}{"message": "No completed workouts yet."}, nil
	}

	return nil, series, nil
}

func (s *Server) handleCheckPlateau(ctx context.Context, req *mcp.CallToolRequest, input checkPlateauInput) (*mcp.CallToolResult, any, error) {
	metric := input.Metric
	if metric == "" {
		metric = string(analytics.PlateauVolume)
	}
	if !analytics.IsValidPlateauMetric(metric) {
		return nil, nil, fmt.Errorf("unknown plateau metric: %s", metric)
	}

	workouts, _, err := s.history()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load history: %w", err)
	}

	series := analytics.WeeklySeries(workouts, s.cfg)
	result, err := analytics.DetectPlateau(series, analytics.PlateauMetric(metric), s.cfg)
	if err != nil {
		return nil, nil, err
	}

	return nil, result, nil
}

func (s *Server) handleOneRepMax(ctx context.Context, req *mcp.CallToolRequest, input oneRepMaxInput) (*mcp.CallToolResult, oneRepMaxOutput, error) {
	est := analytics.OneRepMax(input.Weight, input.Reps)
	return nil, oneRepMaxOutput{
		Estimate: est,
		Message:  fmt.Sprintf("Estimated 1RM for %.1f x %d: %d", input.Weight, input.Reps, est),
	}, nil
}
