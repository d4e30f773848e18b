// ABOUTME: Tests for MCP tool and resource handlers over a temporary store.
// ABOUTME: Handlers are exercised directly; transport wiring is left to the SDK.
package mcp

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"github.com/harperreed/ironlog/internal/analytics"
	"github.com/harperreed/ironlog/internal/models"
	"github.com/harperreed/ironlog/internal/storage"
)

func setupTestServer(t *testing.T) (*Server, *storage.DB) {
	t.Helper()
	db, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	s, err := NewServer(db, "local", analytics.DefaultConfig())
	if err != nil {
		t.Fatalf("new server: %v", err)
	}
	return s, db
}

func seedCompletedWorkout(t *testing.T, db *storage.DB) *models.Workout {
	t.Helper()

	et := models.NewExerciseType("Kettlebell Swing", models.CategorySwing)
	if err := db.CreateExerciseType(et); err != nil {
		t.Fatalf("seed type: %v", err)
	}

	w := models.NewWorkout("local", "Morning Swings").
		WithDate(time.Date(2026, 3, 2, 7, 0, 0, 0, time.UTC))
	set := *models.NewSet(10, 16, 60, 0)
	reps := 10
	weight := 16.0
	set.ActualReps = &reps
	set.ActualWeight = &weight
	set.Completed = true
	w.WithExercises(*models.NewExercise(et.ID, 0).WithSets(set))
	done := w.Date.Add(30 * time.Minute)
	w.CompletedAt = &done
	minutes := 30
	w.DurationMinutes = &minutes

	if err := db.PutWorkout(w); err != nil {
		t.Fatalf("seed workout: %v", err)
	}
	return w
}

func TestHandleOneRepMax(t *testing.T) {
	s, _ := setupTestServer(t)

	_, out, err := s.handleOneRepMax(context.Background(), nil, oneRepMaxInput{Weight: 80, Reps: 5})
	if err != nil {
		t.Fatalf("handler: %v", err)
	}
	if out.Estimate != 90 {
		t.Errorf("estimate = %d, want 90", out.Estimate)
	}
}

func TestHandleListWorkoutsEmpty(t *testing.T) {
	s, _ := setupTestServer(t)

	_, out, err := s.handleListWorkouts(context.Background(), nil, listWorkoutsInput{})
	if err != nil {
		t.Fatalf("handler: %v", err)
	}
	if _, ok := out.(map[string]interface{}); !ok {
		t.Errorf("empty store should yield a message payload, got %T", out)
	}
}

func TestHandleListWorkouts(t *testing.T) {
	s, db := setupTestServer(t)
	seedCompletedWorkout(t, db)

	_, out, err := s.handleListWorkouts(context.Background(), nil, listWorkoutsInput{})
	if err != nil {
		t.Fatalf("handler: %v", err)
	}
	workouts, ok := out.([]*models.Workout)
	if !ok {
		t.Fatalf("payload type %T", out)
	}
	if len(workouts) != 1 || workouts[0].Name != "Morning Swings" {
		t.Errorf("workouts = %+v", workouts)
	}
}

func TestHandleGetWorkout(t *testing.T) {
	s, db := setupTestServer(t)
	w := seedCompletedWorkout(t, db)

	_, out, err := s.handleGetWorkout(context.Background(), nil, getWorkoutInput{ID: w.ID.String()})
	if err != nil {
		t.Fatalf("handler: %v", err)
	}
	got, ok := out.(*models.Workout)
	if !ok || got.ID != w.ID {
		t.Errorf("payload = %T %+v", out, out)
	}

	if _, _, err := s.handleGetWorkout(context.Background(), nil, getWorkoutInput{ID: "not-a-uuid"}); err == nil {
		t.Error("invalid id should error")
	}
}

func TestHandleGetDashboard(t *testing.T) {
	s, db := setupTestServer(t)
	seedCompletedWorkout(t, db)

	_, out, err := s.handleGetDashboard(context.Background(), nil, struct{}{})
	if err != nil {
		t.Fatalf("handler: %v", err)
	}
	stats, ok := out.(*models.DashboardStats)
	if !ok {
		t.Fatalf("payload type %T", out)
	}
	if stats.TotalWorkouts != 1 || stats.TotalVolume != 160 {
		t.Errorf("stats = %+v", stats)
	}
	if len(stats.Records) != 3 {
		t.Errorf("records = %d, want 3", len(stats.Records))
	}
}

func TestHandleCheckPlateauUnknownMetric(t *testing.T) {
	s, _ := setupTestServer(t)

	if _, _, err := s.handleCheckPlateau(context.Background(), nil, checkPlateauInput{Metric: "calories"}); err == nil {
		t.Error("unknown metric should error")
	}
}

func TestHandleCheckPlateauDefaultsToVolume(t *testing.T) {
	s, db := setupTestServer(t)
	seedCompletedWorkout(t, db)

	_, out, err := s.handleCheckPlateau(context.Background(), nil, checkPlateauInput{})
	if err != nil {
		t.Fatalf("handler: %v", err)
	}
	result, ok := out.(analytics.PlateauResult)
	if !ok {
		t.Fatalf("payload type %T", out)
	}
	if result.Metric != "volume" {
		t.Errorf("metric = %q, want volume", result.Metric)
	}
	if result.Plateau {
		t.Error("one week of data should not be a plateau")
	}
}

func TestDashboardResource(t *testing.T) {
	s, db := setupTestServer(t)
	seedCompletedWorkout(t, db)

	res, err := s.handleDashboardResource(context.Background(), nil)
	if err != nil {
		t.Fatalf("resource: %v", err)
	}
	if len(res.Contents) != 1 {
		t.Fatalf("contents = %d, want 1", len(res.Contents))
	}
	c := res.Contents[0]
	if c.URI != "ironlog://dashboard" || c.MIMEType != "application/json" {
		t.Errorf("contents meta = %+v", c)
	}

	var stats models.DashboardStats
	if err := json.Unmarshal([]byte(c.Text), &stats); err != nil {
		t.Fatalf("resource body is not JSON: %v", err)
	}
	if stats.TotalWorkouts != 1 {
		t.Errorf("stats = %+v", stats)
	}
}
