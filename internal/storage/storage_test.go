// ABOUTME: Tests for the SQLite record store.
// ABOUTME: Covers catalog CRUD, workout aggregate round-trips, range queries, goals, and export.
package storage

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/harperreed/ironlog/internal/models"
)

func setupTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func testWorkout(owner string, date time.Time) *models.Workout {
	w := models.NewWorkout(owner, "Test Workout").WithDate(date)
	ex := models.NewExercise(uuid.New(), 0).WithSets(
		*models.NewSet(10, 16.0, 90, 0),
		*models.NewSet(10, 16.0, 90, 1),
	)
	return w.WithExercises(*ex)
}

func TestExerciseTypeCRUD(t *testing.T) {
	db := setupTestDB(t)

	et := models.NewExerciseType("Kettlebell Swing", models.CategorySwing).
		WithMuscles("glutes", "hamstrings").
		WithInstructions("Hinge, don't squat.")
	if err := db.CreateExerciseType(et); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := db.GetExerciseType(et.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name != "Kettlebell Swing" || got.Category != models.CategorySwing {
		t.Errorf("got %+v", got)
	}
	if len(got.Muscles) != 2 || got.Muscles[0] != "glutes" {
		t.Errorf("muscles = %v", got.Muscles)
	}
	if got.Instructions != "Hinge, don't squat." {
		t.Errorf("instructions = %q", got.Instructions)
	}

	got.Name = "Russian Swing"
	if err := db.UpdateExerciseType(got); err != nil {
		t.Fatalf("update: %v", err)
	}
	again, err := db.GetExerciseType(et.ID)
	if err != nil {
		t.Fatalf("get after update: %v", err)
	}
	if again.Name != "Russian Swing" {
		t.Errorf("name after update = %q", again.Name)
	}

	if err := db.DeleteExerciseType(et.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := db.GetExerciseType(et.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("get after delete: %v, want ErrNotFound", err)
	}
}

func TestListExerciseTypesSorted(t *testing.T) {
	db := setupTestDB(t)

	for _, name := range []string{"Squat", "Bench Press", "Deadlift"} {
		if err := db.CreateExerciseType(models.NewExerciseType(name, models.CategoryOther)); err != nil {
			t.Fatalf("create %s: %v", name, err)
		}
	}

	types, err := db.ListExerciseTypes()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(types) != 3 {
		t.Fatalf("got %d types, want 3", len(types))
	}
	if types[0].Name != "Bench Press" || types[2].Name != "Squat" {
		t.Errorf("not sorted by name: %s, %s, %s", types[0].Name, types[1].Name, types[2].Name)
	}
}

func TestWorkoutRoundTrip(t *testing.T) {
	db := setupTestDB(t)

	w := testWorkout("local", time.Date(2026, 3, 2, 7, 0, 0, 0, time.UTC))
	reps := 8
	weight := 20.0
	started := time.Date(2026, 3, 2, 7, 5, 0, 0, time.UTC)
	w.Exercises[0].Sets[0].ActualReps = &reps
	w.Exercises[0].Sets[0].ActualWeight = &weight
	w.Exercises[0].Sets[0].Completed = true
	w.Exercises[0].Sets[0].StartedAt = &started
	w.Notes = "felt strong"

	if err := db.PutWorkout(w); err != nil {
		t.Fatalf("put: %v", err)
	}

	got, err := db.GetWorkout(w.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name != w.Name || got.Notes != "felt strong" {
		t.Errorf("got %+v", got)
	}
	if len(got.Exercises) != 1 || len(got.Exercises[0].Sets) != 2 {
		t.Fatalf("structure lost: %+v", got)
	}

	s0 := got.Exercises[0].Sets[0]
	if s0.ActualReps == nil || *s0.ActualReps != 8 {
		t.Errorf("actual reps = %v", s0.ActualReps)
	}
	if s0.ActualWeight == nil || *s0.ActualWeight != 20.0 {
		t.Errorf("actual weight = %v", s0.ActualWeight)
	}
	if !s0.Completed {
		t.Error("completed flag lost")
	}
	if s0.StartedAt == nil || !s0.StartedAt.Equal(started) {
		t.Errorf("started at = %v", s0.StartedAt)
	}

	s1 := got.Exercises[0].Sets[1]
	if s1.ActualReps != nil || s1.Completed {
		t.Errorf("untouched set gained state: %+v", s1)
	}
}

func TestPutWorkoutReplacesChildren(t *testing.T) {
	db := setupTestDB(t)

	w := testWorkout("local", time.Now())
	if err := db.PutWorkout(w); err != nil {
		t.Fatalf("put: %v", err)
	}

	// Drop one set and save again; the old row must not linger.
	w.Exercises[0].Sets = w.Exercises[0].Sets[:1]
	if err := db.PutWorkout(w); err != nil {
		t.Fatalf("second put: %v", err)
	}

	got, err := db.GetWorkout(w.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if n := len(got.Exercises[0].Sets); n != 1 {
		t.Errorf("got %d sets, want 1", n)
	}
}

func TestListWorkoutsFilters(t *testing.T) {
	db := setupTestDB(t)

	jan := testWorkout("local", time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC))
	feb := testWorkout("local", time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC))
	tmpl := models.NewWorkout("local", "Template").AsTemplate()
	other := testWorkout("someone-else", time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC))

	for _, w := range []*models.Workout{jan, feb, tmpl, other} {
		if err := db.PutWorkout(w); err != nil {
			t.Fatalf("put: %v", err)
		}
	}

	all, err := db.ListWorkouts("local", ListOptions{})
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("got %d workouts, want 3", len(all))
	}

	from := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	after, err := db.ListWorkouts("local", ListOptions{From: &from})
	if err != nil {
		t.Fatalf("list from: %v", err)
	}
	if len(after) != 2 {
		t.Errorf("got %d workouts from feb, want 2 (feb + template dated today)", len(after))
	}

	templates := true
	tmpls, err := db.ListWorkouts("local", ListOptions{Templates: &templates})
	if err != nil {
		t.Fatalf("list templates: %v", err)
	}
	if len(tmpls) != 1 || tmpls[0].ID != tmpl.ID {
		t.Errorf("template filter failed: %d results", len(tmpls))
	}

	sessions := false
	justSessions, err := db.ListWorkouts("local", ListOptions{Templates: &sessions, Limit: 1})
	if err != nil {
		t.Fatalf("list sessions: %v", err)
	}
	if len(justSessions) != 1 {
		t.Errorf("limit ignored: %d results", len(justSessions))
	}
	// Newest first.
	if justSessions[0].ID != feb.ID {
		t.Errorf("expected newest session first, got %s", justSessions[0].Name)
	}
}

func TestListCompletedWorkoutsChronological(t *testing.T) {
	db := setupTestDB(t)

	w1 := testWorkout("local", time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC))
	w2 := testWorkout("local", time.Date(2026, 1, 12, 0, 0, 0, 0, time.UTC))
	done := time.Now()
	w1.CompletedAt = &done
	w2.CompletedAt = &done
	pending := testWorkout("local", time.Date(2026, 1, 20, 0, 0, 0, 0, time.UTC))
	tmpl := models.NewWorkout("local", "Template").AsTemplate()

	for _, w := range []*models.Workout{w2, w1, pending, tmpl} {
		if err := db.PutWorkout(w); err != nil {
			t.Fatalf("put: %v", err)
		}
	}

	got, err := db.ListCompletedWorkouts("local")
	if err != nil {
		t.Fatalf("list completed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d completed, want 2", len(got))
	}
	if !got[0].Date.Before(got[1].Date) {
		t.Error("completed workouts should be oldest first")
	}
}

func TestDeleteWorkoutCascades(t *testing.T) {
	db := setupTestDB(t)

	w := testWorkout("local", time.Now())
	if err := db.PutWorkout(w); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := db.DeleteWorkout(w.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := db.GetWorkout(w.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("get after delete: %v, want ErrNotFound", err)
	}
	if err := db.DeleteWorkout(w.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("double delete: %v, want ErrNotFound", err)
	}
}

func TestGoalCRUD(t *testing.T) {
	db := setupTestDB(t)

	g := models.NewGoal("local", uuid.New(), models.GoalWeight, 100).
		WithDeadline(time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC))
	if err := db.CreateGoal(g); err != nil {
		t.Fatalf("create: %v", err)
	}

	goals, err := db.ListGoals("local")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(goals) != 1 {
		t.Fatalf("got %d goals, want 1", len(goals))
	}
	got := goals[0]
	if got.Metric != models.GoalWeight || got.TargetValue != 100 {
		t.Errorf("got %+v", got)
	}
	if got.Deadline == nil {
		t.Error("deadline lost")
	}

	got.Achieved = true
	if err := db.UpdateGoal(got); err != nil {
		t.Fatalf("update: %v", err)
	}
	goals, _ = db.ListGoals("local")
	if !goals[0].Achieved {
		t.Error("achieved flag lost")
	}

	if err := db.DeleteGoal(g.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	goals, _ = db.ListGoals("local")
	if len(goals) != 0 {
		t.Errorf("goal not deleted: %d remain", len(goals))
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	src := setupTestDB(t)

	et := models.NewExerciseType("Squat", models.CategorySquat)
	if err := src.CreateExerciseType(et); err != nil {
		t.Fatalf("create type: %v", err)
	}
	w := testWorkout("local", time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC))
	if err := src.PutWorkout(w); err != nil {
		t.Fatalf("put workout: %v", err)
	}
	g := models.NewGoal("local", et.ID, models.GoalReps, 20)
	if err := src.CreateGoal(g); err != nil {
		t.Fatalf("create goal: %v", err)
	}

	for _, format := range []string{"json", "yaml"} {
		t.Run(format, func(t *testing.T) {
			data, err := src.GetAllData("local")
			if err != nil {
				t.Fatalf("get all data: %v", err)
			}

			raw, err := MarshalExport(data, format)
			if err != nil {
				t.Fatalf("marshal: %v", err)
			}
			parsed, err := UnmarshalExport(raw)
			if err != nil {
				t.Fatalf("unmarshal: %v", err)
			}

			dst := setupTestDB(t)
			if err := dst.ImportData(parsed); err != nil {
				t.Fatalf("import: %v", err)
			}

			types, _ := dst.ListExerciseTypes()
			if len(types) != 1 || types[0].ID != et.ID {
				t.Errorf("types not imported: %d", len(types))
			}
			got, err := dst.GetWorkout(w.ID)
			if err != nil {
				t.Fatalf("workout not imported: %v", err)
			}
			if got.TotalSets() != 2 {
				t.Errorf("workout structure lost: %d sets", got.TotalSets())
			}
			goals, _ := dst.ListGoals("local")
			if len(goals) != 1 {
				t.Errorf("goals not imported: %d", len(goals))
			}
		})
	}
}

func TestMarshalExportUnknownFormat(t *testing.T) {
	if _, err := MarshalExport(&ExportData{}, "xml"); err == nil {
		t.Error("unknown format should error")
	}
}
