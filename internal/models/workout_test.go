// ABOUTME: Tests for workout models: copy-update helpers and template cloning.
// ABOUTME: Covers immutability of originals and ID freshness of clones.
package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestUpdatedSetAppliesOnlyNonNilFields(t *testing.T) {
	orig := *NewSet(10, 16.0, 90, 0)

	reps := 8
	weight := 20.0
	completed := true
	updated := UpdatedSet(orig, SetUpdate{
		ActualReps:   &reps,
		ActualWeight: &weight,
		Completed:    &completed,
	})

	if updated.ActualReps == nil || *updated.ActualReps != 8 {
		t.Errorf("ActualReps = %v, want 8", updated.ActualReps)
	}
	if updated.ActualWeight == nil || *updated.ActualWeight != 20.0 {
		t.Errorf("ActualWeight = %v, want 20.0", updated.ActualWeight)
	}
	if !updated.Completed {
		t.Error("Completed should be true")
	}

	// Untouched fields carry over.
	if updated.TargetReps != 10 || updated.TargetWeight != 16.0 || updated.RestSeconds != 90 {
		t.Errorf("targets changed: %+v", updated)
	}
	if updated.ID != orig.ID {
		t.Error("ID should be preserved")
	}
}

func TestUpdatedSetDoesNotMutateOriginal(t *testing.T) {
	orig := *NewSet(10, 16.0, 90, 0)

	reps := 8
	completed := true
	_ = UpdatedSet(orig, SetUpdate{ActualReps: &reps, Completed: &completed})

	if orig.ActualReps != nil {
		t.Error("original ActualReps should still be nil")
	}
	if orig.Completed {
		t.Error("original Completed should still be false")
	}
}

func TestCloneForSessionFreshIDs(t *testing.T) {
	typeID := uuid.New()
	tmpl := NewWorkout("local", "Monday A").AsTemplate()
	ex := NewExercise(typeID, 0).WithSets(*NewSet(10, 16.0, 90, 0), *NewSet(10, 16.0, 90, 1))
	tmpl.WithExercises(*ex)

	date := time.Date(2026, 3, 2, 7, 0, 0, 0, time.UTC)
	clone := tmpl.CloneForSession(date)

	if clone.ID == tmpl.ID {
		t.Error("clone should get a new workout ID")
	}
	if clone.IsTemplate {
		t.Error("clone should not be a template")
	}
	if !clone.Date.Equal(date) {
		t.Errorf("clone date = %v, want %v", clone.Date, date)
	}
	if clone.Exercises[0].ID == tmpl.Exercises[0].ID {
		t.Error("clone exercise should get a new ID")
	}
	if clone.Exercises[0].ExerciseTypeID != typeID {
		t.Error("clone should keep the exercise type reference")
	}
	for i, s := range clone.Exercises[0].Sets {
		if s.ID == tmpl.Exercises[0].Sets[i].ID {
			t.Errorf("set %d should get a new ID", i)
		}
		if s.TargetReps != 10 || s.TargetWeight != 16.0 || s.RestSeconds != 90 {
			t.Errorf("set %d targets not copied: %+v", i, s)
		}
	}
}

func TestCloneForSessionResetsActuals(t *testing.T) {
	tmpl := NewWorkout("local", "Monday A").AsTemplate()
	s := NewSet(10, 16.0, 90, 0)
	reps := 10
	s.ActualReps = &reps
	s.Completed = true
	tmpl.WithExercises(*NewExercise(uuid.New(), 0).WithSets(*s))

	clone := tmpl.CloneForSession(time.Now())
	got := clone.Exercises[0].Sets[0]
	if got.ActualReps != nil || got.Completed {
		t.Errorf("clone set should reset completion state: %+v", got)
	}
}

func TestTotalSets(t *testing.T) {
	w := NewWorkout("local", "test")
	w.WithExercises(
		*NewExercise(uuid.New(), 0).WithSets(*NewSet(5, 100, 120, 0), *NewSet(5, 100, 120, 1)),
		*NewExercise(uuid.New(), 1).WithSets(*NewSet(10, 16, 60, 0)),
	)
	if got := w.TotalSets(); got != 3 {
		t.Errorf("TotalSets = %d, want 3", got)
	}
}

func TestIsCompleted(t *testing.T) {
	w := NewWorkout("local", "test")
	if w.IsCompleted() {
		t.Error("new workout should not be completed")
	}
	now := time.Now()
	w.CompletedAt = &now
	if !w.IsCompleted() {
		t.Error("workout with CompletedAt should be completed")
	}
}
