// ABOUTME: Tests for session snapshot validation.
// ABOUTME: Covers cursor bounds, the terminal position, and foreign set IDs.
package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func snapshotWorkout() *Workout {
	w := NewWorkout("local", "test")
	w.WithExercises(
		*NewExercise(uuid.New(), 0).WithSets(*NewSet(10, 16, 90, 0), *NewSet(10, 16, 90, 1)),
		*NewExercise(uuid.New(), 1).WithSets(*NewSet(5, 100, 120, 0)),
	)
	return w
}

func validSnapshot(w *Workout) *SessionSnapshot {
	return &SessionSnapshot{
		SessionID:     uuid.New(),
		WorkoutID:     w.ID,
		OwnerID:       w.OwnerID,
		StartedAt:     time.Now(),
		CompletedSets: make(map[uuid.UUID]Set),
	}
}

func TestValidateAcceptsFreshSnapshot(t *testing.T) {
	w := snapshotWorkout()
	if !validSnapshot(w).Validate(w) {
		t.Error("fresh snapshot should validate")
	}
}

func TestValidateAcceptsTerminalPosition(t *testing.T) {
	w := snapshotWorkout()
	snap := validSnapshot(w)
	snap.ExerciseIndex = len(w.Exercises)
	snap.SetIndex = 0
	if !snap.Validate(w) {
		t.Error("terminal cursor should validate")
	}

	snap.SetIndex = 1
	if snap.Validate(w) {
		t.Error("terminal cursor with nonzero set index should not validate")
	}
}

func TestValidateRejectsOutOfRangeCursor(t *testing.T) {
	w := snapshotWorkout()

	cases := []struct {
		name     string
		exercise int
		set      int
	}{
		{"negative exercise", -1, 0},
		{"negative set", 0, -1},
		{"exercise past terminal", len(w.Exercises) + 1, 0},
		{"set out of range", 0, 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			snap := validSnapshot(w)
			snap.ExerciseIndex = tc.exercise
			snap.SetIndex = tc.set
			if snap.Validate(w) {
				t.Errorf("cursor (%d,%d) should not validate", tc.exercise, tc.set)
			}
		})
	}
}

func TestValidateRejectsWrongWorkout(t *testing.T) {
	w := snapshotWorkout()
	snap := validSnapshot(w)
	snap.WorkoutID = uuid.New()
	if snap.Validate(w) {
		t.Error("snapshot for another workout should not validate")
	}
}

func TestValidateRejectsZeroStart(t *testing.T) {
	w := snapshotWorkout()
	snap := validSnapshot(w)
	snap.StartedAt = time.Time{}
	if snap.Validate(w) {
		t.Error("snapshot without a start time should not validate")
	}
}

func TestValidateRejectsForeignCompletedSets(t *testing.T) {
	w := snapshotWorkout()
	snap := validSnapshot(w)
	snap.CompletedSets[uuid.New()] = *NewSet(10, 16, 90, 0)
	if snap.Validate(w) {
		t.Error("completed set not in the workout should not validate")
	}
}

func TestValidateAcceptsOwnCompletedSets(t *testing.T) {
	w := snapshotWorkout()
	snap := validSnapshot(w)
	first := w.Exercises[0].Sets[0]
	snap.CompletedSets[first.ID] = first
	snap.SetIndex = 1
	if !snap.Validate(w) {
		t.Error("snapshot with an in-workout completed set should validate")
	}
}
