// ABOUTME: SessionSnapshot model for crash-safe workout execution state.
// ABOUTME: Snapshots are JSON blobs in the local KV store, validated defensively on resume.
package models

import (
	"time"

	"github.com/google/uuid"
)

// SessionSnapshot is the durable copy of an in-progress session. It is
// written on every cursor or completed-set change and on a fixed interval,
// keyed by the workout being executed.
type SessionSnapshot struct {
	SessionID     uuid.UUID         `json:"session_id"`
	WorkoutID     uuid.UUID         `json:"workout_id"`
	OwnerID       string            `json:"owner_id"`
	StartedAt     time.Time         `json:"started_at"`
	ExerciseIndex int               `json:"exercise_index"`
	SetIndex      int               `json:"set_index"`
	Paused        bool              `json:"paused"`
	CompletedSets map[uuid.UUID]Set `json:"completed_sets"`
	Notes         string            `json:"notes,omitempty"`
	SavedAt       time.Time         `json:"saved_at"`
}

// Validate reports whether the snapshot is structurally sound for the given
// workout: same workout, a cursor that indexes a real exercise/set pair or
// sits exactly at the terminal past-the-end position, and completed sets
// that all belong to the workout.
func (s *SessionSnapshot) Validate(w *Workout) bool {
	if s.WorkoutID != w.ID || s.StartedAt.IsZero() {
		return false
	}
	if s.ExerciseIndex < 0 || s.SetIndex < 0 {
		return false
	}

	// Terminal position: one past the last exercise, set index zero.
	if s.ExerciseIndex == len(w.Exercises) {
		return s.SetIndex == 0
	}
	if s.ExerciseIndex > len(w.Exercises) {
		return false
	}
	if s.SetIndex >= len(w.Exercises[s.ExerciseIndex].Sets) {
		return false
	}

	known := make(map[uuid.UUID]bool, w.TotalSets())
	for _, ex := range w.Exercises {
		for _, set := range ex.Sets {
			known[set.ID] = true
		}
	}
	for id := range s.CompletedSets {
		if !known[id] {
			return false
		}
	}
	return true
}
