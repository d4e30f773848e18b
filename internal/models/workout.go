// ABOUTME: Workout aggregate: Workout, Exercise, and Set models.
// ABOUTME: Includes builder constructors, typed copy-update helpers, and template cloning.
package models

import (
	"time"

	"github.com/google/uuid"
)

// Set is one performed unit of an exercise. ActualReps and ActualWeight
// stay nil until the set is completed during a session.
type Set struct {
	ID           uuid.UUID  `json:"id" yaml:"id"`
	TargetReps   int        `json:"target_reps" yaml:"target_reps"`
	TargetWeight float64    `json:"target_weight" yaml:"target_weight"`
	ActualReps   *int       `json:"actual_reps,omitempty" yaml:"actual_reps,omitempty"`
	ActualWeight *float64   `json:"actual_weight,omitempty" yaml:"actual_weight,omitempty"`
	RestSeconds  int        `json:"rest_seconds" yaml:"rest_seconds"`
	Completed    bool       `json:"completed" yaml:"completed"`
	OrderIndex   int        `json:"order_index" yaml:"order_index"`
	StartedAt    *time.Time `json:"started_at,omitempty" yaml:"started_at,omitempty"`
	FinishedAt   *time.Time `json:"finished_at,omitempty" yaml:"finished_at,omitempty"`
}

// NewSet creates a planned set with targets and a rest interval.
func NewSet(targetReps int, targetWeight float64, restSeconds, orderIndex int) *Set {
	return &Set{
		ID:           uuid.New(),
		TargetReps:   targetReps,
		TargetWeight: targetWeight,
		RestSeconds:  restSeconds,
		OrderIndex:   orderIndex,
	}
}

// SetUpdate carries the fields of a Set that may change. Nil fields are
// preserved from the original.
type SetUpdate struct {
	TargetReps   *int
	TargetWeight *float64
	ActualReps   *int
	ActualWeight *float64
	RestSeconds  *int
	Completed    *bool
	StartedAt    *time.Time
	FinishedAt   *time.Time
}

// UpdatedSet returns a copy of s with the non-nil fields of u applied.
// The original is never mutated.
func UpdatedSet(s Set, u SetUpdate) Set {
	out := s
	if u.TargetReps != nil {
		out.TargetReps = *u.TargetReps
	}
	if u.TargetWeight != nil {
		out.TargetWeight = *u.TargetWeight
	}
	if u.ActualReps != nil {
		out.ActualReps = u.ActualReps
	}
	if u.ActualWeight != nil {
		out.ActualWeight = u.ActualWeight
	}
	if u.RestSeconds != nil {
		out.RestSeconds = *u.RestSeconds
	}
	if u.Completed != nil {
		out.Completed = *u.Completed
	}
	if u.StartedAt != nil {
		out.StartedAt = u.StartedAt
	}
	if u.FinishedAt != nil {
		out.FinishedAt = u.FinishedAt
	}
	return out
}

// Exercise is an ordered list of sets performed with one exercise type.
type Exercise struct {
	ID             uuid.UUID `json:"id" yaml:"id"`
	ExerciseTypeID uuid.UUID `json:"exercise_type_id" yaml:"exercise_type_id"`
	OrderIndex     int       `json:"order_index" yaml:"order_index"`
	Sets           []Set     `json:"sets" yaml:"sets"`
}

// NewExercise creates an exercise referencing a catalog entry.
func NewExercise(exerciseTypeID uuid.UUID, orderIndex int) *Exercise {
	return &Exercise{
		ID:             uuid.New(),
		ExerciseTypeID: exerciseTypeID,
		OrderIndex:     orderIndex,
	}
}

// WithSets appends sets to the exercise.
func (e *Exercise) WithSets(sets ...Set) *Exercise {
	e.Sets = append(e.Sets, sets...)
	return e
}

// Workout is the aggregate root: a planned template or an executed session.
// A workout with IsTemplate set must never carry a CompletedAt.
type Workout struct {
	ID              uuid.UUID  `json:"id" yaml:"id"`
	OwnerID         string     `json:"owner_id" yaml:"owner_id"`
	Name            string     `json:"name" yaml:"name"`
	Date            time.Time  `json:"date" yaml:"date"`
	DurationMinutes *int       `json:"duration_minutes,omitempty" yaml:"duration_minutes,omitempty"`
	Exercises       []Exercise `json:"exercises" yaml:"exercises"`
	Notes           string     `json:"notes,omitempty" yaml:"notes,omitempty"`
	IsTemplate      bool       `json:"is_template" yaml:"is_template"`
	CompletedAt     *time.Time `json:"completed_at,omitempty" yaml:"completed_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at" yaml:"created_at"`
}

// NewWorkout creates a workout dated now.
func NewWorkout(ownerID, name string) *Workout {
	now := time.Now()
	return &Workout{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		Name:      name,
		Date:      now,
		CreatedAt: now,
	}
}

// AsTemplate marks the workout as a reusable blueprint.
func (w *Workout) AsTemplate() *Workout {
	w.IsTemplate = true
	return w
}

// WithDate sets a custom workout date.
func (w *Workout) WithDate(t time.Time) *Workout {
	w.Date = t
	return w
}

// WithNotes sets free-text notes.
func (w *Workout) WithNotes(notes string) *Workout {
	w.Notes = notes
	return w
}

// WithExercises appends exercises to the workout.
func (w *Workout) WithExercises(exercises ...Exercise) *Workout {
	w.Exercises = append(w.Exercises, exercises...)
	return w
}

// IsCompleted reports whether the workout has been finalized.
func (w *Workout) IsCompleted() bool {
	return w.CompletedAt != nil
}

// TotalSets counts all sets across all exercises.
func (w *Workout) TotalSets() int {
	n := 0
	for _, e := range w.Exercises {
		n += len(e.Sets)
	}
	return n
}

// CloneForSession instantiates a fresh session workout from a template.
// Every entity gets a new ID; completion state and actuals are reset.
func (w *Workout) CloneForSession(date time.Time) *Workout {
	clone := &Workout{
		ID:        uuid.New(),
		OwnerID:   w.OwnerID,
		Name:      w.Name,
		Date:      date,
		Notes:     w.Notes,
		CreatedAt: date,
	}
	for _, ex := range w.Exercises {
		cex := Exercise{
			ID:             uuid.New(),
			ExerciseTypeID: ex.ExerciseTypeID,
			OrderIndex:     ex.OrderIndex,
		}
		for _, s := range ex.Sets {
			cex.Sets = append(cex.Sets, Set{
				ID:           uuid.New(),
				TargetReps:   s.TargetReps,
				TargetWeight: s.TargetWeight,
				RestSeconds:  s.RestSeconds,
				OrderIndex:   s.OrderIndex,
			})
		}
		clone.Exercises = append(clone.Exercises, cex)
	}
	return clone
}
