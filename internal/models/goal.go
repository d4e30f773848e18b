// ABOUTME: Goal model for per-exercise training targets.
// ABOUTME: Goals are plain stored records; achievement checks happen in the CLI.
package models

import (
	"time"

	"github.com/google/uuid"
)

// GoalMetric names the quantity a goal targets.
type GoalMetric string

const (
	GoalWeight GoalMetric = "weight"
	GoalReps   GoalMetric = "reps"
	GoalVolume GoalMetric = "volume"
)

// IsValidGoalMetric checks if a string is a recognized goal metric.
func IsValidGoalMetric(s string) bool {
	switch GoalMetric(s) {
	case GoalWeight, GoalReps, GoalVolume:
		return true
	}
	return false
}

// Goal is a training target for one exercise type.
type Goal struct {
	ID             uuid.UUID  `json:"id" yaml:"id"`
	OwnerID        string     `json:"owner_id" yaml:"owner_id"`
	ExerciseTypeID uuid.UUID  `json:"exercise_type_id" yaml:"exercise_type_id"`
	Metric         GoalMetric `json:"metric" yaml:"metric"`
	TargetValue    float64    `json:"target_value" yaml:"target_value"`
	Deadline       *time.Time `json:"deadline,omitempty" yaml:"deadline,omitempty"`
	Achieved       bool       `json:"achieved" yaml:"achieved"`
	CreatedAt      time.Time  `json:"created_at" yaml:"created_at"`
}

// NewGoal creates a goal for an exercise type.
func NewGoal(ownerID string, exerciseTypeID uuid.UUID, metric GoalMetric, target float64) *Goal {
	return &Goal{
		ID:             uuid.New(),
		OwnerID:        ownerID,
		ExerciseTypeID: exerciseTypeID,
		Metric:         metric,
		TargetValue:    target,
		CreatedAt:      time.Now(),
	}
}

// WithDeadline sets a target date for the goal.
func (g *Goal) WithDeadline(t time.Time) *Goal {
	g.Deadline = &t
	return g
}
