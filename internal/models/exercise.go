// ABOUTME: ExerciseType catalog model and movement category enum.
// ABOUTME: Catalog entries are shared read-only by the session and analytics engines.
package models

import (
	"time"

	"github.com/google/uuid"
)

// Category classifies an exercise by movement pattern.
type Category string

const (
	CategorySwing    Category = "swing"
	CategoryPress    Category = "press"
	CategorySquat    Category = "squat"
	CategoryDeadlift Category = "deadlift"
	CategoryCarry    Category = "carry"
	CategoryOther    Category = "other"
)

// AllCategories lists every valid category, for CLI help and validation.
var AllCategories = []Category{
	CategorySwing,
	CategoryPress,
	CategorySquat,
	CategoryDeadlift,
	CategoryCarry,
	CategoryOther,
}

// IsValidCategory checks if a string is a recognized category.
func IsValidCategory(s string) bool {
	for _, c := range AllCategories {
		if string(c) == s {
			return true
		}
	}
	return false
}

// ExerciseType is a catalog entry describing one exercise.
// Immutable once created except via explicit edit.
type ExerciseType struct {
	ID           uuid.UUID `json:"id" yaml:"id"`
	Name         string    `json:"name" yaml:"name"`
	Category     Category  `json:"category" yaml:"category"`
	Muscles      []string  `json:"muscles,omitempty" yaml:"muscles,omitempty"`
	Instructions string    `json:"instructions,omitempty" yaml:"instructions,omitempty"`
	CreatedAt    time.Time `json:"created_at" yaml:"created_at"`
}

// NewExerciseType creates a catalog entry with a generated UUID.
func NewExerciseType(name string, category Category) *ExerciseType {
	return &ExerciseType{
		ID:        uuid.New(),
		Name:      name,
		Category:  category,
		CreatedAt: time.Now(),
	}
}

// WithMuscles sets the muscle list.
func (e *ExerciseType) WithMuscles(muscles ...string) *ExerciseType {
	e.Muscles = muscles
	return e
}

// WithInstructions sets the instruction text.
func (e *ExerciseType) WithInstructions(text string) *ExerciseType {
	e.Instructions = text
	return e
}
