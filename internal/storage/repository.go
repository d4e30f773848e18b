// ABOUTME: Repository interface for the training record store.
// ABOUTME: Defines the CRUD and range-query contract the engines depend on.
package storage

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/harperreed/ironlog/internal/models"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("record not found")

// ListOptions narrows a workout range query. Nil bounds are open.
type ListOptions struct {
	From      *time.Time // date >= From
	To        *time.Time // date <= To
	Templates *bool      // filter by is_template
	Limit     int        // 0 means no limit
}

// Repository defines the storage contract for training data.
// This interface allows swapping implementations (e.g., for testing).
type Repository interface {
	// Exercise catalog
	CreateExerciseType(et *models.ExerciseType) error
	GetExerciseType(id uuid.UUID) (*models.ExerciseType, error)
	ListExerciseTypes() ([]*models.ExerciseType, error)
	UpdateExerciseType(et *models.ExerciseType) error
	DeleteExerciseType(id uuid.UUID) error

	// Workout aggregates (exercises and sets load/save with the workout)
	PutWorkout(w *models.Workout) error
	GetWorkout(id uuid.UUID) (*models.Workout, error)
	ListWorkouts(ownerID string, opts ListOptions) ([]*models.Workout, error)
	ListCompletedWorkouts(ownerID string) ([]*models.Workout, error)
	DeleteWorkout(id uuid.UUID) error

	// Goals
	CreateGoal(g *models.Goal) error
	ListGoals(ownerID string) ([]*models.Goal, error)
	UpdateGoal(g *models.Goal) error
	DeleteGoal(id uuid.UUID) error

	// Export/Import
	GetAllData(ownerID string) (*ExportData, error)
	ImportData(data *ExportData) error

	// Lifecycle
	Close() error
}
