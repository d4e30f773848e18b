// ABOUTME: Derived statistics models: personal records, weekly series, dashboard.
// ABOUTME: Never stored; recomputed on demand from completed workout history.
package models

import (
	"time"

	"github.com/google/uuid"
)

// RecordKind names the kind of personal record.
type RecordKind string

const (
	RecordMaxWeight RecordKind = "maxWeight"
	RecordMaxReps   RecordKind = "maxReps"
	RecordMaxVolume RecordKind = "maxVolume"
)

// PersonalRecord is a best-ever value for one exercise type and kind.
// Derived from history; never mutated in place.
type PersonalRecord struct {
	ExerciseTypeID uuid.UUID  `json:"exercise_type_id"`
	ExerciseName   string     `json:"exercise_name"`
	Kind           RecordKind `json:"kind"`
	Value          float64    `json:"value"`
	Date           time.Time  `json:"date"`
	WorkoutID      uuid.UUID  `json:"workout_id"`
}

// WeeklyStats aggregates one week of completed workouts.
type WeeklyStats struct {
	WeekStart       time.Time `json:"week_start"`
	Label           string    `json:"label"`
	TotalVolume     float64   `json:"total_volume"`
	WorkoutCount    int       `json:"workout_count"`
	TotalDuration   int       `json:"total_duration_minutes"`
	AverageDuration float64   `json:"average_duration_minutes"`
}

// DashboardStats bundles the headline numbers for the dashboard view.
type DashboardStats struct {
	TotalWorkouts   int              `json:"total_workouts"`
	TotalVolume     float64          `json:"total_volume"`
	AverageDuration float64          `json:"average_duration_minutes"`
	CurrentStreak   int              `json:"current_streak_days"`
	Records         []PersonalRecord `json:"records"`
	RecentWorkouts  []*Workout       `json:"recent_workouts"`
	Weekly          []WeeklyStats    `json:"weekly"`
}
