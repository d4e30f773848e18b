// ABOUTME: Progress analytics engine: pure derivations over completed workout history.
// ABOUTME: Holds the policy Config (week start, plateau window/threshold) and headline totals.
package analytics

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/harperreed/ironlog/internal/models"
)

// Config carries the policy constants. They are policy, not derived values,
// so callers can override them.
type Config struct {
	// WeekStart is the weekday each weekly bucket begins on.
	WeekStart time.Weekday
	// PlateauWindow is how many recent weekly values the plateau test uses.
	PlateauWindow int
	// PlateauThreshold is the coefficient-of-variation cutoff below which a
	// run of weekly values counts as a plateau.
	PlateauThreshold float64
}

// DefaultConfig returns the standard policy: Monday weeks, a 4-week plateau
// window, and a 5% variation threshold.
func DefaultConfig() Config {
	return Config{
		WeekStart:        time.Monday,
		PlateauWindow:    4,
		PlateauThreshold: 0.05,
	}
}

// Catalog maps exercise type IDs to their catalog entries for name lookup.
type Catalog map[uuid.UUID]*models.ExerciseType

// NewCatalog builds a lookup from a catalog listing.
func NewCatalog(types []*models.ExerciseType) Catalog {
	c := make(Catalog, len(types))
	for _, et := range types {
		c[et.ID] = et
	}
	return c
}

// setVolume is weight × reps for one set, falling back to targets for
// fields never filled in.
func setVolume(s models.Set) float64 {
	return effectiveWeight(s) * float64(effectiveReps(s))
}

func effectiveWeight(s models.Set) float64 {
	if s.ActualWeight != nil {
		return *s.ActualWeight
	}
	return s.TargetWeight
}

func effectiveReps(s models.Set) int {
	if s.ActualReps != nil {
		return *s.ActualReps
	}
	return s.TargetReps
}

// TotalVolume sums weight × reps over every set of every workout.
func TotalVolume(workouts []*models.Workout) float64 {
	var total float64
	for _, w := range workouts {
		for _, ex := range w.Exercises {
			for _, s := range ex.Sets {
				total += setVolume(s)
			}
		}
	}
	return total
}

// AverageDuration is mean workout duration in minutes, 0 for no workouts.
func AverageDuration(workouts []*models.Workout) float64 {
	if len(workouts) == 0 {
		return 0
	}
	total := 0
	for _, w := range workouts {
		if w.DurationMinutes != nil {
			total += *w.DurationMinutes
		}
	}
	return float64(total) / float64(len(workouts))
}

// Dashboard bundles headline stats for presentation.
func Dashboard(workouts []*models.Workout, catalog Catalog, today time.Time, cfg Config) *models.DashboardStats {
	recent := make([]*models.Workout, len(workouts))
	copy(recent, workouts)
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].Date.After(recent[j].Date)
	})
	if len(recent) > 5 {
		recent = recent[:5]
	}

	return &models.DashboardStats{
		TotalWorkouts:   len(workouts),
		TotalVolume:     TotalVolume(workouts),
		AverageDuration: AverageDuration(workouts),
		CurrentStreak:   CurrentStreak(workouts, today),
		Records:         PersonalRecords(workouts, catalog),
		RecentWorkouts:  recent,
		Weekly:          WeeklySeries(workouts, cfg),
	}
}
