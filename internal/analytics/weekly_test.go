// ABOUTME: Tests for weekly bucketing and the configurable week start.
// ABOUTME: Covers bucket boundaries, accumulation, and ordering.
package analytics

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/harperreed/ironlog/internal/models"
)

func TestWeekStartOf(t *testing.T) {
	// Wednesday March 4, 2026.
	wed := time.Date(2026, 3, 4, 15, 30, 0, 0, time.UTC)

	monday := WeekStartOf(wed, time.Monday)
	if want := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC); !monday.Equal(want) {
		t.Errorf("monday week start = %v, want %v", monday, want)
	}

	sunday := WeekStartOf(wed, time.Sunday)
	if want := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC); !sunday.Equal(want) {
		t.Errorf("sunday week start = %v, want %v", sunday, want)
	}

	// A day on the boundary starts its own week.
	mon := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
	if got := WeekStartOf(mon, time.Monday); !got.Equal(time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("monday itself = %v", got)
	}
}

func TestWeeklySeriesBucketing(t *testing.T) {
	typeID := uuid.New()
	// Monday-week buckets: Mar 2 and Mar 4 share a week; Mar 10 is the next.
	w1 := completedWorkout(time.Date(2026, 3, 2, 7, 0, 0, 0, time.UTC), typeID, doneSet(10, 16))
	w2 := completedWorkout(time.Date(2026, 3, 4, 7, 0, 0, 0, time.UTC), typeID, doneSet(10, 20))
	w3 := completedWorkout(time.Date(2026, 3, 10, 7, 0, 0, 0, time.UTC), typeID, doneSet(5, 100))

	series := WeeklySeries([]*models.Workout{w3, w1, w2}, DefaultConfig())
	if len(series) != 2 {
		t.Fatalf("got %d buckets, want 2", len(series))
	}

	first := series[0]
	if !first.WeekStart.Equal(time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("first bucket starts %v", first.WeekStart)
	}
	if first.WorkoutCount != 2 {
		t.Errorf("first bucket count = %d, want 2", first.WorkoutCount)
	}
	// 10×16 + 10×20
	if first.TotalVolume != 360 {
		t.Errorf("first bucket volume = %v, want 360", first.TotalVolume)
	}
	if first.TotalDuration != 90 {
		t.Errorf("first bucket duration = %d, want 90", first.TotalDuration)
	}
	if first.AverageDuration != 45 {
		t.Errorf("first bucket avg duration = %v, want 45", first.AverageDuration)
	}

	second := series[1]
	if second.WorkoutCount != 1 || second.TotalVolume != 500 {
		t.Errorf("second bucket = %+v", second)
	}
	if !first.WeekStart.Before(second.WeekStart) {
		t.Error("buckets should be oldest first")
	}
}

func TestWeeklySeriesSameWeekdayOneWeekApart(t *testing.T) {
	typeID := uuid.New()
	a := completedWorkout(time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC), typeID, doneSet(10, 16))
	b := completedWorkout(time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), typeID, doneSet(10, 16))

	series := WeeklySeries([]*models.Workout{a, b}, DefaultConfig())
	if len(series) != 2 {
		t.Errorf("same weekday a week apart should land in 2 buckets, got %d", len(series))
	}
}

func TestWeeklySeriesSundayStart(t *testing.T) {
	typeID := uuid.New()
	// Sunday Mar 1 and Monday Mar 2: same week under Sunday start, different
	// weeks under Monday start.
	sun := completedWorkout(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), typeID, doneSet(10, 16))
	mon := completedWorkout(time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), typeID, doneSet(10, 16))
	workouts := []*models.Workout{sun, mon}

	cfg := DefaultConfig()
	cfg.WeekStart = time.Sunday
	if got := len(WeeklySeries(workouts, cfg)); got != 1 {
		t.Errorf("sunday start: %d buckets, want 1", got)
	}

	if got := len(WeeklySeries(workouts, DefaultConfig())); got != 2 {
		t.Errorf("monday start: %d buckets, want 2", got)
	}
}

func TestWeekLabel(t *testing.T) {
	series := WeeklySeries([]*models.Workout{
		completedWorkout(time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), uuid.New(), doneSet(10, 16)),
	}, DefaultConfig())
	if len(series) != 1 {
		t.Fatalf("got %d buckets", len(series))
	}
	if series[0].Label != "Mar 2 – Mar 8" {
		t.Errorf("label = %q", series[0].Label)
	}
}
