// ABOUTME: Weekly bucketing of completed workouts by a fixed week-start weekday.
// ABOUTME: Buckets are emitted oldest-to-newest with human-readable labels.
package analytics

import (
	"fmt"
	"sort"
	"time"

	"github.com/harperreed/ironlog/internal/models"
)

// WeeklySeries buckets workouts into weeks starting on cfg.WeekStart,
// accumulating volume, count, and duration per bucket.
func WeeklySeries(workouts []*models.Workout, cfg Config) []models.WeeklyStats {
	buckets := make(map[string]*models.WeeklyStats)

	for _, w := range workouts {
		start := WeekStartOf(w.Date, cfg.WeekStart)
		key := start.Format(dayKey)

		b, ok := buckets[key]
		if !ok {
			b = &models.WeeklyStats{
				WeekStart: start,
				Label:     weekLabel(start),
			}
			buckets[key] = b
		}

		b.WorkoutCount++
		b.TotalVolume += TotalVolume([]*models.Workout{w})
		if w.DurationMinutes != nil {
			b.TotalDuration += *w.DurationMinutes
		}
	}

	series := make([]models.WeeklyStats, 0, len(buckets))
	for _, b := range buckets {
		if b.WorkoutCount > 0 {
			b.AverageDuration = float64(b.TotalDuration) / float64(b.WorkoutCount)
		}
		series = append(series, *b)
	}

	sort.Slice(series, func(i, j int) bool {
		return series[i].WeekStart.Before(series[j].WeekStart)
	})
	return series
}

// WeekStartOf returns the midnight of the most recent weekStart weekday at
// or before t.
func WeekStartOf(t time.Time, weekStart time.Weekday) time.Time {
	d := midnight(t)
	back := (int(d.Weekday()) - int(weekStart) + 7) % 7
	return d.AddDate(0, 0, -back)
}

// weekLabel renders "Jan 2 – Jan 8" for the week starting at start.
func weekLabel(start time.Time) string {
	end := start.AddDate(0, 0, 6)
	return fmt.Sprintf("%s – %s", start.Format("Jan 2"), end.Format("Jan 2"))
}
