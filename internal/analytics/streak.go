// ABOUTME: Consecutive-day workout streak calculation.
// ABOUTME: A day without a workout only breaks the streak once it is fully in the past.
package analytics

import (
	"time"

	"github.com/harperreed/ironlog/internal/models"
)

const dayKey = "2006-01-02"

// CurrentStreak counts consecutive calendar days with at least one workout,
// ending at today or yesterday. "Worked out yesterday but not yet today"
// keeps the streak alive; a two-day gap resets it to zero.
func CurrentStreak(workouts []*models.Workout, today time.Time) int {
	if len(workouts) == 0 {
		return 0
	}

	days := make(map[string]bool, len(workouts))
	var latest time.Time
	for _, w := range workouts {
		d := midnight(w.Date)
		days[d.Format(dayKey)] = true
		if d.After(latest) {
			latest = d
		}
	}

	todayMid := midnight(today)
	yesterday := todayMid.AddDate(0, 0, -1)
	if latest.Before(yesterday) {
		return 0
	}

	cursor := todayMid
	if !days[cursor.Format(dayKey)] {
		cursor = yesterday
	}

	streak := 0
	for days[cursor.Format(dayKey)] {
		streak++
		cursor = cursor.AddDate(0, 0, -1)
	}
	return streak
}

// midnight normalizes a time to the start of its calendar day.
func midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
