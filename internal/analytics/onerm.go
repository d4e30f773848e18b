// ABOUTME: One-rep-max estimation using the Brzycki formula.
// ABOUTME: Applied verbatim for any rep count; callers own input sanity.
package analytics

import "math"

// OneRepMax estimates a single-repetition maximum from a set's weight and
// reps. Brzycki: weight / (1.0278 - 0.0278 × reps), with reps == 1 returning
// the weight itself. Rounded to the nearest integer unit.
func OneRepMax(weight float64, reps int) int {
	if reps == 1 {
		return int(math.Round(weight))
	}
	est := weight / (1.0278 - 0.0278*float64(reps))
	return int(math.Round(est))
}
