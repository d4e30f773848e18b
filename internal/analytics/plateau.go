// ABOUTME: Plateau detection over a weekly series via coefficient of variation.
// ABOUTME: Needs a full window of data points; short series always report no plateau.
package analytics

import (
	"fmt"
	"math"

	"github.com/harperreed/ironlog/internal/models"
)

// PlateauMetric selects which weekly quantity the plateau test examines.
type PlateauMetric string

const (
	PlateauVolume   PlateauMetric = "volume"
	PlateauCount    PlateauMetric = "count"
	PlateauDuration PlateauMetric = "duration"
)

// IsValidPlateauMetric checks if a string names a plateau metric.
func IsValidPlateauMetric(s string) bool {
	switch PlateauMetric(s) {
	case PlateauVolume, PlateauCount, PlateauDuration:
		return true
	}
	return false
}

// PlateauResult reports the outcome of a plateau test.
type PlateauResult struct {
	Plateau              bool    `json:"plateau"`
	Metric               string  `json:"metric"`
	Mean                 float64 `json:"mean"`
	StdDev               float64 `json:"std_dev"`
	CoefficientVariation float64 `json:"coefficient_of_variation"`
	DataPoints           int     `json:"data_points"`
}

// DetectPlateau examines the most recent cfg.PlateauWindow values of the
// chosen metric. With fewer points it reports no plateau rather than an
// error. A plateau is a coefficient of variation below cfg.PlateauThreshold.
func DetectPlateau(series []models.WeeklyStats, metric PlateauMetric, cfg Config) (PlateauResult, error) {
	result := PlateauResult{Metric: string(metric), DataPoints: len(series)}

	if !IsValidPlateauMetric(string(metric)) {
		return result, fmt.Errorf("unknown plateau metric: %q", metric)
	}
	if len(series) < cfg.PlateauWindow {
		return result, nil
	}

	recent := series[len(series)-cfg.PlateauWindow:]
	values := make([]float64, 0, len(recent))
	for _, b := range recent {
		switch metric {
		case PlateauVolume:
			values = append(values, b.TotalVolume)
		case PlateauCount:
			values = append(values, float64(b.WorkoutCount))
		case PlateauDuration:
			values = append(values, float64(b.TotalDuration))
		}
	}

	result.Mean = mean(values)
	result.StdDev = popStdDev(values, result.Mean)
	if result.Mean != 0 {
		result.CoefficientVariation = result.StdDev / result.Mean
	}
	result.Plateau = result.CoefficientVariation < cfg.PlateauThreshold
	return result, nil
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// popStdDev is the population standard deviation (divide by N, not N-1).
func popStdDev(values []float64, m float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		d := v - m
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(values)))
}
