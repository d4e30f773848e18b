// ABOUTME: Export and import functionality for training data.
// ABOUTME: Supports JSON and YAML export formats.
package storage

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/harperreed/ironlog/internal/models"
	"gopkg.in/yaml.v3"
)

// ExportData represents the full export format for training data.
type ExportData struct {
	Version       string                 `json:"version" yaml:"version"`
	ExportedAt    time.Time              `json:"exported_at" yaml:"exported_at"`
	Tool          string                 `json:"tool" yaml:"tool"`
	ExerciseTypes []*models.ExerciseType `json:"exercise_types" yaml:"exercise_types"`
	Workouts      []*models.Workout      `json:"workouts" yaml:"workouts"`
	Goals         []*models.Goal         `json:"goals" yaml:"goals"`
}

// GetAllData retrieves all of an owner's data for export.
func (d *DB) GetAllData(ownerID string) (*ExportData, error) {
	types, err := d.ListExerciseTypes()
	if err != nil {
		return nil, fmt.Errorf("list exercise types: %w", err)
	}

	workouts, err := d.ListWorkouts(ownerID, ListOptions{})
	if err != nil {
		return nil, fmt.Errorf("list workouts: %w", err)
	}

	goals, err := d.ListGoals(ownerID)
	if err != nil {
		return nil, fmt.Errorf("list goals: %w", err)
	}

	return &ExportData{
		Version:       "1.0",
		ExportedAt:    time.Now(),
		Tool:          "ironlog",
		ExerciseTypes: types,
		Workouts:      workouts,
		Goals:         goals,
	}, nil
}

// ImportData imports data from an export file. Existing rows with the same
// IDs are replaced.
func (d *DB) ImportData(data *ExportData) error {
	for _, et := range data.ExerciseTypes {
		if err := d.CreateExerciseType(et); err != nil {
			// Replace on ID collision
			if uerr := d.UpdateExerciseType(et); uerr != nil {
				return fmt.Errorf("import exercise type %s: %w", et.ID, err)
			}
		}
	}

	for _, w := range data.Workouts {
		if err := d.PutWorkout(w); err != nil {
			return fmt.Errorf("import workout %s: %w", w.ID, err)
		}
	}

	for _, g := range data.Goals {
		if err := d.CreateGoal(g); err != nil {
			if uerr := d.UpdateGoal(g); uerr != nil {
				return fmt.Errorf("import goal %s: %w", g.ID, err)
			}
		}
	}

	return nil
}

// MarshalExport renders export data in the requested format ("json" or "yaml").
func MarshalExport(data *ExportData, format string) ([]byte, error) {
	switch format {
	case "json":
		return json.MarshalIndent(data, "", "  ")
	case "yaml":
		return yaml.Marshal(data)
	default:
		return nil, fmt.Errorf("unknown export format: %q", format)
	}
}

// UnmarshalExport parses export data, trying JSON first, then YAML.
func UnmarshalExport(raw []byte) (*ExportData, error) {
	var data ExportData
	if err := json.Unmarshal(raw, &data); err == nil {
		return &data, nil
	}
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("parse export data: %w", err)
	}
	return &data, nil
}
