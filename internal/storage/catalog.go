// ABOUTME: Exercise catalog CRUD operations.
// ABOUTME: Muscle lists are stored as a comma-joined column.
package storage

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/harperreed/ironlog/internal/models"
)

// CreateExerciseType inserts a new catalog entry.
func (d *DB) CreateExerciseType(et *models.ExerciseType) error {
	_, err := d.db.Exec(`
		INSERT INTO exercise_types (id, name, category, muscles, instructions, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		et.ID.String(), et.Name, string(et.Category),
		strings.Join(et.Muscles, ","), et.Instructions, et.CreatedAt.Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("create exercise type: %w", err)
	}
	return nil
}

// GetExerciseType retrieves a catalog entry by ID.
func (d *DB) GetExerciseType(id uuid.UUID) (*models.ExerciseType, error) {
	row := d.db.QueryRow(`
		SELECT id, name, category, muscles, instructions, created_at
		FROM exercise_types WHERE id = ?`, id.String())
	return scanExerciseType(row)
}

// ListExerciseTypes retrieves the whole catalog, sorted by name.
func (d *DB) ListExerciseTypes() ([]*models.ExerciseType, error) {
	rows, err := d.db.Query(`
		SELECT id, name, category, muscles, instructions, created_at
		FROM exercise_types ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("list exercise types: %w", err)
	}
	defer rows.Close()

	var types []*models.ExerciseType
	for rows.Next() {
		et, err := scanExerciseType(rows)
		if err != nil {
			return nil, err
		}
		types = append(types, et)
	}
	return types, rows.Err()
}

// UpdateExerciseType replaces a catalog entry (explicit edit).
func (d *DB) UpdateExerciseType(et *models.ExerciseType) error {
	result, err := d.db.Exec(`
		UPDATE exercise_types SET name = ?, category = ?, muscles = ?, instructions = ?
		WHERE id = ?`,
		et.Name, string(et.Category), strings.Join(et.Muscles, ","), et.Instructions, et.ID.String())
	if err != nil {
		return fmt.Errorf("update exercise type: %w", err)
	}
	affected, _ := result.RowsAffected()
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteExerciseType removes a catalog entry.
func (d *DB) DeleteExerciseType(id uuid.UUID) error {
	result, err := d.db.Exec("DELETE FROM exercise_types WHERE id = ?", id.String())
	if err != nil {
		return fmt.Errorf("delete exercise type: %w", err)
	}
	affected, _ := result.RowsAffected()
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func scanExerciseType(row scanner) (*models.ExerciseType, error) {
	var et models.ExerciseType
	var idStr, category, muscles, createdAt string

	err := row.Scan(&idStr, &et.Name, &category, &muscles, &et.Instructions, &createdAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan exercise type: %w", err)
	}

	if et.ID, err = uuid.Parse(idStr); err != nil {
		return nil, fmt.Errorf("invalid exercise type ID in database: %w", err)
	}
	et.Category = models.Category(category)
	if muscles != "" {
		et.Muscles = strings.Split(muscles, ",")
	}
	if et.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
		return nil, fmt.Errorf("invalid created_at timestamp: %w", err)
	}

	return &et, nil
}
