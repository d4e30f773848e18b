// ABOUTME: Workout aggregate persistence: put, get, range queries, delete.
// ABOUTME: Exercises and sets are stored in child tables and travel with the workout.
package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/harperreed/ironlog/internal/models"
)

// PutWorkout inserts or replaces a workout aggregate, including its
// exercises and sets, in a single transaction.
func (d *DB) PutWorkout(w *models.Workout) error {
	tx, err := d.db.Begin()
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	// Replace children wholesale; the aggregate is small and the cascade
	// keeps child rows consistent with the incoming structure.
	if _, err := tx.Exec("DELETE FROM exercises WHERE workout_id = ?", w.ID.String()); err != nil {
		return fmt.Errorf("clear exercises: %w", err)
	}

	_, err = tx.Exec(`
		INSERT OR REPLACE INTO workouts (id, owner_id, name, date, duration_minutes, notes, is_template, completed_at, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		w.ID.String(), w.OwnerID, w.Name, w.Date.Format(time.RFC3339),
		w.DurationMinutes, w.Notes, boolToInt(w.IsTemplate),
		timePtrString(w.CompletedAt), w.CreatedAt.Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("put workout: %w", err)
	}

	for _, ex := range w.Exercises {
		_, err = tx.Exec(`
			INSERT INTO exercises (id, workout_id, exercise_type_id, order_index)
			VALUES (?, ?, ?, ?)`,
			ex.ID.String(), w.ID.String(), ex.ExerciseTypeID.String(), ex.OrderIndex)
		if err != nil {
			return fmt.Errorf("put exercise: %w", err)
		}

		for _, s := range ex.Sets {
			_, err = tx.Exec(`
				INSERT INTO sets (id, exercise_id, target_reps, target_weight, actual_reps, actual_weight, rest_seconds, completed, order_index, started_at, finished_at)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
				s.ID.String(), ex.ID.String(), s.TargetReps, s.TargetWeight,
				s.ActualReps, s.ActualWeight, s.RestSeconds, boolToInt(s.Completed),
				s.OrderIndex, timePtrString(s.StartedAt), timePtrString(s.FinishedAt))
			if err != nil {
				return fmt.Errorf("put set: %w", err)
			}
		}
	}

	return tx.Commit()
}

// GetWorkout retrieves a workout with its exercises and sets.
func (d *DB) GetWorkout(id uuid.UUID) (*models.Workout, error) {
	row := d.db.QueryRow(`
		SELECT id, owner_id, name, date, duration_minutes, notes, is_template, completed_at, created_at
		FROM workouts WHERE id = ?`, id.String())

	w, err := scanWorkout(row)
	if err != nil {
		return nil, err
	}

	if err := d.loadExercises(w); err != nil {
		return nil, err
	}
	return w, nil
}

// ListWorkouts retrieves an owner's workouts, newest first, narrowed by opts.
func (d *DB) ListWorkouts(ownerID string, opts ListOptions) ([]*models.Workout, error) {
	query := `
		SELECT id, owner_id, name, date, duration_minutes, notes, is_template, completed_at, created_at
		FROM workouts WHERE owner_id = ?`
	args := []any{ownerID}

	if opts.From != nil {
		query += " AND date >= ?"
		args = append(args, opts.From.Format(time.RFC3339))
	}
	if opts.To != nil {
		query += " AND date <= ?"
		args = append(args, opts.To.Format(time.RFC3339))
	}
	if opts.Templates != nil {
		query += " AND is_template = ?"
		args = append(args, boolToInt(*opts.Templates))
	}
	query += " ORDER BY date DESC"
	if opts.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, opts.Limit)
	}

	rows, err := d.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list workouts: %w", err)
	}
	defer rows.Close()

	return d.collectWorkouts(rows)
}

// ListCompletedWorkouts retrieves finalized non-template workouts in
// chronological order, the shape the analytics engine consumes.
func (d *DB) ListCompletedWorkouts(ownerID string) ([]*models.Workout, error) {
	rows, err := d.db.Query(`
		SELECT id, owner_id, name, date, duration_minutes, notes, is_template, completed_at, created_at
		FROM workouts
		WHERE owner_id = ? AND is_template = 0 AND completed_at IS NOT NULL
		ORDER BY date ASC`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list completed workouts: %w", err)
	}
	defer rows.Close()

	return d.collectWorkouts(rows)
}

// DeleteWorkout removes a workout and its exercises and sets (cascade).
func (d *DB) DeleteWorkout(id uuid.UUID) error {
	result, err := d.db.Exec("DELETE FROM workouts WHERE id = ?", id.String())
	if err != nil {
		return fmt.Errorf("delete workout: %w", err)
	}
	affected, _ := result.RowsAffected()
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (d *DB) collectWorkouts(rows *sql.Rows) ([]*models.Workout, error) {
	var workouts []*models.Workout
	for rows.Next() {
		w, err := scanWorkout(rows)
		if err != nil {
			return nil, err
		}
		workouts = append(workouts, w)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, w := range workouts {
		if err := d.loadExercises(w); err != nil {
			return nil, err
		}
	}
	return workouts, nil
}

func (d *DB) loadExercises(w *models.Workout) error {
	rows, err := d.db.Query(`
		SELECT id, exercise_type_id, order_index
		FROM exercises WHERE workout_id = ? ORDER BY order_index ASC`, w.ID.String())
	if err != nil {
		return fmt.Errorf("load exercises: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var ex models.Exercise
		var idStr, typeStr string
		if err := rows.Scan(&idStr, &typeStr, &ex.OrderIndex); err != nil {
			return fmt.Errorf("scan exercise: %w", err)
		}
		if ex.ID, err = uuid.Parse(idStr); err != nil {
			return fmt.Errorf("invalid exercise ID in database: %w", err)
		}
		if ex.ExerciseTypeID, err = uuid.Parse(typeStr); err != nil {
			return fmt.Errorf("invalid exercise_type_id in database: %w", err)
		}
		w.Exercises = append(w.Exercises, ex)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	for i := range w.Exercises {
		if err := d.loadSets(&w.Exercises[i]); err != nil {
			return err
		}
	}
	return nil
}

func (d *DB) loadSets(ex *models.Exercise) error {
	rows, err := d.db.Query(`
		SELECT id, target_reps, target_weight, actual_reps, actual_weight, rest_seconds, completed, order_index, started_at, finished_at
		FROM sets WHERE exercise_id = ? ORDER BY order_index ASC`, ex.ID.String())
	if err != nil {
		return fmt.Errorf("load sets: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var s models.Set
		var idStr string
		var completed int
		var startedAt, finishedAt sql.NullString
		if err := rows.Scan(&idStr, &s.TargetReps, &s.TargetWeight, &s.ActualReps, &s.ActualWeight,
			&s.RestSeconds, &completed, &s.OrderIndex, &startedAt, &finishedAt); err != nil {
			return fmt.Errorf("scan set: %w", err)
		}
		if s.ID, err = uuid.Parse(idStr); err != nil {
			return fmt.Errorf("invalid set ID in database: %w", err)
		}
		s.Completed = completed != 0
		if s.StartedAt, err = parseTimePtr(startedAt); err != nil {
			return fmt.Errorf("invalid started_at timestamp: %w", err)
		}
		if s.FinishedAt, err = parseTimePtr(finishedAt); err != nil {
			return fmt.Errorf("invalid finished_at timestamp: %w", err)
		}
		ex.Sets = append(ex.Sets, s)
	}
	return rows.Err()
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanWorkout(row scanner) (*models.Workout, error) {
	var w models.Workout
	var idStr, date, createdAt string
	var isTemplate int
	var completedAt sql.NullString

	err := row.Scan(&idStr, &w.OwnerID, &w.Name, &date, &w.DurationMinutes,
		&w.Notes, &isTemplate, &completedAt, &createdAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan workout: %w", err)
	}

	if w.ID, err = uuid.Parse(idStr); err != nil {
		return nil, fmt.Errorf("invalid workout ID in database: %w", err)
	}
	if w.Date, err = time.Parse(time.RFC3339, date); err != nil {
		return nil, fmt.Errorf("invalid date timestamp: %w", err)
	}
	if w.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
		return nil, fmt.Errorf("invalid created_at timestamp: %w", err)
	}
	w.IsTemplate = isTemplate != 0
	if w.CompletedAt, err = parseTimePtr(completedAt); err != nil {
		return nil, fmt.Errorf("invalid completed_at timestamp: %w", err)
	}

	return &w, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func timePtrString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}

func parseTimePtr(ns sql.NullString) (*time.Time, error) {
	if !ns.Valid || ns.String == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, ns.String)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
