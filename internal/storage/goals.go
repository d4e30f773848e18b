// ABOUTME: Goal CRUD operations.
// ABOUTME: Goals are flat rows keyed by owner; no joins with workout history.
package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/harperreed/ironlog/internal/models"
)

// CreateGoal inserts a new goal.
func (d *DB) CreateGoal(g *models.Goal) error {
	_, err := d.db.Exec(`
		INSERT INTO goals (id, owner_id, exercise_type_id, metric, target_value, deadline, achieved, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		g.ID.String(), g.OwnerID, g.ExerciseTypeID.String(), string(g.Metric),
		g.TargetValue, timePtrString(g.Deadline), boolToInt(g.Achieved),
		g.CreatedAt.Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("create goal: %w", err)
	}
	return nil
}

// ListGoals retrieves an owner's goals, newest first.
func (d *DB) ListGoals(ownerID string) ([]*models.Goal, error) {
	rows, err := d.db.Query(`
		SELECT id, owner_id, exercise_type_id, metric, target_value, deadline, achieved, created_at
		FROM goals WHERE owner_id = ? ORDER BY created_at DESC`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list goals: %w", err)
	}
	defer rows.Close()

	var goals []*models.Goal
	for rows.Next() {
		g, err := scanGoal(rows)
		if err != nil {
			return nil, err
		}
		goals = append(goals, g)
	}
	return goals, rows.Err()
}

// UpdateGoal replaces a goal's mutable fields.
func (d *DB) UpdateGoal(g *models.Goal) error {
	result, err := d.db.Exec(`
		UPDATE goals SET metric = ?, target_value = ?, deadline = ?, achieved = ?
		WHERE id = ?`,
		string(g.Metric), g.TargetValue, timePtrString(g.Deadline),
		boolToInt(g.Achieved), g.ID.String())
	if err != nil {
		return fmt.Errorf("update goal: %w", err)
	}
	affected, _ := result.RowsAffected()
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteGoal removes a goal.
func (d *DB) DeleteGoal(id uuid.UUID) error {
	result, err := d.db.Exec("DELETE FROM goals WHERE id = ?", id.String())
	if err != nil {
		return fmt.Errorf("delete goal: %w", err)
	}
	affected, _ := result.RowsAffected()
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func scanGoal(rows *sql.Rows) (*models.Goal, error) {
	var g models.Goal
	var idStr, typeStr, metric, createdAt string
	var deadline sql.NullString
	var achieved int

	err := rows.Scan(&idStr, &g.OwnerID, &typeStr, &metric, &g.TargetValue, &deadline, &achieved, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("scan goal: %w", err)
	}

	if g.ID, err = uuid.Parse(idStr); err != nil {
		return nil, fmt.Errorf("invalid goal ID in database: %w", err)
	}
	if g.ExerciseTypeID, err = uuid.Parse(typeStr); err != nil {
		return nil, fmt.Errorf("invalid exercise_type_id in database: %w", err)
	}
	g.Metric = models.GoalMetric(metric)
	g.Achieved = achieved != 0
	if g.Deadline, err = parseTimePtr(deadline); err != nil {
		return nil, fmt.Errorf("invalid deadline timestamp: %w", err)
	}
	if g.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
		return nil, fmt.Errorf("invalid created_at timestamp: %w", err)
	}

	return &g, nil
}
