// ABOUTME: SQLite schema definition and initialization.
// ABOUTME: Defines tables for exercise types, workouts, exercises, sets, and goals.
package storage

// initSchema creates or updates the database schema.
func (d *DB) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS exercise_types (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		category TEXT NOT NULL,
		muscles TEXT,
		instructions TEXT,
		created_at DATETIME NOT NULL
	);

	CREATE TABLE IF NOT EXISTS workouts (
		id TEXT PRIMARY KEY,
		owner_id TEXT NOT NULL,
		name TEXT NOT NULL,
		date DATETIME NOT NULL,
		duration_minutes INTEGER,
		notes TEXT,
		is_template INTEGER NOT NULL DEFAULT 0,
		completed_at DATETIME,
		created_at DATETIME NOT NULL
	);

	CREATE TABLE IF NOT EXISTS exercises (
		id TEXT PRIMARY KEY,
		workout_id TEXT NOT NULL,
		exercise_type_id TEXT NOT NULL,
		order_index INTEGER NOT NULL,
		FOREIGN KEY (workout_id) REFERENCES workouts(id) ON DELETE CASCADE
	);

	CREATE TABLE IF NOT EXISTS sets (
		id TEXT PRIMARY KEY,
		exercise_id TEXT NOT NULL,
		target_reps INTEGER NOT NULL,
		target_weight REAL NOT NULL,
		actual_reps INTEGER,
		actual_weight REAL,
		rest_seconds INTEGER NOT NULL,
		completed INTEGER NOT NULL DEFAULT 0,
		order_index INTEGER NOT NULL,
		started_at DATETIME,
		finished_at DATETIME,
		FOREIGN KEY (exercise_id) REFERENCES exercises(id) ON DELETE CASCADE
	);

	CREATE TABLE IF NOT EXISTS goals (
		id TEXT PRIMARY KEY,
		owner_id TEXT NOT NULL,
		exercise_type_id TEXT NOT NULL,
		metric TEXT NOT NULL,
		target_value REAL NOT NULL,
		deadline DATETIME,
		achieved INTEGER NOT NULL DEFAULT 0,
		created_at DATETIME NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_workouts_owner_date ON workouts(owner_id, date DESC);
	CREATE INDEX IF NOT EXISTS idx_workouts_owner_template ON workouts(owner_id, is_template);
	CREATE INDEX IF NOT EXISTS idx_exercises_workout ON exercises(workout_id);
	CREATE INDEX IF NOT EXISTS idx_sets_exercise ON sets(exercise_id);
	CREATE INDEX IF NOT EXISTS idx_goals_owner ON goals(owner_id);
	`

	_, err := d.db.Exec(schema)
	return err
}
