// ABOUTME: Sentinel errors for the session execution engine.
// ABOUTME: Validation and contract violations are rejected values, never panics.
package session

import "errors"

var (
	// ErrNoSession means an operation was called before Start.
	ErrNoSession = errors.New("no active session")

	// ErrSessionActive means Start was called on an engine that already
	// holds a session.
	ErrSessionActive = errors.New("session already started")

	// ErrSessionCompleted means the cursor is already past the final set;
	// there is nothing left to do.
	ErrSessionCompleted = errors.New("session already completed")

	// ErrSessionNotFinished means Finish was called before the cursor
	// advanced past the final set.
	ErrSessionNotFinished = errors.New("session not finished")

	// ErrNotResting means a rest transition was requested outside Resting.
	ErrNotResting = errors.New("session is not resting")

	// ErrRestInProgress means a set completion was attempted while the
	// rest interval for the previous set is still open.
	ErrRestInProgress = errors.New("rest in progress")

	// ErrWorkoutCompleted means Start was called for an already finalized
	// workout.
	ErrWorkoutCompleted = errors.New("workout already completed")

	// ErrInvalidReps rejects a set completion with non-positive reps.
	ErrInvalidReps = errors.New("actual reps must be positive")

	// ErrInvalidWeight rejects a set completion with negative weight.
	ErrInvalidWeight = errors.New("actual weight must not be negative")
)
