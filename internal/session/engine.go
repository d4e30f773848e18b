// ABOUTME: Session execution engine: drives one workout through sets and rest intervals.
// ABOUTME: Snapshots progress continuously so an abrupt termination loses at most one interval.
package session

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/harperreed/ironlog/internal/models"
	"github.com/harperreed/ironlog/internal/notify"
	"github.com/harperreed/ironlog/internal/timer"
)

// Phase is the engine's position in the session state machine. The Paused
// flag is orthogonal: it suspends ticking without moving the cursor.
type Phase string

const (
	PhaseNotStarted Phase = "not_started"
	PhaseActive     Phase = "active"
	PhaseResting    Phase = "resting"
	PhaseCompleted  Phase = "completed"
)

// DefaultAutosaveInterval is how often progress is flushed even when
// nothing changed.
const DefaultAutosaveInterval = 30 * time.Second

// WorkoutStore is the slice of the record store the engine needs.
type WorkoutStore interface {
	GetWorkout(id uuid.UUID) (*models.Workout, error)
	PutWorkout(w *models.Workout) error
}

// SnapshotStore is the durable key-value surface for session snapshots.
type SnapshotStore interface {
	Save(snap *models.SessionSnapshot) error
	Load(workoutID uuid.UUID) (*models.SessionSnapshot, error)
	Clear(workoutID uuid.UUID) error
}

// Options tunes engine policy.
type Options struct {
	// Owner is the owner id stamped on session clones and snapshots.
	Owner string
	// AutosaveInterval is the fixed flush period; zero means the default.
	AutosaveInterval time.Duration
}

// Engine executes one workout at a time. All dependencies are injected so
// tests can supply fakes; one engine instance serves one active session.
type Engine struct {
	store     WorkoutStore
	snaps     SnapshotStore
	notifier  notify.Notifier
	clock     timer.Clock
	scheduler timer.Scheduler
	logger    *slog.Logger
	opts      Options

	mu            sync.Mutex
	workout       *models.Workout
	snap          *models.SessionSnapshot
	phase         Phase
	restTimer     *timer.Countdown
	stopAutosave  timer.StopFunc
	currentSetBeg time.Time
}

// New creates an engine. A nil logger discards log output.
func New(store WorkoutStore, snaps SnapshotStore, notifier notify.Notifier, clock timer.Clock, scheduler timer.Scheduler, logger *slog.Logger, opts Options) *Engine {
	if opts.AutosaveInterval <= 0 {
		opts.AutosaveInterval = DefaultAutosaveInterval
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Engine{
		store:     store,
		snaps:     snaps,
		notifier:  notifier,
		clock:     clock,
		scheduler: scheduler,
		logger:    logger,
		opts:      opts,
		phase:     PhaseNotStarted,
	}
}

// Start begins executing a workout. A template is cloned into a fresh
// session instance first. If a well-formed snapshot exists for the workout
// it is resumed; a corrupt or stale snapshot is discarded silently and the
// session starts fresh. An engine already holding a session rejects the
// call; Exit first, or build a new engine.
func (e *Engine) Start(workoutID uuid.UUID) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.phase != PhaseNotStarted {
		return ErrSessionActive
	}

	w, err := e.store.GetWorkout(workoutID)
	if err != nil {
		return fmt.Errorf("load workout: %w", err)
	}
	if w.IsCompleted() {
		return ErrWorkoutCompleted
	}

	now := e.clock.Now()
	if w.IsTemplate {
		w = w.CloneForSession(now)
		if e.opts.Owner != "" {
			w.OwnerID = e.opts.Owner
		}
		if err := e.store.PutWorkout(w); err != nil {
			return fmt.Errorf("save session instance: %w", err)
		}
	}
	e.workout = w

	snap, err := e.snaps.Load(w.ID)
	if err == nil && snap != nil && snap.Validate(w) {
		e.snap = snap
		e.logger.Info("resumed session",
			"workout", w.ID, "exercise", snap.ExerciseIndex, "set", snap.SetIndex)
	} else {
		if err == nil {
			// Structurally invalid snapshot: drop it, start fresh.
			if cerr := e.snaps.Clear(w.ID); cerr != nil {
				e.logger.Warn("clear invalid snapshot", "error", cerr)
			}
		}
		e.snap = &models.SessionSnapshot{
			SessionID:     uuid.New(),
			WorkoutID:     w.ID,
			OwnerID:       w.OwnerID,
			StartedAt:     now,
			CompletedSets: make(map[uuid.UUID]models.Set),
			Notes:         w.Notes,
		}
	}
	if e.snap.CompletedSets == nil {
		e.snap.CompletedSets = make(map[uuid.UUID]models.Set)
	}

	if e.snap.ExerciseIndex >= len(w.Exercises) {
		// Covers both a resumed terminal cursor and a zero-exercise workout.
		e.phase = PhaseCompleted
	} else {
		e.phase = PhaseActive
		e.skipLoggedSets()
	}
	e.currentSetBeg = now

	e.persistProgress()
	e.stopAutosave = e.scheduler.Every(e.opts.AutosaveInterval, e.autosave)
	return nil
}

// CompleteSet records the actuals for the current set and advances: into a
// rest interval when more sets remain in the exercise, straight to the next
// exercise otherwise, or to Completed after the final set.
func (e *Engine) CompleteSet(actualReps int, actualWeight float64) error {
	if actualReps <= 0 {
		return ErrInvalidReps
	}
	if actualWeight < 0 {
		return ErrInvalidWeight
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	switch e.phase {
	case PhaseNotStarted:
		return ErrNoSession
	case PhaseCompleted:
		return ErrSessionCompleted
	case PhaseResting:
		// The resting cursor still points at the set that was just
		// completed; advance or skip the rest first.
		return ErrRestInProgress
	}

	ex := &e.workout.Exercises[e.snap.ExerciseIndex]
	cur := ex.Sets[e.snap.SetIndex]

	now := e.clock.Now()
	began := e.currentSetBeg
	completed := true
	done := models.UpdatedSet(cur, models.SetUpdate{
		ActualReps:   &actualReps,
		ActualWeight: &actualWeight,
		Completed:    &completed,
		StartedAt:    &began,
		FinishedAt:   &now,
	})
	// Replaces any prior completion for the same set id.
	e.snap.CompletedSets[cur.ID] = done

	if e.snap.SetIndex < len(ex.Sets)-1 {
		e.phase = PhaseResting
		e.startRestTimer(cur.RestSeconds)
	} else {
		e.advanceExercise()
	}

	e.persistProgress()
	return nil
}

// AdvanceAfterRest moves to the next set once the rest countdown finished.
func (e *Engine) AdvanceAfterRest() error {
	return e.endRest()
}

// SkipRest interrupts the rest countdown and moves to the next set. Both
// rest exits are valid, non-error paths.
func (e *Engine) SkipRest() error {
	return e.endRest()
}

func (e *Engine) endRest() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.phase != PhaseResting {
		return ErrNotResting
	}

	e.stopRestTimer()
	e.snap.SetIndex++
	e.phase = PhaseActive
	e.currentSetBeg = e.clock.Now()
	e.persistProgress()
	return nil
}

// Pause suspends timer ticking and autosave flushes. The cursor and the
// completed-set list are untouched.
func (e *Engine) Pause() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.snap == nil || e.snap.Paused {
		return
	}
	e.snap.Paused = true
	if e.restTimer != nil {
		e.restTimer.Pause()
	}
	if e.stopAutosave != nil {
		e.stopAutosave()
		e.stopAutosave = nil
	}
	e.persistProgress()
}

// Resume unfreezes ticking and autosave after a Pause.
func (e *Engine) Resume() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.snap == nil || !e.snap.Paused {
		return
	}
	e.snap.Paused = false
	if e.restTimer != nil {
		e.restTimer.Start()
	}
	e.stopAutosave = e.scheduler.Every(e.opts.AutosaveInterval, e.autosave)
	e.persistProgress()
}

// Finish finalizes the workout: total minutes from start to now, completed
// sets merged back into the exercise structure, CompletedAt stamped, record
// persisted, snapshot cleared. Only legal once the cursor has advanced past
// the final set.
func (e *Engine) Finish() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.phase == PhaseNotStarted {
		return ErrNoSession
	}
	if e.phase != PhaseCompleted {
		return ErrSessionNotFinished
	}

	now := e.clock.Now()
	minutes := int(now.Sub(e.snap.StartedAt).Minutes())

	final := e.mergedWorkout()
	final.DurationMinutes = &minutes
	final.CompletedAt = &now
	if e.snap.Notes != "" {
		final.Notes = e.snap.Notes
	}

	// The final save is the one write that must not be silently dropped.
	if err := e.store.PutWorkout(final); err != nil {
		return fmt.Errorf("persist completed workout: %w", err)
	}

	if err := e.snaps.Clear(e.workout.ID); err != nil {
		e.logger.Warn("clear session snapshot", "error", err)
	}
	e.teardown()
	e.workout = final

	if e.notifier != nil {
		_ = e.notifier.PlaySound(notify.CategoryWorkout)
		_ = e.notifier.Notify("Workout complete", fmt.Sprintf("%s — %d min", final.Name, minutes))
	}
	return nil
}

// Exit stops the session without completing it. The snapshot stays in
// place for a later resume unless discard is set.
func (e *Engine) Exit(discard bool) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.phase == PhaseNotStarted {
		return ErrNoSession
	}

	e.persistProgress()
	e.teardown()
	if discard {
		if err := e.snaps.Clear(e.workout.ID); err != nil {
			return fmt.Errorf("discard snapshot: %w", err)
		}
	}
	e.phase = PhaseNotStarted
	return nil
}

// SetNotes updates the session's free-text notes.
func (e *Engine) SetNotes(notes string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.snap == nil {
		return ErrNoSession
	}
	e.snap.Notes = notes
	e.persistProgress()
	return nil
}

// Status is a read-only view of the live session.
type Status struct {
	Phase         Phase
	Paused        bool
	WorkoutID     uuid.UUID
	WorkoutName   string
	ExerciseIndex int
	SetIndex      int
	CompletedSets int
	TotalSets     int
	StartedAt     time.Time
	RestRemaining int
	RestRunning   bool
}

// Status reports the engine's current position.
func (e *Engine) Status() Status {
	e.mu.Lock()
	defer e.mu.Unlock()

	s := Status{Phase: e.phase}
	if e.snap == nil {
		return s
	}
	s.Paused = e.snap.Paused
	s.WorkoutID = e.workout.ID
	s.WorkoutName = e.workout.Name
	s.ExerciseIndex = e.snap.ExerciseIndex
	s.SetIndex = e.snap.SetIndex
	s.CompletedSets = len(e.snap.CompletedSets)
	s.TotalSets = e.workout.TotalSets()
	s.StartedAt = e.snap.StartedAt
	if e.restTimer != nil {
		s.RestRemaining = e.restTimer.Remaining()
		s.RestRunning = e.restTimer.Running()
	}
	return s
}

// RestTimer exposes the live rest countdown, nil outside Resting.
func (e *Engine) RestTimer() *timer.Countdown {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.restTimer
}

// Workout returns the workout instance being executed.
func (e *Engine) Workout() *models.Workout {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.workout
}

// skipLoggedSets walks the cursor past sets that are already in the
// completed map. A snapshot written during a rest interval still points at
// the set that was just logged; on resume the interruption counts as the
// rest having elapsed. Also steps over exercises with no sets. Caller
// holds the lock.
func (e *Engine) skipLoggedSets() {
	for e.phase == PhaseActive {
		ex := e.workout.Exercises[e.snap.ExerciseIndex]
		if len(ex.Sets) == 0 {
			e.advanceExercise()
			continue
		}
		cur := ex.Sets[e.snap.SetIndex]
		if _, ok := e.snap.CompletedSets[cur.ID]; !ok {
			return
		}
		if e.snap.SetIndex < len(ex.Sets)-1 {
			e.snap.SetIndex++
		} else {
			e.advanceExercise()
		}
	}
}

// advanceExercise moves the cursor to the next exercise with sets to
// execute, or to the terminal position past the last one. Caller holds
// the lock.
func (e *Engine) advanceExercise() {
	e.snap.ExerciseIndex++
	e.snap.SetIndex = 0
	e.currentSetBeg = e.clock.Now()
	for e.snap.ExerciseIndex < len(e.workout.Exercises) && len(e.workout.Exercises[e.snap.ExerciseIndex].Sets) == 0 {
		e.snap.ExerciseIndex++
	}
	if e.snap.ExerciseIndex >= len(e.workout.Exercises) {
		e.phase = PhaseCompleted
	} else {
		e.phase = PhaseActive
	}
}

// startRestTimer replaces any live countdown with a fresh rest countdown.
// Only one timer may be live per session. Caller holds the lock.
func (e *Engine) startRestTimer(seconds int) {
	e.stopRestTimer()
	e.restTimer = timer.NewCountdown(seconds, notify.CategoryRest, func() {
		// Rest ran to completion: advance on the session's behalf.
		if err := e.AdvanceAfterRest(); err != nil {
			e.logger.Warn("advance after rest", "error", err)
		}
	}, e.notifier, e.scheduler)
	if !e.snap.Paused {
		e.restTimer.Start()
	}
}

// stopRestTimer halts and drops the live countdown. Caller holds the lock.
func (e *Engine) stopRestTimer() {
	if e.restTimer != nil {
		e.restTimer.Stop()
		e.restTimer = nil
	}
}

// mergedWorkout folds the session's completed sets back into a copy of the
// workout structure. Caller holds the lock.
func (e *Engine) mergedWorkout() *models.Workout {
	merged := *e.workout
	merged.Exercises = make([]models.Exercise, len(e.workout.Exercises))
	for i, ex := range e.workout.Exercises {
		mex := ex
		mex.Sets = make([]models.Set, len(ex.Sets))
		for j, s := range ex.Sets {
			if done, ok := e.snap.CompletedSets[s.ID]; ok {
				mex.Sets[j] = done
			} else {
				mex.Sets[j] = s
			}
		}
		merged.Exercises[i] = mex
	}
	return &merged
}

// persistProgress writes the snapshot and pushes the best-known set state
// into the store. Failures are logged and never block the state machine.
// Caller holds the lock.
func (e *Engine) persistProgress() {
	if e.snap == nil {
		return
	}
	e.snap.SavedAt = e.clock.Now()
	if err := e.snaps.Save(e.snap); err != nil {
		e.logger.Warn("save session snapshot", "error", err)
	}
	if err := e.store.PutWorkout(e.mergedWorkout()); err != nil {
		e.logger.Warn("flush workout progress", "error", err)
	}
}

// autosave is the fixed-interval flush, independent of state changes.
func (e *Engine) autosave() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.phase == PhaseNotStarted || e.snap == nil || e.snap.Paused {
		return
	}
	e.persistProgress()
}

// teardown stops all scheduled activity. Caller holds the lock.
func (e *Engine) teardown() {
	e.stopRestTimer()
	if e.stopAutosave != nil {
		e.stopAutosave()
		e.stopAutosave = nil
	}
}
