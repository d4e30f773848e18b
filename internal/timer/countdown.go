// ABOUTME: Countdown timer state machine: Idle, Running, Paused, Completed.
// ABOUTME: Fires a per-second cue in the final seconds and a completion callback exactly once.
package timer

import (
	"sync"
	"time"

	"github.com/harperreed/ironlog/internal/notify"
)

// State is the countdown lifecycle state.
type State string

const (
	StateIdle      State = "idle"
	StateRunning   State = "running"
	StatePaused    State = "paused"
	StateCompleted State = "completed"
)

// finalCueWindow is the number of remaining seconds during which each tick
// plays a warning cue.
const finalCueWindow = 10

// Countdown counts whole seconds down from an initial duration. The
// category picks the completion sound; the callback carries the completion
// logic and always runs even when the cue fails.
type Countdown struct {
	mu         sync.Mutex
	initial    int
	remaining  int
	category   notify.Category
	state      State
	onComplete func()
	notifier   notify.Notifier
	scheduler  Scheduler
	stopTick   StopFunc
}

// NewCountdown creates an idle countdown of seconds duration.
func NewCountdown(seconds int, category notify.Category, onComplete func(), notifier notify.Notifier, scheduler Scheduler) *Countdown {
	if seconds < 0 {
		seconds = 0
	}
	return &Countdown{
		initial:    seconds,
		remaining:  seconds,
		category:   category,
		state:      StateIdle,
		onComplete: onComplete,
		notifier:   notifier,
		scheduler:  scheduler,
	}
}

// Start begins or resumes ticking. Starting a completed countdown does
// nothing; it never auto-restarts.
func (c *Countdown) Start() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == StateRunning || c.state == StateCompleted {
		return
	}
	c.state = StateRunning
	c.stopTick = c.scheduler.Every(time.Second, c.Tick)
}

// Pause suspends ticking without touching the remaining time.
func (c *Countdown) Pause() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != StateRunning {
		return
	}
	c.stopTicking()
	c.state = StatePaused
}

// Reset returns to Idle with the original duration, from any state.
func (c *Countdown) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.stopTicking()
	c.state = StateIdle
	c.remaining = c.initial
}

// Adjust shifts the remaining time by delta seconds, clamped at zero.
// Callers adjust while not running, but a concurrent tick cannot corrupt
// state: the new value is simply visible on the next tick.
func (c *Countdown) Adjust(delta int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.remaining += delta
	if c.remaining < 0 {
		c.remaining = 0
	}
}

// Tick advances the countdown by one second. Driven by the scheduler.
func (c *Countdown) Tick() {
	c.mu.Lock()
	if c.state != StateRunning {
		c.mu.Unlock()
		return
	}

	if c.remaining > 0 {
		c.remaining--
	}

	if c.remaining > 0 {
		inCueWindow := c.remaining <= finalCueWindow
		notifier := c.notifier
		c.mu.Unlock()
		if inCueWindow && notifier != nil {
			_ = notifier.PlaySound(notify.CategoryTick)
		}
		return
	}

	// Completion happens exactly once: state flips before callbacks run.
	c.stopTicking()
	c.state = StateCompleted
	notifier := c.notifier
	category := c.category
	onComplete := c.onComplete
	c.mu.Unlock()

	if notifier != nil {
		// Audio/visual feedback is best-effort; completion logic is not.
		_ = notifier.PlaySound(category)
		_ = notifier.Notify("Timer complete", string(category))
	}
	if onComplete != nil {
		onComplete()
	}
}

// Remaining returns the seconds left.
func (c *Countdown) Remaining() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.remaining
}

// Running reports whether the countdown is actively ticking.
func (c *Countdown) Running() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state == StateRunning
}

// Paused reports whether the countdown is paused.
func (c *Countdown) Paused() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state == StatePaused
}

// Done reports whether the countdown has completed.
func (c *Countdown) Done() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state == StateCompleted
}

// Stop halts ticking without changing remaining time or completing.
func (c *Countdown) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stopTicking()
	if c.state == StateRunning {
		c.state = StatePaused
	}
}

// stopTicking cancels the scheduled tick. Caller holds the lock.
func (c *Countdown) stopTicking() {
	if c.stopTick != nil {
		c.stopTick()
		c.stopTick = nil
	}
}
