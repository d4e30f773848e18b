// ABOUTME: Scheduler abstraction for periodic callbacks (ticks, autosave).
// ABOUTME: Ticker-backed for production, manually advanced for deterministic tests.
package timer

import (
	"sync"
	"time"
)

// StopFunc cancels a scheduled callback. Safe to call more than once.
type StopFunc func()

// Scheduler runs a callback on a fixed interval until stopped. Replaces
// hidden re-subscription patterns with explicit start/stop.
type Scheduler interface {
	Every(interval time.Duration, fn func()) StopFunc
}

// TickerScheduler schedules callbacks on real time.Ticker goroutines.
type TickerScheduler struct{}

// Every starts a goroutine firing fn each interval until stopped.
func (TickerScheduler) Every(interval time.Duration, fn func()) StopFunc {
	ticker := time.NewTicker(interval)
	done := make(chan struct{})
	var once sync.Once

	go func() {
		for {
			select {
			case <-ticker.C:
				fn()
			case <-done:
				ticker.Stop()
				return
			}
		}
	}()

	return func() {
		once.Do(func() { close(done) })
	}
}

// ManualScheduler fires scheduled callbacks only when Advance is called,
// honoring each job's interval against the advanced duration.
type ManualScheduler struct {
	mu     sync.Mutex
	nextID int
	jobs   map[int]*manualJob
}

type manualJob struct {
	interval time.Duration
	elapsed  time.Duration
	fn       func()
}

// NewManualScheduler creates an empty manual scheduler.
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{jobs: make(map[int]*manualJob)}
}

// Every registers a job; it fires only during Advance.
func (m *ManualScheduler) Every(interval time.Duration, fn func()) StopFunc {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := m.nextID
	m.nextID++
	m.jobs[id] = &manualJob{interval: interval, fn: fn}

	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		delete(m.jobs, id)
	}
}

// Advance moves scheduler time forward, firing each job once per elapsed
// interval, in registration order.
func (m *ManualScheduler) Advance(d time.Duration) {
	m.mu.Lock()
	ids := make([]int, 0, len(m.jobs))
	for id := range m.jobs {
		ids = append(ids, id)
	}
	// Registration order = ascending id.
	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			if ids[j] < ids[i] {
				ids[i], ids[j] = ids[j], ids[i]
			}
		}
	}
	m.mu.Unlock()

	for _, id := range ids {
		m.mu.Lock()
		job, ok := m.jobs[id]
		if !ok {
			m.mu.Unlock()
			continue
		}
		job.elapsed += d
		var fires int
		for job.elapsed >= job.interval {
			job.elapsed -= job.interval
			fires++
		}
		fn := job.fn
		m.mu.Unlock()

		for i := 0; i < fires; i++ {
			fn()
		}
	}
}

// JobCount reports how many jobs are currently scheduled.
func (m *ManualScheduler) JobCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.jobs)
}
