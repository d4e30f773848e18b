// ABOUTME: Tests for the manual scheduler and clock used by engine tests.
// ABOUTME: Covers interval accounting, stop semantics, and clock advancement.
package timer

import (
	"testing"
	"time"
)

func TestManualSchedulerFiresPerInterval(t *testing.T) {
	sched := NewManualScheduler()
	fires := 0
	sched.Every(time.Second, func() { fires++ })

	sched.Advance(500 * time.Millisecond)
	if fires != 0 {
		t.Errorf("fired before interval: %d", fires)
	}

	sched.Advance(2500 * time.Millisecond)
	if fires != 3 {
		t.Errorf("fires = %d, want 3", fires)
	}
}

func TestManualSchedulerStop(t *testing.T) {
	sched := NewManualScheduler()
	fires := 0
	stop := sched.Every(time.Second, func() { fires++ })

	sched.Advance(time.Second)
	stop()
	stop() // safe to call twice
	sched.Advance(5 * time.Second)

	if fires != 1 {
		t.Errorf("fires = %d, want 1", fires)
	}
	if sched.JobCount() != 0 {
		t.Errorf("jobs = %d, want 0", sched.JobCount())
	}
}

func TestManualSchedulerIndependentIntervals(t *testing.T) {
	sched := NewManualScheduler()
	fast, slow := 0, 0
	sched.Every(time.Second, func() { fast++ })
	sched.Every(30*time.Second, func() { slow++ })

	sched.Advance(30 * time.Second)
	if fast != 30 {
		t.Errorf("fast fires = %d, want 30", fast)
	}
	if slow != 1 {
		t.Errorf("slow fires = %d, want 1", slow)
	}
}

func TestTickerSchedulerStopIdempotent(t *testing.T) {
	var sched TickerScheduler
	stop := sched.Every(time.Hour, func() {})
	stop()
	stop()
}

func TestManualClock(t *testing.T) {
	base := time.Date(2026, 3, 2, 7, 0, 0, 0, time.UTC)
	clock := NewManualClock(base)

	if !clock.Now().Equal(base) {
		t.Errorf("Now = %v, want %v", clock.Now(), base)
	}

	clock.Advance(45 * time.Minute)
	want := base.Add(45 * time.Minute)
	if !clock.Now().Equal(want) {
		t.Errorf("Now after advance = %v, want %v", clock.Now(), want)
	}

	clock.Set(base)
	if !clock.Now().Equal(base) {
		t.Errorf("Now after set = %v, want %v", clock.Now(), base)
	}
}
