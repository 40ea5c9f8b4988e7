package engine

import (
	"testing"
	"time"
)

func TestPausableClockFreezesAndResumes(t *testing.T) {
	start := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	src := NewMockTimeProvider(start)
	clock := NewPausableClock(src)

	src.Advance(5 * time.Second)
	if got := clock.Now(); !got.Equal(start.Add(5 * time.Second)) {
		t.Fatalf("Now = %v, want start+5s", got)
	}

	clock.Pause()
	clock.Pause()
	src.Advance(10 * time.Second)
	if got := clock.Now(); !got.Equal(start.Add(5 * time.Second)) {
		t.Errorf("Now while paused = %v, want frozen at start+5s", got)
	}
	if !clock.IsPaused() {
		t.Error("Expected paused")
	}
	if d := clock.TotalPauseDuration(); d != 10*time.Second {
		t.Errorf("TotalPauseDuration = %v, want 10s", d)
	}

	clock.Resume()
	clock.Resume()
	src.Advance(2 * time.Second)
	if got := clock.Now(); !got.Equal(start.Add(7 * time.Second)) {
		t.Errorf("Now after resume = %v, want start+7s", got)
	}
	if !clock.RealTime().Equal(start.Add(17 * time.Second)) {
		t.Errorf("RealTime = %v, want start+17s", clock.RealTime())
	}
}

func TestPausableClockHoldsScheduler(t *testing.T) {
	start := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	src := NewMockTimeProvider(start)
	clock := NewPausableClock(src)
	sched := NewScheduler(clock)

	fired := 0
	sched.After(3*time.Second, func(time.Time) { fired++ })

	clock.Pause()
	src.Advance(time.Minute)
	sched.RunDue(clock.Now())
	if fired != 0 {
		t.Fatal("Task ran while paused")
	}

	clock.Resume()
	src.Advance(3 * time.Second)
	sched.RunDue(clock.Now())
	if fired != 1 {
		t.Errorf("Expected task to run after 3s of game time, fired=%d", fired)
	}
}
