package engine

import (
	"testing"
	"time"

	"github.com/lixenwraith/eco-clicker/events"
	"github.com/lixenwraith/eco-clicker/status"
)

type counterState struct {
	clicks int
	ticks  []time.Time
}

type clickCounter struct{}

func (clickCounter) EventTypes() []events.EventType {
	return []events.EventType{events.EventClick}
}

func (clickCounter) HandleEvent(s *counterState, _ events.GameEvent) {
	s.clicks++
}

func newTestLoop(t *testing.T) (*Loop[*counterState], *counterState, *Scheduler, *events.EventQueue, *MockTimeProvider, <-chan struct{}) {
	t.Helper()
	tp := NewMockTimeProvider(schedEpoch)
	sched := NewScheduler(tp)
	queue := events.NewEventQueue()
	state := &counterState{}
	loop, done := NewLoop(state, tp, sched, queue, status.NewRegistry(), 50*time.Millisecond)
	loop.RegisterEventHandler(clickCounter{})
	return loop, state, sched, queue, tp, done
}

func TestLoopStepDispatchesThenRunsTasks(t *testing.T) {
	loop, state, sched, queue, tp, done := newTestLoop(t)

	// The task observes the click dispatched in the same step
	var clicksAtTick int
	sched.After(time.Second, func(time.Time) { clicksAtTick = state.clicks })

	queue.Push(events.GameEvent{Type: events.EventClick})
	queue.Push(events.GameEvent{Type: events.EventClick})
	loop.Step(tp.Advance(time.Second))

	if state.clicks != 2 {
		t.Errorf("clicks = %d, want 2", state.clicks)
	}
	if clicksAtTick != 2 {
		t.Errorf("task saw %d clicks, want 2", clicksAtTick)
	}
	if loop.Ticks() != 1 {
		t.Errorf("Ticks() = %d, want 1", loop.Ticks())
	}

	select {
	case <-done:
	default:
		t.Error("Step did not signal updateDone")
	}
}

func TestLoopDispatchEventsImmediately(t *testing.T) {
	loop, state, _, queue, _, _ := newTestLoop(t)

	queue.Push(events.GameEvent{Type: events.EventClick})
	loop.DispatchEventsImmediately()

	if state.clicks != 1 {
		t.Errorf("clicks = %d, want 1", state.clicks)
	}
	if loop.Ticks() != 0 {
		t.Errorf("immediate dispatch advanced ticks to %d", loop.Ticks())
	}
}

func TestLoopRunSafe(t *testing.T) {
	loop, _, _, _, _, _ := newTestLoop(t)

	loop.RunSafe(func(s *counterState) { s.clicks = 42 })

	var got int
	loop.RunSafe(func(s *counterState) { got = s.clicks })
	if got != 42 {
		t.Errorf("RunSafe read %d, want 42", got)
	}
}

func TestLoopStartStop(t *testing.T) {
	sched := NewScheduler(NewMonotonicTimeProvider())
	queue := events.NewEventQueue()
	state := &counterState{}
	loop, done := NewLoop(state, NewMonotonicTimeProvider(), sched, queue, status.NewRegistry(), 5*time.Millisecond)
	loop.RegisterEventHandler(clickCounter{})

	queue.Push(events.GameEvent{Type: events.EventClick})
	loop.Start()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("loop did not tick within 1s")
	}

	loop.Stop()
	loop.Stop() // idempotent

	var clicks int
	loop.RunSafe(func(s *counterState) { clicks = s.clicks })
	if clicks != 1 {
		t.Errorf("clicks = %d, want 1", clicks)
	}
}

func TestLoopTicksWhileClockPaused(t *testing.T) {
	clock := NewPausableClock(nil)
	clock.Pause()
	sched := NewScheduler(clock)

	fired := false
	sched.After(time.Millisecond, func(time.Time) { fired = true })

	loop, done := NewLoop(&counterState{}, clock, sched, events.NewEventQueue(), status.NewRegistry(), 5*time.Millisecond)
	loop.Start()
	defer loop.Stop()

	for i := 0; i < 3; i++ {
		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatalf("loop stalled on tick %d with a paused clock", i)
		}
	}

	var ran bool
	loop.RunSafe(func(*counterState) { ran = fired })
	if ran {
		t.Error("Task ran while game time was paused")
	}
}

type panicHandler struct{}

func (panicHandler) EventTypes() []events.EventType {
	return []events.EventType{events.EventDismissQuiz}
}

func (panicHandler) HandleEvent(*counterState, events.GameEvent) {
	panic("handler failed")
}

func TestLoopCrashHandlerRecoversPanic(t *testing.T) {
	sched := NewScheduler(NewMonotonicTimeProvider())
	queue := events.NewEventQueue()
	loop, _ := NewLoop(&counterState{}, NewMonotonicTimeProvider(), sched, queue, status.NewRegistry(), 5*time.Millisecond)
	loop.RegisterEventHandler(panicHandler{})

	crashed := make(chan any, 1)
	loop.SetCrashHandler(func(r any) { crashed <- r })

	queue.Push(events.GameEvent{Type: events.EventDismissQuiz})
	loop.Start()

	select {
	case r := <-crashed:
		if r != "handler failed" {
			t.Errorf("crash handler got %v, want handler panic value", r)
		}
	case <-time.After(time.Second):
		t.Fatal("crash handler not called within 1s")
	}
	loop.Stop()
}

func TestLoopReportsDroppedEvents(t *testing.T) {
	tp := NewMockTimeProvider(schedEpoch)
	reg := status.NewRegistry()
	queue := events.NewEventQueue()
	loop, _ := NewLoop(&counterState{}, tp, NewScheduler(tp), queue, reg, 50*time.Millisecond)
	loop.RegisterEventHandler(clickCounter{})

	for i := 0; i < 300; i++ {
		queue.Push(events.GameEvent{Type: events.EventClick})
	}
	loop.Step(tp.Advance(50 * time.Millisecond))

	if got := reg.Counters.Get(status.KeyEventsDropped).Load(); got != 300-256 {
		t.Errorf("dropped counter = %d, want %d", got, 300-256)
	}
}
