package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/eco-clicker/events"
	"github.com/lixenwraith/eco-clicker/status"
)

// Loop runs game logic on a fixed tick and owns all state mutation
// Each tick: dispatch queued input events, then run due scheduler tasks
// Both phases execute under the world lock, so handlers run to completion
// before any other mutation or snapshot
type Loop[T any] struct {
	state  T
	clock  TimeProvider
	sched  *Scheduler
	queue  *events.EventQueue
	router *events.Router[T]

	// World lock: held for every mutation and every snapshot read
	mu sync.Mutex

	tickInterval time.Duration
	tickCount    atomic.Uint64

	// Control channels
	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	running  atomic.Bool

	// Signals the renderer that state changed since the last tick
	updateDone chan struct{}

	// Called with the recovered value when the loop goroutine panics
	crashHandler func(any)

	statTicks   *atomic.Int64
	statEvents  *atomic.Int64
	statDropped *atomic.Int64
}

// NewLoop creates a loop over state with the given scheduler and inbound queue
// Returns the loop and a channel receiving a signal after each completed tick
func NewLoop[T any](
	state T,
	clock TimeProvider,
	sched *Scheduler,
	queue *events.EventQueue,
	reg *status.Registry,
	tickInterval time.Duration,
) (*Loop[T], <-chan struct{}) {
	updateDone := make(chan struct{}, 1)

	l := &Loop[T]{
		state:        state,
		clock:        clock,
		sched:        sched,
		queue:        queue,
		router:       events.NewRouter[T](queue),
		tickInterval: tickInterval,
		stopChan:     make(chan struct{}),
		updateDone:   updateDone,
		statTicks:    reg.Counters.Get(status.KeyEngineTicks),
		statEvents:   reg.Counters.Get(status.KeyEventsProcessed),
		statDropped:  reg.Counters.Get(status.KeyEventsDropped),
	}
	return l, updateDone
}

// RegisterEventHandler adds an event handler to router, must be called before Start()
func (l *Loop[T]) RegisterEventHandler(handler events.Handler[T]) {
	l.router.Register(handler)
}

// SetCrashHandler installs the panic hook for the loop goroutine, must be called before Start()
// Without one a panic propagates and kills the process as usual
func (l *Loop[T]) SetCrashHandler(fn func(r any)) {
	l.crashHandler = fn
}

// Start begins the loop goroutine
func (l *Loop[T]) Start() {
	if l.running.CompareAndSwap(false, true) {
		l.wg.Add(1)
		go l.run()
	}
}

// Stop halts the loop and waits for the goroutine to exit
func (l *Loop[T]) Stop() {
	l.stopOnce.Do(func() {
		if l.running.CompareAndSwap(true, false) {
			close(l.stopChan)
			l.wg.Wait()
		}
	})
}

// run ticks on a wall-clock deadline with drift correction
// Pacing ignores the game clock so a paused clock does not stall the loop
func (l *Loop[T]) run() {
	defer l.wg.Done()
	defer func() {
		if l.crashHandler == nil {
			return
		}
		if r := recover(); r != nil {
			l.crashHandler(r)
		}
	}()

	nextDeadline := time.Now().Add(l.tickInterval)

	timer := time.NewTimer(l.tickInterval)
	defer timer.Stop()

	for {
		select {
		case <-l.stopChan:
			return
		case <-timer.C:
		}

		l.Step(l.clock.Now())

		wall := time.Now()
		nextDeadline = nextDeadline.Add(l.tickInterval)
		// Far behind (suspend, debugger): resync instead of spinning
		if wall.Sub(nextDeadline) > l.tickInterval*2 {
			nextDeadline = wall.Add(l.tickInterval)
		}

		sleep := nextDeadline.Sub(wall)
		if sleep < 0 {
			sleep = 0
		}
		timer.Reset(sleep)
	}
}

// Step executes one tick synchronously at now
// The run loop calls it on every deadline; tests call it directly
func (l *Loop[T]) Step(now time.Time) {
	l.mu.Lock()
	n := l.router.DispatchAll(l.state)
	l.sched.RunDue(now)
	l.mu.Unlock()

	l.statEvents.Add(int64(n))
	l.statDropped.Store(int64(l.queue.Dropped()))
	l.statTicks.Store(int64(l.tickCount.Add(1)))

	select {
	case l.updateDone <- struct{}{}:
	default:
	}
}

// DispatchEventsImmediately processes pending input without waiting for the next tick
func (l *Loop[T]) DispatchEventsImmediately() {
	l.mu.Lock()
	n := l.router.DispatchAll(l.state)
	l.mu.Unlock()
	l.statEvents.Add(int64(n))
}

// RunSafe executes fn while holding the world lock
func (l *Loop[T]) RunSafe(fn func(state T)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fn(l.state)
}

// Ticks returns the number of completed ticks
func (l *Loop[T]) Ticks() uint64 {
	return l.tickCount.Load()
}
