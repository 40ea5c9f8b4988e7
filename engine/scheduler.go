package engine

import (
	"container/heap"
	"time"
)

// TaskID is a handle returned by the scheduler, used for cancellation
// Zero is never issued
type TaskID uint64

// Task is a state transition run by the scheduler
// now is the task's scheduled due time, not the wall clock at execution
type Task func(now time.Time)

type scheduledTask struct {
	id       TaskID
	seq      uint64 // Insertion order, breaks due-time ties
	due      time.Time
	interval time.Duration // Zero for one-shot tasks
	fn       Task
	index    int // Heap index, -1 once popped
}

// taskHeap orders tasks by due time, then by insertion order
type taskHeap []*scheduledTask

func (h taskHeap) Len() int { return len(h) }

func (h taskHeap) Less(i, j int) bool {
	if h[i].due.Equal(h[j].due) {
		return h[i].seq < h[j].seq
	}
	return h[i].due.Before(h[j].due)
}

func (h taskHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *taskHeap) Push(x any) {
	t := x.(*scheduledTask)
	t.index = len(*h)
	*h = append(*h, t)
}

func (h *taskHeap) Pop() any {
	old := *h
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	t.index = -1
	*h = old[:n-1]
	return t
}

// Scheduler is a single-threaded queue of one-shot and repeating tasks
// Not safe for concurrent use; the owning loop serializes access
//
// Tasks never run on their own: RunDue executes everything due at or before
// the given time in due order, so a loop that falls behind catches up tick by tick
type Scheduler struct {
	clock TimeProvider
	queue taskHeap
	tasks map[TaskID]*scheduledTask

	nextID  TaskID
	nextSeq uint64

	// Due time of the task currently executing; anchors tasks scheduled from inside a task
	running   bool
	runningAt time.Time
}

// NewScheduler creates an empty scheduler reading time from clock
func NewScheduler(clock TimeProvider) *Scheduler {
	return &Scheduler{
		clock: clock,
		tasks: make(map[TaskID]*scheduledTask),
	}
}

// Now returns the scheduler's notion of current time
// Inside a running task this is the task's due time
func (s *Scheduler) Now() time.Time {
	if s.running {
		return s.runningAt
	}
	return s.clock.Now()
}

// After schedules fn to run once, d after now
func (s *Scheduler) After(d time.Duration, fn Task) TaskID {
	return s.schedule(s.Now().Add(d), 0, fn)
}

// Every schedules fn to run every interval, first run one interval from now
// Non-positive intervals are treated as one nanosecond to keep RunDue finite
func (s *Scheduler) Every(interval time.Duration, fn Task) TaskID {
	if interval <= 0 {
		interval = time.Nanosecond
	}
	return s.schedule(s.Now().Add(interval), interval, fn)
}

func (s *Scheduler) schedule(due time.Time, interval time.Duration, fn Task) TaskID {
	s.nextID++
	s.nextSeq++
	t := &scheduledTask{
		id:       s.nextID,
		seq:      s.nextSeq,
		due:      due,
		interval: interval,
		fn:       fn,
	}
	s.tasks[t.id] = t
	heap.Push(&s.queue, t)
	return t.id
}

// Cancel removes a task; returns false if it already ran (one-shot) or was cancelled
// Safe to call from inside the task being cancelled
func (s *Scheduler) Cancel(id TaskID) bool {
	t, ok := s.tasks[id]
	if !ok {
		return false
	}
	delete(s.tasks, id)
	if t.index >= 0 {
		heap.Remove(&s.queue, t.index)
	}
	return true
}

// Active reports whether id is still scheduled
func (s *Scheduler) Active(id TaskID) bool {
	_, ok := s.tasks[id]
	return ok
}

// Pending returns the number of scheduled tasks
func (s *Scheduler) Pending() int {
	return len(s.tasks)
}

// NextDue returns the due time of the earliest task
func (s *Scheduler) NextDue() (time.Time, bool) {
	if len(s.queue) == 0 {
		return time.Time{}, false
	}
	return s.queue[0].due, true
}

// RunDue executes every task due at or before now and returns how many ran
// Repeating tasks are re-armed at due+interval, so missed ticks all execute
func (s *Scheduler) RunDue(now time.Time) int {
	ran := 0
	for len(s.queue) > 0 && !s.queue[0].due.After(now) {
		t := heap.Pop(&s.queue).(*scheduledTask)

		if t.interval == 0 {
			delete(s.tasks, t.id)
		}

		s.running = true
		s.runningAt = t.due
		t.fn(t.due)
		s.running = false
		ran++

		// Re-arm unless the task cancelled itself while running
		if t.interval > 0 {
			if _, alive := s.tasks[t.id]; alive {
				t.due = t.due.Add(t.interval)
				s.nextSeq++
				t.seq = s.nextSeq
				heap.Push(&s.queue, t)
			}
		}
	}
	return ran
}

// Clear cancels every task
func (s *Scheduler) Clear() {
	s.queue = nil
	clear(s.tasks)
}
