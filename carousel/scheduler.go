package carousel

import (
	"sort"
	"time"
)

// Task is a deferred callback owned by a Scheduler.
type Task struct {
	due       time.Time
	seq       uint64
	fn        func()
	cancelled bool
	done      bool
}

// Cancel stops the task from running. Returns true if it was still pending.
func (t *Task) Cancel() bool {
	if t == nil || t.done || t.cancelled {
		return false
	}
	t.cancelled = true
	return true
}

// Pending reports whether the task has neither run nor been cancelled.
func (t *Task) Pending() bool {
	return t != nil && !t.done && !t.cancelled
}

// Scheduler runs deferred callbacks on the caller's thread.
// Nothing runs until Poll is called, so callbacks never race the frame loop.
type Scheduler struct {
	clock func() time.Time
	tasks []*Task
	seq   uint64
}

// NewScheduler creates a scheduler reading time from clock
// (time.Now if nil).
func NewScheduler(clock func() time.Time) *Scheduler {
	if clock == nil {
		clock = time.Now
	}
	return &Scheduler{clock: clock}
}

// Schedule queues fn to run once delay has passed.
func (s *Scheduler) Schedule(delay time.Duration, fn func()) *Task {
	s.seq++
	t := &Task{due: s.clock().Add(delay), seq: s.seq, fn: fn}
	s.tasks = append(s.tasks, t)
	return t
}

// Poll runs every due task in due-time order (ties in scheduling order)
// and returns how many ran.
func (s *Scheduler) Poll() int {
	now := s.clock()

	var due, keep []*Task
	for _, t := range s.tasks {
		switch {
		case t.cancelled:
		case !t.due.After(now):
			due = append(due, t)
		default:
			keep = append(keep, t)
		}
	}
	s.tasks = keep

	sort.Slice(due, func(i, j int) bool {
		if due[i].due.Equal(due[j].due) {
			return due[i].seq < due[j].seq
		}
		return due[i].due.Before(due[j].due)
	})

	ran := 0
	for _, t := range due {
		// A callback may cancel a later task in the same batch
		if t.cancelled {
			continue
		}
		t.done = true
		t.fn()
		ran++
	}
	return ran
}

// Pending returns the number of tasks waiting to run.
func (s *Scheduler) Pending() int {
	n := 0
	for _, t := range s.tasks {
		if t.Pending() {
			n++
		}
	}
	return n
}
