package carousel

import (
	"testing"
	"time"
)

// fakeClock is a manually advanced clock.
type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time          { return c.now }
func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func TestSchedulerRunsAfterDelay(t *testing.T) {
	clock := newFakeClock()
	s := NewScheduler(clock.Now)
	ran := 0
	task := s.Schedule(500*time.Millisecond, func() { ran++ })

	clock.Advance(499 * time.Millisecond)
	if n := s.Poll(); n != 0 || ran != 0 {
		t.Fatalf("task ran early (poll=%d ran=%d)", n, ran)
	}
	if !task.Pending() || s.Pending() != 1 {
		t.Error("task should still be pending")
	}

	clock.Advance(time.Millisecond)
	if n := s.Poll(); n != 1 || ran != 1 {
		t.Fatalf("expected task to run once at the deadline (poll=%d ran=%d)", n, ran)
	}
	if task.Pending() || s.Pending() != 0 {
		t.Error("task should be done")
	}

	clock.Advance(time.Second)
	if s.Poll(); ran != 1 {
		t.Errorf("task ran %d times, want 1", ran)
	}
}

func TestSchedulerCancel(t *testing.T) {
	clock := newFakeClock()
	s := NewScheduler(clock.Now)
	ran := false
	task := s.Schedule(time.Millisecond, func() { ran = true })

	if !task.Cancel() {
		t.Error("first cancel should report a pending task")
	}
	if task.Cancel() {
		t.Error("second cancel should report nothing to cancel")
	}

	clock.Advance(time.Second)
	s.Poll()
	if ran {
		t.Error("cancelled task must not run")
	}

	var nilTask *Task
	if nilTask.Cancel() || nilTask.Pending() {
		t.Error("nil task should be inert")
	}
}

func TestSchedulerOrder(t *testing.T) {
	clock := newFakeClock()
	s := NewScheduler(clock.Now)
	var order []string

	s.Schedule(200*time.Millisecond, func() { order = append(order, "late") })
	s.Schedule(100*time.Millisecond, func() { order = append(order, "early") })
	s.Schedule(200*time.Millisecond, func() { order = append(order, "late2") })

	clock.Advance(time.Second)
	s.Poll()

	want := []string{"early", "late", "late2"}
	if len(order) != len(want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("order = %v, want %v", order, want)
			break
		}
	}
}

func TestSchedulerCallbackCancelsSibling(t *testing.T) {
	clock := newFakeClock()
	s := NewScheduler(clock.Now)
	var second *Task
	ran := 0

	s.Schedule(10*time.Millisecond, func() { ran++; second.Cancel() })
	second = s.Schedule(20*time.Millisecond, func() { ran++ })

	clock.Advance(time.Second)
	if n := s.Poll(); n != 1 || ran != 1 {
		t.Errorf("expected only the first task to run, poll=%d ran=%d", n, ran)
	}
}

func TestSchedulerCallbackSchedules(t *testing.T) {
	clock := newFakeClock()
	s := NewScheduler(clock.Now)
	ran := 0
	s.Schedule(0, func() {
		s.Schedule(time.Second, func() { ran++ })
	})

	s.Poll()
	if s.Pending() != 1 {
		t.Fatalf("expected the nested task to be queued, pending=%d", s.Pending())
	}
	clock.Advance(time.Second)
	s.Poll()
	if ran != 1 {
		t.Errorf("nested task ran %d times, want 1", ran)
	}
}
