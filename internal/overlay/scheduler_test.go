package overlay

import (
	"testing"
	"time"
)

func TestTeaSchedulerIdleRoundTrip(t *testing.T) {
	s := NewTeaScheduler()
	ran := 0
	s.AfterIdle(func() { ran++ })

	msgs := runCmd(s.Cmd())
	if len(msgs) != 1 {
		t.Fatalf("got %d messages, want 1", len(msgs))
	}
	if !s.Handle(msgs[0]) {
		t.Fatal("Handle() = false for own message")
	}
	if ran != 1 {
		t.Errorf("callback ran %d times, want 1", ran)
	}

	// Redelivery is consumed without running the callback again.
	if !s.Handle(msgs[0]) || ran != 1 {
		t.Errorf("redelivered message ran callback, count = %d", ran)
	}
	if s.Pending() != 0 {
		t.Errorf("Pending() = %d, want 0", s.Pending())
	}
}

func TestTeaSchedulerCancel(t *testing.T) {
	s := NewTeaScheduler()
	ran := false
	cancel := s.AfterFunc(time.Millisecond, func() { ran = true })
	if s.Pending() != 1 {
		t.Fatalf("Pending() = %d, want 1", s.Pending())
	}
	cancel()

	for _, msg := range runCmd(s.Cmd()) {
		s.Handle(msg)
	}
	if ran {
		t.Error("cancelled callback ran")
	}
}

func TestTeaSchedulerIgnoresForeignMessages(t *testing.T) {
	a, b := NewTeaScheduler(), NewTeaScheduler()
	ran := false
	a.AfterIdle(func() { ran = true })

	msgs := runCmd(a.Cmd())
	if b.Handle(msgs[0]) {
		t.Error("scheduler handled a message it did not schedule")
	}
	if b.Handle("unrelated") {
		t.Error("scheduler handled an unrelated message")
	}
	if ran {
		t.Error("callback ran through the wrong scheduler")
	}
}

func TestTeaSchedulerCancelAll(t *testing.T) {
	s := NewTeaScheduler()
	s.AfterIdle(func() {})
	s.AfterFunc(time.Hour, func() {})
	s.CancelAll()

	if s.Pending() != 0 {
		t.Errorf("Pending() = %d, want 0", s.Pending())
	}
	if s.Cmd() != nil {
		t.Error("Cmd() should be nil after CancelAll")
	}
}
