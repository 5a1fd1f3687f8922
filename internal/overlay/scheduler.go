package overlay

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/muurk/focusguide/internal/locator"
)

// scheduledMsg fires a callback registered with a TeaScheduler.
type scheduledMsg struct {
	owner *TeaScheduler
	id    uint64
}

// TeaScheduler implements locator.Scheduler on top of Bubble Tea commands.
// Registered callbacks are queued as commands; drain them with Cmd and feed
// every message back through Handle.
type TeaScheduler struct {
	next  uint64
	tasks map[uint64]func()
	cmds  []tea.Cmd
}

// NewTeaScheduler creates an empty scheduler.
func NewTeaScheduler() *TeaScheduler {
	return &TeaScheduler{tasks: make(map[uint64]func())}
}

func (s *TeaScheduler) add(fn func()) (uint64, locator.Cancel) {
	s.next++
	id := s.next
	s.tasks[id] = fn
	return id, func() { delete(s.tasks, id) }
}

// AfterIdle implements locator.Scheduler. The callback runs once the current
// update has finished and the frame has been rendered.
func (s *TeaScheduler) AfterIdle(fn func()) locator.Cancel {
	id, cancel := s.add(fn)
	s.cmds = append(s.cmds, func() tea.Msg {
		return scheduledMsg{owner: s, id: id}
	})
	return cancel
}

// AfterFunc implements locator.Scheduler.
func (s *TeaScheduler) AfterFunc(d time.Duration, fn func()) locator.Cancel {
	id, cancel := s.add(fn)
	s.cmds = append(s.cmds, tea.Tick(d, func(time.Time) tea.Msg {
		return scheduledMsg{owner: s, id: id}
	}))
	return cancel
}

// Cmd returns the commands queued since the last call.
func (s *TeaScheduler) Cmd() tea.Cmd {
	if len(s.cmds) == 0 {
		return nil
	}
	cmds := s.cmds
	s.cmds = nil
	return tea.Batch(cmds...)
}

// Handle runs the callback carried by msg. It reports whether msg belonged
// to this scheduler; messages for cancelled callbacks are consumed silently.
func (s *TeaScheduler) Handle(msg tea.Msg) bool {
	m, ok := msg.(scheduledMsg)
	if !ok || m.owner != s {
		return false
	}
	fn, ok := s.tasks[m.id]
	if !ok {
		return true
	}
	delete(s.tasks, m.id)
	fn()
	return true
}

// Pending returns the number of callbacks that have not fired or been
// cancelled.
func (s *TeaScheduler) Pending() int {
	return len(s.tasks)
}

// CancelAll drops every pending callback and queued command.
func (s *TeaScheduler) CancelAll() {
	for id := range s.tasks {
		delete(s.tasks, id)
	}
	s.cmds = nil
}
