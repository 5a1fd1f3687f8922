package overlay

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/muurk/focusguide/internal/geometry"
	"github.com/muurk/focusguide/internal/locator"
	"github.com/muurk/focusguide/internal/placement"
)

var screen = geometry.Size{Width: 60, Height: 20}

func newTestSession(reg *Registry, closes *int, opts Options) *Session {
	if opts.Target == "" {
		opts.Target = "item"
	}
	if opts.Content == "" {
		opts.Content = "Hello there"
	}
	opts.OnRequestClose = func() { *closes++ }
	return NewSession(opts, reg, screen)
}

func TestSessionPlacesTooltip(t *testing.T) {
	reg := NewRegistry()
	rect := geometry.NewRect(10, 5, 12, 3)
	reg.Set("item", rect)
	closes := 0

	s := newTestSession(reg, &closes, Options{Position: placement.BottomLeft})
	closed := pump(s, s.Init())

	if len(closed) != 0 || closes != 0 {
		t.Fatalf("session closed unexpectedly: %v", closed)
	}
	if s.State() != StatePlaced {
		t.Fatalf("State() = %v, want placed", s.State())
	}

	size, ok := s.TooltipSize()
	if !ok {
		t.Fatal("tooltip size should be known")
	}
	want := placement.Place(rect, &size, placement.BottomLeft,
		placement.Config{Metrics: placement.CellMetrics}, screen)
	if got := s.Placement(); got != want {
		t.Errorf("Placement() = %+v, want %+v", got, want)
	}
	if !s.Placement().Visible() {
		t.Error("placement should be visible")
	}

	view := ansi.Strip(s.View(strings.Repeat(strings.Repeat(".", 60)+"\n", 20)))
	if !strings.Contains(view, "Hello there") {
		t.Errorf("View() missing tooltip content:\n%s", view)
	}
}

func TestSessionDefaultsPosition(t *testing.T) {
	s := NewSession(Options{Target: "x"}, NewRegistry(), screen)
	if s.opts.Position != placement.Bottom {
		t.Errorf("Position = %q, want bottom", s.opts.Position)
	}
	if s.opts.Metrics != placement.CellMetrics {
		t.Errorf("Metrics = %+v, want CellMetrics", s.opts.Metrics)
	}
}

func TestSessionSizeBeforeRect(t *testing.T) {
	reg := NewRegistry()
	closes := 0
	s := newTestSession(reg, &closes, Options{})

	msgs := runCmd(s.Init())
	var idle, layout tea.Msg
	for _, msg := range msgs {
		switch msg.(type) {
		case scheduledMsg:
			idle = msg
		case layoutMsg:
			layout = msg
		}
	}
	if idle == nil || layout == nil {
		t.Fatalf("Init() messages = %v, want idle and layout", msgs)
	}

	// The layout arrives first; the target is not mounted yet.
	var cmd tea.Cmd
	s, cmd = s.Update(layout)
	if s.State() != StateLocating {
		t.Fatalf("State() = %v after layout, want locating", s.State())
	}
	s, cmd = s.Update(idle)
	if s.State() != StateLocating {
		t.Fatalf("State() = %v after pending measurement, want locating", s.State())
	}
	if s.Placement().Visible() {
		t.Fatal("placement should stay invisible without a rect")
	}

	reg.Set("item", geometry.NewRect(5, 5, 10, 2))
	pump(s, cmd)

	if s.State() != StatePlaced {
		t.Errorf("State() = %v, want placed", s.State())
	}
	if !s.Placement().Visible() {
		t.Error("placement should be visible once rect and size are known")
	}
}

func TestSessionRectBeforeSizeIsInvisible(t *testing.T) {
	reg := NewRegistry()
	reg.Set("item", geometry.NewRect(5, 5, 10, 2))
	closes := 0
	s := newTestSession(reg, &closes, Options{})

	for _, msg := range runCmd(s.Init()) {
		if _, ok := msg.(scheduledMsg); ok {
			s, _ = s.Update(msg)
		}
	}

	if s.State() != StateMeasured {
		t.Fatalf("State() = %v, want measured", s.State())
	}
	if s.Placement().Opacity != 0 {
		t.Errorf("Opacity = %v, want 0 before the tooltip is measured", s.Placement().Opacity)
	}

	view := ansi.Strip(s.View("background"))
	if strings.Contains(view, "Hello there") {
		t.Error("tooltip should not be drawn before it is measured")
	}
}

func TestSessionLocateFailureClosesOnce(t *testing.T) {
	reg := NewRegistry()
	closes := 0
	s := newTestSession(reg, &closes, Options{Target: "ghost"})

	closed := pump(s, s.Init())

	if closes != 1 {
		t.Errorf("OnRequestClose called %d times, want 1", closes)
	}
	if len(closed) != 1 {
		t.Fatalf("got %d ClosedMsg, want 1", len(closed))
	}
	if closed[0].Reason != CloseLocateFailed {
		t.Errorf("Reason = %v, want locate_failed", closed[0].Reason)
	}
	if !errors.Is(closed[0].Err, locator.ErrTargetUnresolvable) {
		t.Errorf("Err = %v, want ErrTargetUnresolvable", closed[0].Err)
	}
	if s.State() != StateDismissed {
		t.Errorf("State() = %v, want dismissed", s.State())
	}
	if s.View("bg") != "bg" {
		t.Error("dismissed session should render the background untouched")
	}
}

func TestSessionInvalidRectClosesOnce(t *testing.T) {
	reg := NewRegistry()
	reg.Set("item", geometry.Rect{})
	closes := 0
	s := newTestSession(reg, &closes, Options{})

	closed := pump(s, s.Init())

	if closes != 1 || len(closed) != 1 {
		t.Fatalf("closes = %d, ClosedMsg = %d, want 1 and 1", closes, len(closed))
	}
	if !errors.Is(s.Err(), locator.ErrInvalidRect) {
		t.Errorf("Err() = %v, want ErrInvalidRect", s.Err())
	}
}

func TestSessionDismissKey(t *testing.T) {
	reg := NewRegistry()
	reg.Set("item", geometry.NewRect(5, 5, 10, 2))
	closes := 0
	s := newTestSession(reg, &closes, Options{})
	pump(s, s.Init())

	_, cmd := s.Update(tea.KeyMsg{Type: tea.KeyEsc})
	msgs := runCmd(cmd)
	if closes != 1 {
		t.Fatalf("OnRequestClose called %d times, want 1", closes)
	}
	if len(msgs) != 1 {
		t.Fatalf("got %d messages, want 1 ClosedMsg", len(msgs))
	}
	if c, ok := msgs[0].(ClosedMsg); !ok || c.Reason != CloseDismissed {
		t.Errorf("message = %#v, want ClosedMsg{Reason: dismissed}", msgs[0])
	}

	_, cmd = s.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if closes != 1 || len(runCmd(cmd)) != 0 {
		t.Errorf("second dismissal should be ignored, closes = %d", closes)
	}
}

func TestClosedMsgFrom(t *testing.T) {
	reg := NewRegistry()
	reg.Set("item", geometry.NewRect(5, 5, 10, 2))
	closes := 0
	s := newTestSession(reg, &closes, Options{})
	other := newTestSession(reg, &closes, Options{})
	pump(s, s.Init())

	_, cmd := s.Update(tea.KeyMsg{Type: tea.KeyEsc})
	msgs := runCmd(cmd)
	if len(msgs) != 1 {
		t.Fatalf("got %d messages, want 1", len(msgs))
	}
	c := msgs[0].(ClosedMsg)
	if !c.From(s) {
		t.Error("From(emitter) = false, want true")
	}
	if c.From(other) || c.From(nil) {
		t.Error("From should only match the emitting session")
	}
	if (ClosedMsg{Target: "item"}).From(s) {
		t.Error("a hand-built ClosedMsg should not match a session")
	}
}

func TestSessionIgnoresOtherKeys(t *testing.T) {
	reg := NewRegistry()
	reg.Set("item", geometry.NewRect(5, 5, 10, 2))
	closes := 0
	s := newTestSession(reg, &closes, Options{})
	pump(s, s.Init())

	s.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	if closes != 0 || s.State() != StatePlaced {
		t.Errorf("unrelated key closed the session (closes = %d, state = %v)", closes, s.State())
	}
}

func TestSessionMousePressDismisses(t *testing.T) {
	reg := NewRegistry()
	reg.Set("item", geometry.NewRect(5, 5, 10, 2))
	closes := 0
	s := newTestSession(reg, &closes, Options{})
	pump(s, s.Init())

	s.Update(tea.MouseMsg{X: 1, Y: 1, Action: tea.MouseActionMotion, Button: tea.MouseButtonNone})
	if closes != 0 {
		t.Fatal("mouse motion should not dismiss")
	}
	s.Update(tea.MouseMsg{X: 1, Y: 1, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if closes != 1 {
		t.Errorf("OnRequestClose called %d times, want 1", closes)
	}
}

func TestSessionCloseCancelsPendingWork(t *testing.T) {
	reg := NewRegistry()
	closes := 0
	s := newTestSession(reg, &closes, Options{})

	cmd := s.Init()
	s.Close()

	reg.Set("item", geometry.NewRect(5, 5, 10, 2))
	closed := pump(s, cmd)

	if closes != 0 || len(closed) != 0 {
		t.Errorf("teardown must not invoke close (closes = %d, msgs = %d)", closes, len(closed))
	}
	if _, ok := s.Rect(); ok {
		t.Error("no rect should be published after teardown")
	}
	if s.scheduler.Pending() != 0 {
		t.Errorf("Pending() = %d, want 0", s.scheduler.Pending())
	}
}

func TestSessionCloseDuringRetry(t *testing.T) {
	reg := NewRegistry()
	closes := 0
	s := newTestSession(reg, &closes, Options{})

	var retry tea.Cmd
	for _, msg := range runCmd(s.Init()) {
		if _, ok := msg.(scheduledMsg); ok {
			s, retry = s.Update(msg)
		}
	}
	if s.scheduler.Pending() != 1 {
		t.Fatalf("Pending() = %d, want one retry", s.scheduler.Pending())
	}

	s.Close()
	reg.Set("item", geometry.NewRect(5, 5, 10, 2))
	pump(s, retry)

	if s.State() != StateDismissed {
		t.Errorf("State() = %v, want dismissed", s.State())
	}
	if _, ok := s.Rect(); ok {
		t.Error("retry fired after teardown")
	}
}

func TestSessionPlatformOffset(t *testing.T) {
	reg := NewRegistry()
	reg.Set("item", geometry.NewRect(5, 5, 10, 2))
	closes := 0
	s := newTestSession(reg, &closes, Options{PlatformOffsetY: 2})
	pump(s, s.Init())

	rect, ok := s.Rect()
	if !ok || rect.Y != 7 {
		t.Errorf("Rect() = %v, want Y shifted to 7", rect)
	}
}

func TestSessionWindowResizeReplaces(t *testing.T) {
	reg := NewRegistry()
	reg.Set("item", geometry.NewRect(40, 5, 10, 2))
	closes := 0
	s := newTestSession(reg, &closes, Options{Position: placement.Right})
	pump(s, s.Init())
	before := s.Placement()

	s, cmd := s.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	pump(s, cmd)

	after := s.Placement()
	if after.MaxWidth != 108 {
		t.Errorf("MaxWidth = %v, want 108", after.MaxWidth)
	}
	if after.Left <= before.Left {
		t.Errorf("Left = %v, want beyond %v once the screen is wider", after.Left, before.Left)
	}
}
