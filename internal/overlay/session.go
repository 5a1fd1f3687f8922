package overlay

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/muurk/focusguide/internal/geometry"
	"github.com/muurk/focusguide/internal/locator"
	"github.com/muurk/focusguide/internal/logging"
	"github.com/muurk/focusguide/internal/placement"
)

// State is the lifecycle stage of a session
type State int

const (
	StateLocating  State = iota // Waiting for the target rectangle
	StateMeasured               // Rectangle known, tooltip size unknown
	StatePlaced                 // Rectangle and size known, tooltip visible
	StateDismissed              // Terminal
)

func (s State) String() string {
	switch s {
	case StateLocating:
		return "locating"
	case StateMeasured:
		return "measured"
	case StatePlaced:
		return "placed"
	case StateDismissed:
		return "dismissed"
	default:
		return fmt.Sprintf("State(%d)", s)
	}
}

// CloseReason tells the host why a session ended
type CloseReason int

const (
	CloseDismissed    CloseReason = iota // User dismissed the overlay
	CloseLocateFailed                    // Target could not be located
)

func (r CloseReason) String() string {
	switch r {
	case CloseDismissed:
		return "dismissed"
	case CloseLocateFailed:
		return "locate_failed"
	default:
		return fmt.Sprintf("CloseReason(%d)", r)
	}
}

// ClosedMsg is emitted once when a session requests to be closed.
type ClosedMsg struct {
	Target locator.Handle
	Reason CloseReason
	Err    error // Set for CloseLocateFailed

	session *Session
}

// From reports whether the message was emitted by s.
func (m ClosedMsg) From(s *Session) bool {
	return s != nil && m.session == s
}

// layoutMsg reports the size of the tooltip after it was laid out once.
type layoutMsg struct {
	session *Session
	box     string
	size    geometry.Size
}

// Options configures one highlight session.
type Options struct {
	Target          locator.Handle
	Content         string
	OnRequestClose  func()
	Position        placement.Anchor  // Defaults to placement.Bottom
	Offset          geometry.Point    // Added to the final position
	AllowOverlap    bool              // Let the tooltip touch the target
	PlatformOffsetY float64           // Added to the measured target Y
	Metrics         placement.Metrics // Defaults to placement.CellMetrics
	Styles          *Styles           // Defaults to DefaultStyles()
	Keys            *KeyMap           // Defaults to DefaultKeyMap()
}

// Session is one highlight of one target.
type Session struct {
	opts      Options
	styles    Styles
	keys      KeyMap
	screen    geometry.Size
	scheduler *TeaScheduler
	locator   *locator.Locator
	cancel    locator.Cancel

	state  State
	rect   *geometry.Rect
	size   *geometry.Size
	box    string
	result placement.Result
	err    error

	closed  bool
	pending []tea.Cmd
}

// NewSession creates a session for opts.Target measured through m on a
// screen of the given size. Nothing happens until Init is called.
func NewSession(opts Options, m locator.Measurer, screen geometry.Size) *Session {
	if opts.Position == "" {
		opts.Position = placement.DefaultAnchor
	}
	if opts.Metrics == (placement.Metrics{}) {
		opts.Metrics = placement.CellMetrics
	}

	styles := DefaultStyles()
	if opts.Styles != nil {
		styles = *opts.Styles
	}
	keys := DefaultKeyMap()
	if opts.Keys != nil {
		keys = *opts.Keys
	}

	sched := NewTeaScheduler()
	return &Session{
		opts:      opts,
		styles:    styles,
		keys:      keys,
		screen:    screen,
		scheduler: sched,
		locator: locator.New(m, sched, locator.Options{
			PlatformOffsetY: opts.PlatformOffsetY,
		}),
		state: StateLocating,
	}
}

// Init starts locating the target and laying out the tooltip.
func (s *Session) Init() tea.Cmd {
	logging.LogSessionEvent(string(s.opts.Target), "started")
	s.cancel = s.locator.Locate(s.opts.Target, s.onLocated)
	return tea.Batch(s.scheduler.Cmd(), s.layoutCmd())
}

// Update handles a message. Messages that do not concern the session are
// ignored, so hosts can forward everything.
func (s *Session) Update(msg tea.Msg) (*Session, tea.Cmd) {
	if s.state == StateDismissed {
		// Consume stale scheduler messages; the callbacks are already gone.
		s.scheduler.Handle(msg)
		return s, s.flush()
	}

	if s.scheduler.Handle(msg) {
		return s, s.flush()
	}

	switch msg := msg.(type) {
	case layoutMsg:
		if msg.session != s {
			return s, nil
		}
		s.onLayout(msg.box, msg.size)

	case tea.WindowSizeMsg:
		s.screen = geometry.Size{Width: float64(msg.Width), Height: float64(msg.Height)}
		s.place()
		// The width cap follows the screen, so the tooltip is laid out again.
		s.pending = append(s.pending, s.layoutCmd())

	case tea.KeyMsg:
		if key.Matches(msg, s.keys.Dismiss) {
			s.requestClose(CloseDismissed, nil)
		}

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && !tea.MouseEvent(msg).IsWheel() {
			s.requestClose(CloseDismissed, nil)
		}
	}

	return s, s.flush()
}

// View draws the overlay on top of background. Until the target has been
// located, and after the session ended, the background is returned as-is.
func (s *Session) View(background string) string {
	if s.rect == nil || s.state == StateDismissed {
		return background
	}
	return Compose(Frame{
		Screen:     s.screen,
		Hole:       *s.rect,
		Tooltip:    s.box,
		TooltipAt:  geometry.Point{X: s.result.Left, Y: s.result.Top},
		ShowTip:    s.result.Visible(),
		Background: background,
	}, s.styles)
}

// Close tears the session down without invoking OnRequestClose. Pending
// retries and layout notifications are dropped.
func (s *Session) Close() {
	if s.state == StateDismissed {
		return
	}
	s.teardown()
	logging.LogSessionEvent(string(s.opts.Target), "torn_down")
}

// State returns the lifecycle stage.
func (s *Session) State() State {
	return s.state
}

// Target returns the handle being highlighted.
func (s *Session) Target() locator.Handle {
	return s.opts.Target
}

// Rect returns the located target rectangle.
func (s *Session) Rect() (geometry.Rect, bool) {
	if s.rect == nil {
		return geometry.Rect{}, false
	}
	return *s.rect, true
}

// TooltipSize returns the measured tooltip size.
func (s *Session) TooltipSize() (geometry.Size, bool) {
	if s.size == nil {
		return geometry.Size{}, false
	}
	return *s.size, true
}

// Placement returns the current placement result.
func (s *Session) Placement() placement.Result {
	return s.result
}

// Err returns the locate error that ended the session, if any.
func (s *Session) Err() error {
	return s.err
}

// Keys returns the dismissal bindings, for help views.
func (s *Session) Keys() KeyMap {
	return s.keys
}

func (s *Session) maxWidth() int {
	res := placement.Place(geometry.Rect{}, nil, s.opts.Position, s.config(), s.screen)
	return int(res.MaxWidth)
}

// layoutCmd lays the tooltip out off screen and reports its size.
func (s *Session) layoutCmd() tea.Cmd {
	content := s.opts.Content
	width := s.maxWidth()
	box := s.styles.Box
	return func() tea.Msg {
		rendered, size := LayoutTooltip(content, width, box)
		return layoutMsg{session: s, box: rendered, size: size}
	}
}

func (s *Session) config() placement.Config {
	return placement.Config{
		Offset:       s.opts.Offset,
		AllowOverlap: s.opts.AllowOverlap,
		Metrics:      s.opts.Metrics,
	}
}

func (s *Session) onLocated(rect geometry.Rect, err error) {
	if err != nil {
		s.err = err
		s.requestClose(CloseLocateFailed, err)
		return
	}
	s.rect = &rect
	if s.state == StateLocating {
		s.state = StateMeasured
	}
	s.place()
}

func (s *Session) onLayout(box string, size geometry.Size) {
	s.box = box
	if s.size != nil && *s.size == size {
		return
	}
	s.size = &size
	s.place()
}

func (s *Session) place() {
	if s.rect == nil || s.state == StateDismissed {
		return
	}
	s.result = placement.Place(*s.rect, s.size, s.opts.Position, s.config(), s.screen)
	if s.size != nil {
		s.state = StatePlaced
		logging.LogPlacement(string(s.opts.Target), s.opts.Position.String(), s.result.Top, s.result.Left)
	}
}

func (s *Session) requestClose(reason CloseReason, err error) {
	if s.closed {
		return
	}
	s.closed = true
	s.teardown()
	logging.LogSessionEvent(string(s.opts.Target), reason.String())

	if s.opts.OnRequestClose != nil {
		s.opts.OnRequestClose()
	}

	closed := ClosedMsg{Target: s.opts.Target, Reason: reason, Err: err, session: s}
	s.pending = append(s.pending, func() tea.Msg { return closed })
}

func (s *Session) teardown() {
	s.closed = true
	s.state = StateDismissed
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.scheduler.CancelAll()
}

func (s *Session) flush() tea.Cmd {
	cmds := append(s.pending, s.scheduler.Cmd())
	s.pending = nil
	return tea.Batch(cmds...)
}
