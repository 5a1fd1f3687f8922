package demo

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/muurk/focusguide/internal/config"
	"github.com/muurk/focusguide/internal/geometry"
	"github.com/muurk/focusguide/internal/locator"
	"github.com/muurk/focusguide/internal/logging"
	"github.com/muurk/focusguide/internal/overlay"
)

// Options configures the demo model.
type Options struct {
	Tour      *config.Tour // Played with the tour key; defaults to config.DefaultTour
	AutoStart bool         // Start the tour once the screen size is known
}

// Model is the top-level demo model. It draws the sections, tracks where
// every item lands on screen and runs one highlight session at a time.
type Model struct {
	sections []Section
	items    []Item
	cursor   int

	width  int
	height int
	scroll int
	layout Layout

	registry    *overlay.Registry
	session     *overlay.Session
	sessionOpts overlay.Options

	tour      *config.Tour
	step      int // Index of the running tour step, -1 when no tour runs
	autoStart bool
	status    string

	help help.Model
	keys browseKeyMap
}

// NewModel creates the demo model.
func NewModel(opts Options) Model {
	tour := opts.Tour
	if tour == nil {
		tour = config.DefaultTour()
	}
	sections := Sections()
	return Model{
		sections:  sections,
		items:     flatten(sections),
		registry:  overlay.NewRegistry(),
		tour:      tour,
		step:      -1,
		autoStart: opts.AutoStart,
		help:      help.New(),
		keys:      newBrowseKeyMap(),
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.relayout()
		if m.session != nil && m.session.State() != overlay.StateDismissed {
			// Targets moved; locate again on the new layout.
			cmd := m.reopen()
			return m, cmd
		}
		if m.autoStart {
			m.autoStart = false
			return m.startTour()
		}
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.session != nil {
			return m.forward(msg)
		}
		return m.handleBrowseKey(msg)

	case tea.MouseMsg:
		if m.session != nil {
			return m.forward(msg)
		}
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			if i, ok := m.itemAt(float64(msg.X), float64(msg.Y)); ok {
				m.cursor = i
				m.relayout()
				return m.openItem(i)
			}
		}
		return m, nil

	case overlay.ClosedMsg:
		return m.onClosed(msg)

	case TourLoadedMsg:
		m.tour = msg.Tour
		m.status = fmt.Sprintf("Tour reloaded: %d steps", len(msg.Tour.Steps))
		return m, nil

	case TourErrorMsg:
		m.status = "Tour not reloaded: " + msg.Err.Error()
		return m, nil
	}

	if m.session != nil {
		return m.forward(msg)
	}
	return m, nil
}

func (m Model) forward(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.session, cmd = m.session.Update(msg)
	return m, cmd
}

func (m Model) handleBrowseKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Section):
		m.cursor = m.nextSection()

	case key.Matches(msg, m.keys.Select):
		return m.openItem(m.cursor)

	case key.Matches(msg, m.keys.Tour):
		return m.startTour()

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}

	m.status = ""
	m.relayout()
	return m, nil
}

func (m Model) nextSection() int {
	cur := m.items[m.cursor].Section
	for i := m.cursor + 1; i < len(m.items); i++ {
		if m.items[i].Section != cur {
			return i
		}
	}
	return 0
}

func (m Model) itemAt(x, y float64) (int, bool) {
	p := geometry.Point{X: x, Y: y}
	for i, it := range m.items {
		if r, ok := m.registry.Lookup(it.Handle); ok && r.Contains(p) {
			return i, true
		}
	}
	return 0, false
}

func (m Model) openItem(i int) (tea.Model, tea.Cmd) {
	it := m.items[i]
	a, overlap := PositionFor(it.Index), OverlapFor(it.Index)
	m.status = ""
	return m.open(overlay.Options{
		Target:       it.Handle,
		Content:      TooltipContent(it, a, overlap),
		Position:     a,
		AllowOverlap: overlap,
	})
}

func (m Model) startTour() (tea.Model, tea.Cmd) {
	if m.tour == nil || len(m.tour.Steps) == 0 {
		m.status = "No tour loaded"
		return m, nil
	}
	m.step = 0
	logging.Info("Tour started", zap.String("name", m.tour.Name), zap.Int("steps", len(m.tour.Steps)))
	return m.openStep()
}

func (m Model) openStep() (tea.Model, tea.Cmd) {
	s := m.tour.Steps[m.step]
	target := locator.Handle(s.Target)

	// Bring the target into view; unknown targets are left to fail locating.
	for i, it := range m.items {
		if it.Handle == target {
			m.cursor = i
			break
		}
	}
	m.relayout()
	m.status = fmt.Sprintf("Tour step %d/%d", m.step+1, len(m.tour.Steps))

	return m.open(overlay.Options{
		Target:          target,
		Content:         s.Content,
		Position:        s.Anchor(),
		AllowOverlap:    s.Overlap(),
		Offset:          s.OffsetPoint(),
		PlatformOffsetY: s.OffsetY(),
	})
}

func (m Model) open(opts overlay.Options) (tea.Model, tea.Cmd) {
	target := opts.Target
	opts.OnRequestClose = func() {
		logging.Debug("Highlight close requested", zap.String("target", string(target)))
	}
	m.sessionOpts = opts
	m.session = overlay.NewSession(opts, m.registry, m.screen())
	return m, m.session.Init()
}

// reopen restarts the current session against the current layout.
func (m *Model) reopen() tea.Cmd {
	m.session.Close()
	m.session = overlay.NewSession(m.sessionOpts, m.registry, m.screen())
	return m.session.Init()
}

func (m Model) onClosed(msg overlay.ClosedMsg) (tea.Model, tea.Cmd) {
	// Sessions replaced by a reopen never emit; anything else is stale.
	if !msg.From(m.session) {
		return m, nil
	}
	m.session = nil

	if msg.Reason == overlay.CloseLocateFailed {
		m.status = fmt.Sprintf("Could not locate %q", string(msg.Target))
	}

	if m.step < 0 {
		return m, nil
	}
	m.step++
	if m.step >= len(m.tour.Steps) {
		m.step = -1
		if msg.Reason != overlay.CloseLocateFailed {
			m.status = "Tour finished"
		}
		logging.Info("Tour finished", zap.String("name", m.tour.Name))
		return m, nil
	}
	return m.openStep()
}

func (m Model) screen() geometry.Size {
	return geometry.Size{Width: float64(m.width), Height: float64(m.height)}
}

func (m Model) selected() locator.Handle {
	if len(m.items) == 0 {
		return ""
	}
	return m.items[m.cursor].Handle
}

func (m Model) viewHeight() int {
	h := m.height - headerHeight - lipgloss.Height(m.footer())
	if h < 1 {
		return 1
	}
	return h
}

// relayout rebuilds the content, scrolls the selection into view and
// records the on-screen rectangle of every fully visible item. Items
// scrolled out of view are not registered and measure as pending.
func (m *Model) relayout() {
	m.layout = BuildLayout(m.sections, m.width, m.selected())

	viewH := m.viewHeight()
	if r, ok := m.layout.Rects[m.selected()]; ok {
		top, bottom := int(r.Y), int(r.Bottom())
		if top-2 < m.scroll {
			// Keep the section title visible with its first item.
			m.scroll = top - 2
		}
		if bottom > m.scroll+viewH {
			m.scroll = bottom - viewH
		}
	}
	if maxScroll := m.layout.Height() - viewH; m.scroll > maxScroll {
		m.scroll = maxScroll
	}
	if m.scroll < 0 {
		m.scroll = 0
	}

	m.registry.Reset()
	for h, r := range m.layout.Rects {
		if int(r.Y) < m.scroll || int(r.Bottom()) > m.scroll+viewH {
			continue
		}
		m.registry.Set(h, r.Translate(0, float64(headerHeight-m.scroll)))
	}
}

func (m Model) footer() string {
	status := StatusStyle.Render(m.status)
	var help string
	if m.session != nil {
		help = m.help.View(m.session.Keys())
	} else {
		help = m.help.View(m.keys)
	}
	return status + "\n" + HelpStyle.Render(help)
}

// View implements tea.Model
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	lines := []string{
		TitleStyle.Render(AppName),
		SubtitleStyle.Render("Select an element to highlight it"),
		"",
	}

	viewH := m.viewHeight()
	for i := 0; i < viewH; i++ {
		if y := m.scroll + i; y < m.layout.Height() {
			lines = append(lines, m.layout.Lines[y])
		} else {
			lines = append(lines, "")
		}
	}

	background := strings.Join(append(lines, m.footer()), "\n")
	if m.session != nil {
		return m.session.View(background)
	}
	return background
}

// Session returns the running highlight session, if any.
func (m Model) Session() *overlay.Session {
	return m.session
}

// Status returns the status line text.
func (m Model) Status() string {
	return m.status
}

// Selected returns the handle under the cursor.
func (m Model) Selected() locator.Handle {
	return m.selected()
}
