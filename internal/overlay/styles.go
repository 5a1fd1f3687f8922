package overlay

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/focusguide/internal/ui"
)

// Styles controls how a frame is drawn.
type Styles struct {
	Dim     lipgloss.Style // Bands around the hole
	Hole    lipgloss.Style // Target left visible through the hole
	Tooltip lipgloss.Style // Tooltip cells, border included
	Box     lipgloss.Style // Frame the content is laid out in; width is set per session
}

// DefaultStyles returns the standard overlay styles.
func DefaultStyles() Styles {
	return Styles{
		Dim: lipgloss.NewStyle().
			Foreground(ui.DimColor).
			Faint(true),
		Hole: lipgloss.NewStyle().
			Foreground(ui.TextColor).
			Bold(true),
		Tooltip: lipgloss.NewStyle().
			Foreground(ui.TextColor).
			Background(ui.TooltipBackground),
		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1),
	}
}
