package demo

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/focusguide/internal/ui"
)

// AppName is shown in the demo header
const AppName = "FOCUSGUIDE DEMO"

// Layout constants
const (
	marginX       = 2  // Left and right margin of the content
	itemGap       = 2  // Columns between items on one row
	minWidth      = 30 // Narrowest layout width
	maxRowWidth   = 44 // Widest list row
	minTileWidth  = 14 // Narrowest grid tile
	tileColumns   = 3  // Grid tiles per row
	headerHeight  = 3  // Title, subtitle, blank line
	footerHeight  = 2  // Status and help lines
	buttonPadding = 4  // Horizontal padding of the approve and reject buttons
)

var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(ui.PrimaryColor).
			Bold(true).
			PaddingLeft(marginX)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ui.MutedColor).
			Italic(true).
			PaddingLeft(marginX)

	SectionTitleStyle = lipgloss.NewStyle().
				Foreground(ui.TextColor).
				Bold(true).
				Underline(true)

	StatusStyle = lipgloss.NewStyle().
			Foreground(ui.WarningColor).
			PaddingLeft(marginX)

	HelpStyle = lipgloss.NewStyle().
			PaddingLeft(marginX)
)

func borderColor(selected bool) lipgloss.Color {
	if selected {
		return ui.PrimaryColor
	}
	return ui.MutedColor
}

// renderItem draws one item. avail is the content width of the screen.
func renderItem(it Item, selected bool, avail int) string {
	bordered := func(b lipgloss.Border) lipgloss.Style {
		return lipgloss.NewStyle().
			Border(b).
			BorderForeground(borderColor(selected)).
			Foreground(ui.TextColor).
			Bold(selected)
	}
	filled := func(bg lipgloss.Color) lipgloss.Style {
		return lipgloss.NewStyle().
			Foreground(ui.TextColor).
			Background(bg).
			Bold(true).
			Underline(selected)
	}

	switch it.Shape {
	case ShapeRow:
		width := avail
		if width > maxRowWidth {
			width = maxRowWidth
		}
		return bordered(lipgloss.NormalBorder()).Width(width-2).Padding(0, 1).Render(it.Label)
	case ShapeRectangle:
		return bordered(lipgloss.NormalBorder()).Padding(0, 2).Render(it.Label)
	case ShapeCircle:
		return bordered(lipgloss.RoundedBorder()).Padding(1, 3).Render(it.Label)
	case ShapeCard:
		return bordered(lipgloss.ThickBorder()).Padding(1, 3).Render(it.Label)
	case ShapeRounded:
		return bordered(lipgloss.RoundedBorder()).Padding(0, 2).Render(it.Label)
	case ShapeTile:
		return bordered(lipgloss.RoundedBorder()).
			Width(tileWidth(avail) - 2).
			Align(lipgloss.Center).
			Render(it.Label)
	case ShapeHeader:
		return filled(ui.PrimaryColor).Width(avail).Padding(0, 1).Render(it.Label)
	case ShapeApprove:
		return filled(ui.SuccessColor).Padding(1, buttonPadding).Render(it.Label)
	case ShapeReject:
		return filled(ui.ErrorColor).Padding(1, buttonPadding).Render(it.Label)
	default:
		return bordered(lipgloss.NormalBorder()).Render(it.Label)
	}
}

func tileWidth(avail int) int {
	w := (avail - (tileColumns-1)*itemGap) / tileColumns
	if w < minTileWidth {
		return minTileWidth
	}
	return w
}
