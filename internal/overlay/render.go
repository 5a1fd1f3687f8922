package overlay

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"

	"github.com/muurk/focusguide/internal/geometry"
)

// Bands returns the four dimmed rectangles (top, left, right, bottom) that
// frame hole on a screen of the given size.
func Bands(hole geometry.Rect, screen geometry.Size) [4]geometry.Rect {
	return [4]geometry.Rect{
		geometry.NewRect(0, 0, screen.Width, hole.Y),
		geometry.NewRect(0, hole.Y, hole.X, hole.Height),
		geometry.NewRect(hole.Right(), hole.Y, screen.Width-hole.Right(), hole.Height),
		geometry.NewRect(0, hole.Bottom(), screen.Width, screen.Height-hole.Bottom()),
	}
}

// Frame is everything needed to draw one overlay frame.
type Frame struct {
	Screen     geometry.Size
	Hole       geometry.Rect
	Tooltip    string // Rendered tooltip box; styling is discarded
	TooltipAt  geometry.Point
	ShowTip    bool
	Background string
}

type cellKind uint8

const (
	cellDim cellKind = iota
	cellHole
	cellTip
)

// grid is a row of terminal cells. text[i] holds what is drawn in column i;
// a wide rune sits in its first column and leaves "" in the second.
type grid struct {
	text  []string
	width []int
}

func newRow(line string, cols int) grid {
	g := grid{text: make([]string, cols), width: make([]int, cols)}
	col := 0
	for _, r := range ansi.Strip(line) {
		if col >= cols {
			break
		}
		w := runewidth.RuneWidth(r)
		switch {
		case r == '\t':
			r, w = ' ', 1
		case w == 0:
			if col > 0 {
				g.text[col-1] += string(r)
			}
			continue
		}
		if col+w > cols {
			break
		}
		g.text[col] = string(r)
		g.width[col] = w
		if w == 2 {
			g.text[col+1] = ""
			g.width[col+1] = 0
		}
		col += w
	}
	for ; col < cols; col++ {
		g.text[col] = " "
		g.width[col] = 1
	}
	return g
}

func round(v float64) int {
	return int(math.Round(v))
}

// cellSpan converts a float range to clipped integer columns [from, to).
func cellSpan(start, length float64, limit int) (int, int) {
	from := round(start)
	to := round(start + length)
	if from < 0 {
		from = 0
	}
	if to > limit {
		to = limit
	}
	return from, to
}

// Compose draws f using st. Background lines beyond the screen are cut and
// missing lines are padded with blanks.
func Compose(f Frame, st Styles) string {
	cols, rows := round(f.Screen.Width), round(f.Screen.Height)
	if cols <= 0 || rows <= 0 {
		return ""
	}

	bg := strings.Split(f.Background, "\n")
	holeTop, holeBottom := cellSpan(f.Hole.Y, f.Hole.Height, rows)
	holeLeft, holeRight := cellSpan(f.Hole.X, f.Hole.Width, cols)

	var tip []string
	tipX, tipY := round(f.TooltipAt.X), round(f.TooltipAt.Y)
	if f.ShowTip && f.Tooltip != "" {
		tip = strings.Split(f.Tooltip, "\n")
	}

	out := make([]string, rows)
	kinds := make([]cellKind, cols)
	for y := 0; y < rows; y++ {
		line := ""
		if y < len(bg) {
			line = bg[y]
		}
		row := newRow(line, cols)

		for x := range kinds {
			kinds[x] = cellDim
		}
		if y >= holeTop && y < holeBottom {
			for x := holeLeft; x < holeRight; x++ {
				kinds[x] = cellHole
			}
		}

		if ty := y - tipY; ty >= 0 && ty < len(tip) {
			tipRow := newRow(tip[ty], lipgloss.Width(tip[ty]))
			for i := range tipRow.text {
				x := tipX + i
				if x < 0 || x >= cols {
					continue
				}
				row.text[x] = tipRow.text[i]
				row.width[x] = tipRow.width[i]
				kinds[x] = cellTip
			}
		}

		out[y] = renderRow(row, kinds, st)
	}

	return strings.Join(out, "\n")
}

// renderRow groups columns into runs of one kind and styles each run.
// Wide runes split across a run boundary are replaced with spaces.
func renderRow(row grid, kinds []cellKind, st Styles) string {
	cols := len(kinds)
	for x := 0; x < cols; x++ {
		if row.width[x] == 0 && (x == 0 || kinds[x-1] != kinds[x] || row.width[x-1] != 2) {
			row.text[x] = " "
			row.width[x] = 1
		}
		if row.width[x] == 2 && (x+1 >= cols || kinds[x+1] != kinds[x] || row.width[x+1] != 0) {
			row.text[x] = " "
			row.width[x] = 1
		}
	}

	var b strings.Builder
	start := 0
	for x := 1; x <= cols; x++ {
		if x < cols && kinds[x] == kinds[start] {
			continue
		}
		run := strings.Join(row.text[start:x], "")
		switch kinds[start] {
		case cellHole:
			b.WriteString(st.Hole.Render(run))
		case cellTip:
			b.WriteString(st.Tooltip.Render(run))
		default:
			b.WriteString(st.Dim.Render(run))
		}
		start = x
	}
	return b.String()
}

// LayoutTooltip renders content inside the tooltip box, wrapped so the box
// is no wider than maxWidth cells, and returns it with its size.
func LayoutTooltip(content string, maxWidth int, box lipgloss.Style) (string, geometry.Size) {
	natural := lipgloss.Width(content) + box.GetHorizontalPadding()

	width := natural
	if limit := maxWidth - box.GetHorizontalBorderSize(); width > limit {
		width = limit
	}
	if minimum := box.GetHorizontalPadding() + 1; width < minimum {
		width = minimum
	}

	rendered := box.Width(width).Render(content)
	return rendered, geometry.Size{
		Width:  float64(lipgloss.Width(rendered)),
		Height: float64(lipgloss.Height(rendered)),
	}
}
