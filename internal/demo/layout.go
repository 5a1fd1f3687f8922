package demo

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/focusguide/internal/geometry"
	"github.com/muurk/focusguide/internal/locator"
)

// Layout is the scrollable demo content and where each item was drawn.
// Rectangles are in content coordinates, before scrolling.
type Layout struct {
	Lines []string
	Rects map[locator.Handle]geometry.Rect
}

// Height returns the number of content lines.
func (l Layout) Height() int {
	return len(l.Lines)
}

type builder struct {
	avail int
	lines []string
	rects map[locator.Handle]geometry.Rect
}

func (b *builder) add(block string) {
	pad := strings.Repeat(" ", marginX)
	for _, line := range strings.Split(block, "\n") {
		b.lines = append(b.lines, pad+line)
	}
}

func (b *builder) blank() {
	b.lines = append(b.lines, "")
}

// flow places boxes left to right and wraps onto a new row when the next
// box does not fit.
func (b *builder) flow(items []Item, boxes []string) {
	var row []string
	x := 0
	flush := func() {
		if len(row) == 0 {
			return
		}
		b.add(lipgloss.JoinHorizontal(lipgloss.Top, row...))
		row, x = nil, 0
	}

	for i, box := range boxes {
		w, h := lipgloss.Width(box), lipgloss.Height(box)
		if len(row) > 0 && x+itemGap+w > b.avail {
			flush()
			b.blank()
		}
		if len(row) > 0 {
			row = append(row, strings.Repeat(" ", itemGap))
			x += itemGap
		}
		// The row is written on flush, so its top is the current line count.
		b.rects[items[i].Handle] = geometry.NewRect(
			float64(marginX+x), float64(len(b.lines)), float64(w), float64(h))
		row = append(row, box)
		x += w
	}
	flush()
}

// BuildLayout lays the sections out for a screen width. The selected item is
// drawn highlighted.
func BuildLayout(sections []Section, width int, selected locator.Handle) Layout {
	if width < minWidth {
		width = minWidth
	}
	b := &builder{
		avail: width - 2*marginX,
		rects: make(map[locator.Handle]geometry.Rect),
	}

	for si, s := range sections {
		if si > 0 {
			b.blank()
		}
		b.add(SectionTitleStyle.Render(s.Title))
		b.blank()

		for gi, group := range groups(s.Items) {
			if gi > 0 {
				b.blank()
			}
			boxes := make([]string, len(group))
			for i, it := range group {
				boxes[i] = renderItem(it, it.Handle == selected, b.avail)
			}
			if group[0].Shape == ShapeRow {
				// List rows stack vertically.
				for i := range group {
					b.flow(group[i:i+1], boxes[i:i+1])
				}
				continue
			}
			b.flow(group, boxes)
		}
	}

	return Layout{Lines: b.lines, Rects: b.rects}
}

// groups splits items into runs that share a row. Full-width items stand
// alone.
func groups(items []Item) [][]Item {
	var out [][]Item
	var cur []Item
	for _, it := range items {
		if it.Shape == ShapeHeader {
			if len(cur) > 0 {
				out = append(out, cur)
				cur = nil
			}
			out = append(out, []Item{it})
			continue
		}
		cur = append(cur, it)
	}
	if len(cur) > 0 {
		out = append(out, cur)
	}
	return out
}
