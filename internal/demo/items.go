package demo

import (
	"fmt"
	"strings"

	"github.com/muurk/focusguide/internal/locator"
	"github.com/muurk/focusguide/internal/placement"
)

// Shape selects how an item is drawn
type Shape string

const (
	ShapeRow       Shape = "row"
	ShapeRectangle Shape = "rectangle"
	ShapeCircle    Shape = "circle"
	ShapeCard      Shape = "card"
	ShapeRounded   Shape = "rounded"
	ShapeTile      Shape = "tile"
	ShapeHeader    Shape = "header"
	ShapeApprove   Shape = "approve"
	ShapeReject    Shape = "reject"
)

// Item is one element that can be highlighted.
type Item struct {
	Handle  locator.Handle
	Label   string
	Shape   Shape
	Index   int    // Position within its section
	Section int    // Index of the owning section
	Extra   string // Extra tooltip line
}

// Section is a titled group of items.
type Section struct {
	Title string
	Items []Item
}

// tooltipPositions is cycled through by item index.
var tooltipPositions = []placement.Anchor{
	placement.TopLeft,
	placement.TopCenter,
	placement.TopRight,
	placement.BottomLeft,
	placement.BottomCenter,
	placement.BottomRight,
	placement.Left,
	placement.Right,
}

// Some items allow overlap, some don't
var overlapSettings = []bool{false, false, false, true, false, true, true, false}

// PositionFor returns the anchor used for the item at index i of a section.
func PositionFor(i int) placement.Anchor {
	return tooltipPositions[i%len(tooltipPositions)]
}

// OverlapFor reports whether the item at index i of a section may be
// overlapped by its tooltip.
func OverlapFor(i int) bool {
	return overlapSettings[i%len(overlapSettings)]
}

func section(idx int, title, prefix string, shapes []Shape, labels []string, extra func(j int) string) Section {
	s := Section{Title: title}
	for j, label := range labels {
		s.Items = append(s.Items, Item{
			Handle:  locator.Handle(fmt.Sprintf("%s-%d", prefix, j)),
			Label:   label,
			Shape:   shapes[j%len(shapes)],
			Index:   j,
			Section: idx,
			Extra:   extra(j),
		})
	}
	return s
}

// Sections returns the demo screen content.
func Sections() []Section {
	shapes := []Shape{ShapeRectangle, ShapeCircle, ShapeCard, ShapeRounded}
	return []Section{
		section(0, "List", "list",
			[]Shape{ShapeRow},
			[]string{"First Item", "Second Item", "Third Item", "Fourth Item"},
			func(int) string { return "List Item" }),
		section(1, "Shaped Buttons", "shape",
			shapes,
			[]string{"Rectangle Button", "Circle", "Card", "Rounded Button"},
			func(j int) string { return "Shape: " + string(shapes[j]) }),
		section(2, "Grid Layout", "grid",
			[]Shape{ShapeTile},
			[]string{"Photos", "Music", "Videos", "Documents", "Settings", "Profile"},
			func(int) string { return "Grid Item" }),
		section(3, "Special Layouts", "special",
			[]Shape{ShapeHeader, ShapeApprove, ShapeReject},
			[]string{"Header Style", "Approve", "Reject"},
			func(int) string { return "Special Layout Item" }),
	}
}

// flatten lists the items of every section in navigation order.
func flatten(sections []Section) []Item {
	var items []Item
	for _, s := range sections {
		items = append(items, s.Items...)
	}
	return items
}

// TooltipContent builds the tooltip body shown for an item.
func TooltipContent(it Item, a placement.Anchor, overlap bool) string {
	lines := []string{
		it.Label + " Selected",
		"Tooltip Position: " + a.String(),
		"Allow Overlap: " + yesNo(overlap),
	}
	if it.Extra != "" {
		lines = append(lines, it.Extra)
	}
	lines = append(lines, "Auto adjustment considering screen boundaries applied")
	return strings.Join(lines, "\n")
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
