package placement

import (
	"fmt"
	"strings"
)

// Anchor names the position of the tooltip relative to its target.
type Anchor string

const (
	Top          Anchor = "top" // Legacy alias of TopLeft
	Bottom       Anchor = "bottom"
	Left         Anchor = "left"
	Right        Anchor = "right"
	Center       Anchor = "center"
	TopLeft      Anchor = "topLeft"
	TopCenter    Anchor = "topCenter"
	TopRight     Anchor = "topRight"
	BottomLeft   Anchor = "bottomLeft"
	BottomCenter Anchor = "bottomCenter"
	BottomRight  Anchor = "bottomRight"
)

// DefaultAnchor is used when the caller does not request a position.
const DefaultAnchor = Bottom

// Anchors lists every supported anchor in display order.
var Anchors = []Anchor{
	Top,
	Bottom,
	Left,
	Right,
	Center,
	TopLeft,
	TopCenter,
	TopRight,
	BottomLeft,
	BottomCenter,
	BottomRight,
}

// ParseAnchor resolves a position name. Matching ignores case, so "topleft"
// and "TopLeft" both resolve to TopLeft. An empty name yields DefaultAnchor.
func ParseAnchor(name string) (Anchor, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return DefaultAnchor, nil
	}
	for _, a := range Anchors {
		if strings.EqualFold(string(a), name) {
			return a, nil
		}
	}
	return "", fmt.Errorf("unknown tooltip position %q", name)
}

// Known reports whether a is one of the supported anchors.
func (a Anchor) Known() bool {
	for _, k := range Anchors {
		if a == k {
			return true
		}
	}
	return false
}

// FlipsDown reports whether an upward overflow moves the tooltip below the
// target.
func (a Anchor) FlipsDown() bool {
	return strings.Contains(string(a), "top")
}

// FlipsUp reports whether a downward overflow moves the tooltip above the
// target.
func (a Anchor) FlipsUp() bool {
	return strings.Contains(string(a), "bottom")
}

func (a Anchor) String() string {
	return string(a)
}
