package config

import (
	"github.com/muurk/focusguide/internal/geometry"
	"github.com/muurk/focusguide/internal/placement"
)

// CurrentVersion is the only supported tour file version.
const CurrentVersion = 1

// Tour is a sequence of highlights shown one after another.
type Tour struct {
	Version  int           `yaml:"version"`
	Name     string        `yaml:"name,omitempty"`
	Defaults *StepDefaults `yaml:"defaults,omitempty"` // Applied to steps that leave a field unset
	Steps    []*Step       `yaml:"steps"`
}

// StepDefaults holds values inherited by every step.
type StepDefaults struct {
	Position        string  `yaml:"position,omitempty"`          // Anchor name, e.g. "bottomLeft"
	AllowOverlap    bool    `yaml:"allow_overlap"`               // Let tooltips touch their target
	PlatformOffsetY float64 `yaml:"platform_offset_y,omitempty"` // Added to measured target Y
}

// Step is one highlight of one target.
type Step struct {
	Target          string   `yaml:"target"`                      // Handle of the element to highlight
	Content         string   `yaml:"content"`                     // Tooltip body
	Position        string   `yaml:"position,omitempty"`          // Anchor name
	AllowOverlap    *bool    `yaml:"allow_overlap,omitempty"`     // Nil inherits the tour default
	Offset          *Offset  `yaml:"offset,omitempty"`            // Shift applied after clamping
	PlatformOffsetY *float64 `yaml:"platform_offset_y,omitempty"` // Nil inherits the tour default
}

// Offset is a tooltip shift in cells.
type Offset struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// NewTour creates an empty tour with default values.
func NewTour() *Tour {
	return &Tour{
		Version:  CurrentVersion,
		Defaults: &StepDefaults{Position: string(placement.DefaultAnchor)},
	}
}

// Anchor returns the parsed step position. Steps are validated on load, so
// an unparsable name only occurs for hand-built steps and maps to the
// default anchor.
func (s *Step) Anchor() placement.Anchor {
	a, err := placement.ParseAnchor(s.Position)
	if err != nil {
		return placement.DefaultAnchor
	}
	return a
}

// Overlap reports whether the tooltip may touch the target.
func (s *Step) Overlap() bool {
	return s.AllowOverlap != nil && *s.AllowOverlap
}

// OffsetPoint returns the step offset, zero when unset.
func (s *Step) OffsetPoint() geometry.Point {
	if s.Offset == nil {
		return geometry.Point{}
	}
	return geometry.Point{X: s.Offset.X, Y: s.Offset.Y}
}

// OffsetY returns the platform Y correction, zero when unset.
func (s *Step) OffsetY() float64 {
	if s.PlatformOffsetY == nil {
		return 0
	}
	return *s.PlatformOffsetY
}

// applyDefaults fills unset step fields from the tour defaults.
func (t *Tour) applyDefaults() {
	if t.Defaults == nil {
		t.Defaults = &StepDefaults{}
	}
	if t.Defaults.Position == "" {
		t.Defaults.Position = string(placement.DefaultAnchor)
	}

	for _, s := range t.Steps {
		if s == nil {
			continue
		}
		if s.Position == "" {
			s.Position = t.Defaults.Position
		}
		if s.AllowOverlap == nil {
			overlap := t.Defaults.AllowOverlap
			s.AllowOverlap = &overlap
		}
		if s.PlatformOffsetY == nil {
			offset := t.Defaults.PlatformOffsetY
			s.PlatformOffsetY = &offset
		}
	}
}

func boolPtr(b bool) *bool {
	return &b
}

// DefaultTour returns the tour used by the demo when no file is given. It
// walks through one element of each demo section.
func DefaultTour() *Tour {
	t := NewTour()
	t.Name = "Getting started"
	t.Steps = []*Step{
		{
			Target:   "list-0",
			Content:  "Items in a list. The tooltip sits below the first one.",
			Position: string(placement.BottomLeft),
		},
		{
			Target:   "shape-1",
			Content:  "Shaped buttons keep their hole; the rest of the screen is dimmed.",
			Position: string(placement.Right),
		},
		{
			Target:       "grid-4",
			Content:      "With overlap allowed the tooltip may touch its target.",
			Position:     string(placement.TopCenter),
			AllowOverlap: boolPtr(true),
		},
		{
			Target:   "special-2",
			Content:  "Near the bottom edge a tooltip flips above the target.",
			Position: string(placement.BottomRight),
		},
	}
	t.applyDefaults()
	return t
}
