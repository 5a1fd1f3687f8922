package placement

import "github.com/muurk/focusguide/internal/geometry"

// Metrics holds the distances used by the placement phases, in screen units.
// The zero value stands for DefaultMetrics; an all-zero set would cap the
// tooltip at width 0, so it has no meaning of its own. Set MaxWidthRatio to
// use zero gaps and margins.
type Metrics struct {
	Gap           float64 // Target-to-tooltip distance when overlap is not allowed
	OverlapGap    float64 // Target-to-tooltip distance when overlap is allowed (negative overlaps)
	EdgeMargin    float64 // Minimum distance from every screen edge
	MaxWidthRatio float64 // Tooltip width cap as a fraction of the screen width
}

// DefaultMetrics are the reference values for pixel-based hosts.
var DefaultMetrics = Metrics{
	Gap:           24,
	OverlapGap:    -4,
	EdgeMargin:    16,
	MaxWidthRatio: 0.9,
}

// CellMetrics scale the reference values down to terminal cells.
var CellMetrics = Metrics{
	Gap:           1,
	OverlapGap:    0,
	EdgeMargin:    1,
	MaxWidthRatio: 0.9,
}

func (m Metrics) orDefault() Metrics {
	if m == (Metrics{}) {
		return DefaultMetrics
	}
	return m
}

// Margin returns the target-to-tooltip distance for the overlap preference.
func (m Metrics) Margin(allowOverlap bool) float64 {
	m = m.orDefault()
	if allowOverlap {
		return m.OverlapGap
	}
	return m.Gap
}

// Config is the caller-supplied configuration of one highlight session.
type Config struct {
	Offset       geometry.Point
	AllowOverlap bool
	Metrics      Metrics // Zero value selects DefaultMetrics
}

// Result is the final tooltip placement.
type Result struct {
	Top      float64 `json:"top"`
	Left     float64 `json:"left"`
	Opacity  float64 `json:"opacity"`
	MaxWidth float64 `json:"maxWidth"`
}

// Visible reports whether the result is final and may be shown.
func (r Result) Visible() bool {
	return r.Opacity > 0
}

// Rect returns the screen rectangle occupied by a tooltip of the given size.
func (r Result) Rect(size geometry.Size) geometry.Rect {
	return geometry.NewRect(r.Left, r.Top, size.Width, size.Height)
}

// Resolve returns the unclamped top-left corner for anchor a. Unknown anchors
// resolve like Bottom.
func Resolve(a Anchor, rect geometry.Rect, size geometry.Size, margin float64) (top, left float64) {
	above := rect.Y - size.Height - margin
	below := rect.Y + rect.Height + margin
	middle := rect.Y + rect.Height/2 - size.Height/2
	centered := rect.X + rect.Width/2 - size.Width/2

	switch a {
	case TopLeft, Top:
		return above, rect.X
	case TopCenter:
		return above, centered
	case TopRight:
		return above, rect.X + rect.Width - size.Width
	case BottomLeft, Bottom:
		return below, rect.X
	case BottomCenter:
		return below, centered
	case BottomRight:
		return below, rect.X + rect.Width - size.Width
	case Left:
		return middle, rect.X - size.Width - margin
	case Right:
		return middle, rect.X + rect.Width + margin
	case Center:
		return middle, centered
	default:
		return below, rect.X
	}
}

// Place computes the tooltip position for a target rect on a screen.
// A nil size means the tooltip has not been measured yet; the result is then
// invisible and positioned at the origin.
func Place(rect geometry.Rect, size *geometry.Size, a Anchor, cfg Config, screen geometry.Size) Result {
	m := cfg.Metrics.orDefault()
	maxWidth := screen.Width * m.MaxWidthRatio

	if size == nil {
		return Result{MaxWidth: maxWidth}
	}

	margin := m.Margin(cfg.AllowOverlap)
	tw, th := size.Width, size.Height
	edge := m.EdgeMargin

	top, left := Resolve(a, rect, *size, margin)

	if left < edge {
		left = edge
	}
	if left+tw > screen.Width-edge {
		left = screen.Width - tw - edge
	}

	if top < edge {
		if a.FlipsDown() {
			top = rect.Y + rect.Height + margin
		} else {
			top = edge
		}
	}
	if top+th > screen.Height-edge {
		if a.FlipsUp() {
			top = rect.Y - th - margin
		} else {
			top = screen.Height - th - edge
		}
	}

	return Result{
		Top:      top + cfg.Offset.Y,
		Left:     left + cfg.Offset.X,
		Opacity:  1,
		MaxWidth: maxWidth,
	}
}
