// Package placement computes where a tooltip goes relative to a highlighted
// target so that it stays on screen.
//
// Placement runs in two phases. Anchor resolution picks a candidate top-left
// corner from one of the named anchors:
//
//	topLeft     topCenter     topRight
//	left        center        right
//	bottomLeft  bottomCenter  bottomRight
//
// plus the legacy aliases top (topLeft) and bottom (bottomLeft, also the
// fallback for unknown names). Boundary clamping then keeps the tooltip an
// edge margin away from the screen borders. Vertical overflow on an anchor
// whose name carries a side ("top" or "bottom") flips the tooltip to the
// opposite side of the target instead of squeezing it against the edge.
//
// A flipped position is not clamped again. A tooltip taller than the space on
// both sides of its target can therefore end up partially off screen; that is
// the documented limit of the algorithm, as is a tooltip wider or taller than
// the screen minus both edge margins.
//
// # Usage
//
//	size := geometry.Size{Width: 150, Height: 60}
//	res := placement.Place(target, &size, placement.BottomCenter,
//	    placement.Config{}, geometry.Size{Width: 400, Height: 800})
//	if res.Visible() {
//	    draw(res.Left, res.Top)
//	}
//
// Passing a nil size yields an invisible result. Hosts render the tooltip
// once in that state to learn its natural size, then place it for real.
package placement
