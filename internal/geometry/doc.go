// Package geometry provides the screen-space value types shared by the
// locator, the placement engine and the overlay compositor.
//
// Coordinates are float64 so that host measurements in fractional pixels
// survive untouched. The terminal host rounds to whole cells only when it
// composites the final frame.
package geometry
