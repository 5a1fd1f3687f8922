package overlay

import (
	"github.com/muurk/focusguide/internal/geometry"
	"github.com/muurk/focusguide/internal/locator"
)

// Registry records where the host drew each target. It implements
// locator.Measurer: unknown handles measure as pending, as if the element
// had not been mounted yet.
type Registry struct {
	rects map[locator.Handle]geometry.Rect
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{rects: make(map[locator.Handle]geometry.Rect)}
}

// Set records the screen rectangle of a target.
func (r *Registry) Set(h locator.Handle, rect geometry.Rect) {
	r.rects[h] = rect
}

// Remove forgets a target, e.g. when it is unmounted.
func (r *Registry) Remove(h locator.Handle) {
	delete(r.rects, h)
}

// Reset forgets every target.
func (r *Registry) Reset() {
	for h := range r.rects {
		delete(r.rects, h)
	}
}

// Lookup returns the recorded rectangle of a target.
func (r *Registry) Lookup(h locator.Handle) (geometry.Rect, bool) {
	rect, ok := r.rects[h]
	return rect, ok
}

// Len returns the number of recorded targets.
func (r *Registry) Len() int {
	return len(r.rects)
}

// Measure implements locator.Measurer
func (r *Registry) Measure(h locator.Handle, report func(locator.Measurement)) {
	rect, ok := r.rects[h]
	if !ok {
		report(locator.Pending())
		return
	}
	report(locator.Measured(rect))
}
