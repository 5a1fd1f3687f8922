package overlay

import (
	"testing"

	"github.com/muurk/focusguide/internal/geometry"
	"github.com/muurk/focusguide/internal/locator"
)

func measure(r *Registry, h locator.Handle) locator.Measurement {
	var got locator.Measurement
	r.Measure(h, func(m locator.Measurement) { got = m })
	return got
}

func TestRegistryMeasure(t *testing.T) {
	r := NewRegistry()
	if m := measure(r, "a"); m.Status != locator.StatusPending {
		t.Errorf("unknown handle status = %v, want pending", m.Status)
	}

	rect := geometry.NewRect(1, 2, 3, 4)
	r.Set("a", rect)
	m := measure(r, "a")
	if m.Status != locator.StatusOK || m.Rect != rect {
		t.Errorf("Measure() = %+v, want OK %v", m, rect)
	}
	if got, ok := r.Lookup("a"); !ok || got != rect {
		t.Errorf("Lookup() = %v, %v", got, ok)
	}

	r.Remove("a")
	if m := measure(r, "a"); m.Status != locator.StatusPending {
		t.Errorf("removed handle status = %v, want pending", m.Status)
	}
}

func TestRegistryReset(t *testing.T) {
	r := NewRegistry()
	r.Set("a", geometry.NewRect(0, 0, 1, 1))
	r.Set("b", geometry.NewRect(0, 0, 1, 1))
	r.Reset()
	if r.Len() != 0 {
		t.Errorf("Len() = %d, want 0", r.Len())
	}
}
