package locator

import (
	"time"

	"github.com/muurk/focusguide/internal/geometry"
	"github.com/muurk/focusguide/internal/logging"
)

// Measurer asks the host for the window-space rectangle of an element.
// report may be called synchronously or later from the host's event loop.
type Measurer interface {
	Measure(h Handle, report func(Measurement))
}

// MeasurerFunc adapts a plain function to the Measurer interface.
type MeasurerFunc func(h Handle, report func(Measurement))

// Measure implements Measurer
func (f MeasurerFunc) Measure(h Handle, report func(Measurement)) {
	f(h, report)
}

// Cancel stops a scheduled callback. Calling it more than once is a no-op.
type Cancel func()

// Scheduler runs callbacks on the host's event loop.
type Scheduler interface {
	// AfterIdle runs fn once in-flight host work has completed.
	AfterIdle(fn func()) Cancel
	// AfterFunc runs fn after d has elapsed.
	AfterFunc(d time.Duration, fn func()) Cancel
}

// Options configures a Locator.
type Options struct {
	Policy          *RetryPolicy // Nil selects DefaultRetryPolicy
	PlatformOffsetY float64      // Added to every published Y coordinate
}

// Locator resolves handles to rectangles.
type Locator struct {
	measurer  Measurer
	scheduler Scheduler
	policy    RetryPolicy
	offsetY   float64
}

// New creates a Locator.
func New(m Measurer, s Scheduler, opts Options) *Locator {
	policy := DefaultRetryPolicy
	if opts.Policy != nil {
		policy = *opts.Policy
	}
	return &Locator{
		measurer:  m,
		scheduler: s,
		policy:    policy,
		offsetY:   opts.PlatformOffsetY,
	}
}

// Policy returns the retry policy in use.
func (l *Locator) Policy() RetryPolicy {
	return l.policy
}

// Locate starts resolving h. done receives the rectangle, or a *LocateError
// once retries are exhausted.
func (l *Locator) Locate(h Handle, done func(geometry.Rect, error)) Cancel {
	r := &run{
		locator: l,
		handle:  h,
		done:    done,
	}
	r.pending = l.scheduler.AfterIdle(r.measure)
	return r.stop
}

// run is the state of one Locate call.
type run struct {
	locator *Locator
	handle  Handle
	done    func(geometry.Rect, error)
	attempt int
	pending Cancel
	last    geometry.Rect
	stopped bool
}

func (r *run) measure() {
	if r.stopped {
		return
	}
	r.pending = nil
	attempt := r.attempt

	r.locator.measurer.Measure(r.handle, func(m Measurement) {
		// Reports for an earlier attempt or after teardown are stale.
		if r.stopped || r.attempt != attempt {
			return
		}
		r.handleResult(m)
	})
}

func (r *run) handleResult(m Measurement) {
	logging.LogMeasureAttempt(string(r.handle), r.attempt, m.Status.String())
	if m.Status == StatusOK {
		r.last = m.Rect
	}

	action := r.locator.policy.Next(r.attempt, m)
	switch action.Kind {
	case ActionSucceed:
		r.stopped = true
		r.done(action.Rect.Translate(0, r.locator.offsetY), nil)

	case ActionRetry:
		r.attempt++
		r.pending = r.locator.scheduler.AfterFunc(action.Delay, r.measure)

	case ActionFail:
		r.stopped = true
		err := &LocateError{
			Kind:     action.Fail,
			Handle:   r.handle,
			Attempts: r.attempt + 1,
			Last:     r.last,
		}
		logging.LogLocateFailure(string(r.handle), err.Attempts, err)
		r.done(geometry.Rect{}, err)
	}
}

func (r *run) stop() {
	if r.stopped {
		return
	}
	r.stopped = true
	if r.pending != nil {
		r.pending()
		r.pending = nil
	}
}
