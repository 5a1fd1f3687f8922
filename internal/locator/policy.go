package locator

import (
	"fmt"
	"time"

	"github.com/muurk/focusguide/internal/geometry"
)

// Handle is an opaque reference to a host UI element.
type Handle string

// Status is the outcome of a single host measurement.
type Status int

const (
	StatusPending Status = iota // Element not mounted yet
	StatusInvalid               // Host returned unusable values
	StatusOK                    // Host returned a rectangle
)

func (s Status) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusInvalid:
		return "invalid"
	case StatusOK:
		return "ok"
	default:
		return fmt.Sprintf("Status(%d)", s)
	}
}

// Measurement is what the host reports for one measurement request.
type Measurement struct {
	Status Status
	Rect   geometry.Rect
}

// Pending returns a measurement for an element that is not mounted yet.
func Pending() Measurement {
	return Measurement{Status: StatusPending}
}

// Invalid returns a measurement the host itself flagged as unusable.
func Invalid() Measurement {
	return Measurement{Status: StatusInvalid}
}

// Measured returns a measurement carrying a rectangle. The rectangle is still
// validated before it is accepted.
func Measured(r geometry.Rect) Measurement {
	return Measurement{Status: StatusOK, Rect: r}
}

// Usable reports whether the measurement can be published as-is.
func (m Measurement) Usable() bool {
	return m.Status == StatusOK && m.Rect.Valid()
}

// RetryPolicy bounds how often a failed measurement is repeated.
type RetryPolicy struct {
	MaxRetries int           // Retries after the initial attempt
	Delay      time.Duration // Wait before each retry
}

// DefaultRetryPolicy retries 5 times, 100ms apart.
var DefaultRetryPolicy = RetryPolicy{
	MaxRetries: 5,
	Delay:      100 * time.Millisecond,
}

// Attempts returns the total number of measurements the policy allows.
func (p RetryPolicy) Attempts() int {
	return p.MaxRetries + 1
}

// ActionKind tells the locator what to do after a measurement.
type ActionKind int

const (
	ActionRetry ActionKind = iota
	ActionSucceed
	ActionFail
)

func (k ActionKind) String() string {
	switch k {
	case ActionRetry:
		return "retry"
	case ActionSucceed:
		return "succeed"
	case ActionFail:
		return "fail"
	default:
		return fmt.Sprintf("ActionKind(%d)", k)
	}
}

// Action is the decision for one measurement.
type Action struct {
	Kind  ActionKind
	Delay time.Duration // Set for ActionRetry
	Rect  geometry.Rect // Set for ActionSucceed
	Fail  ErrorKind     // Set for ActionFail
}

// Next decides what follows measurement m of the given attempt. Attempt 0 is
// the initial measurement. Next has no side effects.
func (p RetryPolicy) Next(attempt int, m Measurement) Action {
	if m.Usable() {
		return Action{Kind: ActionSucceed, Rect: m.Rect}
	}
	if attempt < p.MaxRetries {
		return Action{Kind: ActionRetry, Delay: p.Delay}
	}
	kind := ErrKindInvalidRect
	if m.Status == StatusPending {
		kind = ErrKindUnresolvable
	}
	return Action{Kind: ActionFail, Fail: kind}
}
