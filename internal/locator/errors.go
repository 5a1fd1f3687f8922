package locator

import (
	"errors"
	"fmt"

	"github.com/muurk/focusguide/internal/geometry"
)

// ErrorKind represents the reason a target could not be located
type ErrorKind int

const (
	// ErrKindUnresolvable indicates the handle never resolved to a mounted element
	ErrKindUnresolvable ErrorKind = iota
	// ErrKindInvalidRect indicates every measurement was non-finite or 0x0
	ErrKindInvalidRect
)

// Sentinel errors matched by errors.Is against a *LocateError.
var (
	ErrTargetUnresolvable = errors.New("target could not be resolved")
	ErrInvalidRect        = errors.New("target measurement is invalid")
)

// String returns a human-readable name for the error kind
func (k ErrorKind) String() string {
	switch k {
	case ErrKindUnresolvable:
		return "Unresolvable Target"
	case ErrKindInvalidRect:
		return "Invalid Rectangle"
	default:
		return fmt.Sprintf("ErrorKind(%d)", k)
	}
}

// LocateError is reported when a target could not be located.
type LocateError struct {
	Kind     ErrorKind     // Why locating failed
	Handle   Handle        // Target that was being located
	Attempts int           // Number of measurements performed
	Last     geometry.Rect // Last rectangle reported by the host, if any
}

// Error implements the error interface
func (e *LocateError) Error() string {
	return fmt.Sprintf("%s: %q after %d attempts", e.Kind, string(e.Handle), e.Attempts)
}

// Unwrap returns the sentinel matching the error kind
func (e *LocateError) Unwrap() error {
	switch e.Kind {
	case ErrKindInvalidRect:
		return ErrInvalidRect
	default:
		return ErrTargetUnresolvable
	}
}

// IsLocateError reports whether err is or wraps a *LocateError.
func IsLocateError(err error) bool {
	var le *LocateError
	return errors.As(err, &le)
}
