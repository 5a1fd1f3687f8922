package locator

import (
	"math"
	"testing"
	"time"

	"github.com/muurk/focusguide/internal/geometry"
)

func TestRetryPolicyNext(t *testing.T) {
	good := geometry.NewRect(1, 2, 3, 4)
	p := DefaultRetryPolicy

	tests := []struct {
		name     string
		attempt  int
		m        Measurement
		wantKind ActionKind
		wantFail ErrorKind
	}{
		{"valid first attempt", 0, Measured(good), ActionSucceed, 0},
		{"valid last attempt", 5, Measured(good), ActionSucceed, 0},
		{"pending retries", 0, Pending(), ActionRetry, 0},
		{"pending before cap", 4, Pending(), ActionRetry, 0},
		{"pending at cap", 5, Pending(), ActionFail, ErrKindUnresolvable},
		{"invalid retries", 2, Invalid(), ActionRetry, 0},
		{"invalid at cap", 5, Invalid(), ActionFail, ErrKindInvalidRect},
		{"zero rect retries", 0, Measured(geometry.Rect{}), ActionRetry, 0},
		{"zero rect at cap", 5, Measured(geometry.NewRect(10, 10, 0, 0)), ActionFail, ErrKindInvalidRect},
		{"nan rect at cap", 5, Measured(geometry.NewRect(math.NaN(), 0, 1, 1)), ActionFail, ErrKindInvalidRect},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := p.Next(tt.attempt, tt.m)
			if got.Kind != tt.wantKind {
				t.Fatalf("Next() kind = %v, want %v", got.Kind, tt.wantKind)
			}
			switch got.Kind {
			case ActionRetry:
				if got.Delay != 100*time.Millisecond {
					t.Errorf("Next() delay = %v, want 100ms", got.Delay)
				}
			case ActionSucceed:
				if got.Rect != tt.m.Rect {
					t.Errorf("Next() rect = %v, want %v", got.Rect, tt.m.Rect)
				}
			case ActionFail:
				if got.Fail != tt.wantFail {
					t.Errorf("Next() fail = %v, want %v", got.Fail, tt.wantFail)
				}
			}
		})
	}
}

func TestRetryPolicyAttempts(t *testing.T) {
	if got := DefaultRetryPolicy.Attempts(); got != 6 {
		t.Errorf("Attempts() = %d, want 6", got)
	}
	if got := (RetryPolicy{}).Next(0, Pending()); got.Kind != ActionFail {
		t.Errorf("zero policy should fail immediately, got %v", got.Kind)
	}
}
