package locator

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/muurk/focusguide/internal/geometry"
)

// Loop is a single-goroutine event loop implementing Scheduler for hosts
// that do not bring their own. Callbacks posted from any goroutine run one
// at a time inside Run.
type Loop struct {
	mu     sync.Mutex
	queue  []func()
	notify chan struct{}
}

// NewLoop creates an idle event loop.
func NewLoop() *Loop {
	return &Loop{notify: make(chan struct{}, 1)}
}

// Post queues fn to run on the loop. Safe for concurrent use.
func (l *Loop) Post(fn func()) {
	l.mu.Lock()
	l.queue = append(l.queue, fn)
	l.mu.Unlock()

	select {
	case l.notify <- struct{}{}:
	default:
	}
}

// AfterIdle implements Scheduler. fn runs after every callback already
// queued has run.
func (l *Loop) AfterIdle(fn func()) Cancel {
	var cancelled atomic.Bool
	l.Post(func() {
		if !cancelled.Load() {
			fn()
		}
	})
	return func() { cancelled.Store(true) }
}

// AfterFunc implements Scheduler.
func (l *Loop) AfterFunc(d time.Duration, fn func()) Cancel {
	var cancelled atomic.Bool
	t := time.AfterFunc(d, func() {
		l.Post(func() {
			if !cancelled.Load() {
				fn()
			}
		})
	})
	return func() {
		cancelled.Store(true)
		t.Stop()
	}
}

// Run executes queued callbacks until ctx is done.
func (l *Loop) Run(ctx context.Context) error {
	for {
		for {
			fn := l.pop()
			if fn == nil {
				break
			}
			fn()
			if ctx.Err() != nil {
				return ctx.Err()
			}
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-l.notify:
		}
	}
}

func (l *Loop) pop() func() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.queue) == 0 {
		return nil
	}
	fn := l.queue[0]
	l.queue[0] = nil
	l.queue = l.queue[1:]
	return fn
}

// LocateSync runs a Locate on loop and blocks until it resolves or ctx ends.
// Run must not already be active on loop.
func LocateSync(ctx context.Context, loop *Loop, l *Locator, h Handle) (geometry.Rect, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		rect    geometry.Rect
		err     error
		settled bool
		stop    Cancel
	)
	loop.Post(func() {
		stop = l.Locate(h, func(r geometry.Rect, lerr error) {
			rect, err, settled = r, lerr, true
			cancel()
		})
	})

	runErr := loop.Run(ctx)
	if !settled {
		// Run executes on this goroutine, so nothing else touches the locate.
		if stop != nil {
			stop()
		}
		return geometry.Rect{}, runErr
	}
	return rect, err
}
