// Package locator resolves a target handle into a screen-space rectangle.
//
// The host UI owns element measurement. It is injected as a Measurer, and
// the timing primitives (deferring work until the host is idle, delayed
// retries) are injected as a Scheduler. The locator itself only decides what
// to do next, which keeps it usable with any event loop and testable without
// a terminal.
//
// # Protocol
//
//  1. The first measurement is deferred with Scheduler.AfterIdle so the target
//     has settled into its final layout.
//  2. Measurer.Measure reports Pending (not mounted yet), Invalid, or OK with
//     a rectangle. OK rectangles with non-finite components or a 0x0 size
//     are treated as invalid.
//  3. Pending and invalid results are retried after RetryPolicy.Delay, up to
//     RetryPolicy.MaxRetries times.
//  4. A valid rectangle is shifted by Options.PlatformOffsetY and published.
//  5. When retries run out, done receives a *LocateError.
//
// # Cancellation
//
// Locate returns a Cancel. Calling it stops the idle registration and any
// pending retry timer, and drops measurement reports that arrive afterwards.
// done never runs after Cancel, and runs at most once per Locate call.
//
// # Threading
//
// A Locator is not safe for concurrent use. Every callback must run on the
// host's event loop; Loop provides one for hosts without their own.
package locator
