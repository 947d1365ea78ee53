// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package retryaux

import (
	"context"
	"time"
)

// Runner drives repeated invocation of an Operation according to a Config.
// Instances are immutable and safe for concurrent use; each call to Do is an
// independent session with its own attempt counter, and no state persists
// across sessions.
type Runner[T any] struct {
	// retries is the normalized retry budget, never negative
	retries int

	// interval is the wait-growth configuration
	interval interval

	// check is the Check strategy for determining if a failure should be retried
	check Check

	// onRetry is the observation hook invoked before each retry attempt
	onRetry OnRetry

	// timeout is the wall-clock ceiling for a whole session
	// if this value is nonpositive, no watchdog is started
	timeout time.Duration

	// timer is the Timer strategy used for waits and the watchdog
	timer Timer
}

// NewRunner constructs a Runner from a configuration.  Unset Config fields
// take the defaults documented on Config.
func NewRunner[T any](cfg Config) *Runner[T] {
	return &Runner[T]{
		retries:  cfg.retries(),
		interval: newInterval(cfg),
		check:    cfg.Check,
		onRetry:  cfg.OnRetry,
		timeout:  cfg.Timeout,
		timer:    cfg.timer(),
	}
}

// Retries returns the maximum number of retries this Runner will attempt.
// This does not include the initial attempt.  This method never returns a
// negative value.
func (r *Runner[T]) Retries() int {
	return r.retries
}

// Do makes an initial attempt plus a maximum number of retries in order to
// obtain a value from op.
//
// The first successful attempt settles the session with its value.  A failed
// session returns the zero value of T together with one of:
//
//   - the last attempt's error, unmodified, once the retry budget is
//     exhausted or Check rejects the failure
//   - a *CancelledError, if ctx was cancelled
//   - ErrTimedOut, if Config.Timeout elapsed first
//   - an error from the OnRetry hook or the Decay function, unmodified
func (r *Runner[T]) Do(ctx context.Context, op Operation[T]) (T, error) {
	if r.timeout <= 0 {
		return r.attempt(ctx, op)
	}

	return r.race(ctx, op)
}

// attempt is the sequential attempt loop.  Attempt n+1 never starts before
// attempt n has settled and, if it failed, before its wait and hook have
// completed.
func (r *Runner[T]) attempt(ctx context.Context, op Operation[T]) (value T, err error) {
	var zero T

	for retry := 0; ; retry++ {
		value, err = op(ctx)
		if err == nil {
			return value, nil
		}

		// cancellation observed at the moment of failure takes precedence
		// over an exhausted budget, and bypasses both the wait and the hook
		if reason := cancelled(ctx); reason != nil {
			return zero, &CancelledError{Reason: reason}
		}

		if retry >= r.retries {
			return zero, err
		}

		if r.check != nil && !r.check(err) {
			return zero, err
		}

		wait, werr := r.interval.duration(retry + 1)
		if werr != nil {
			return zero, werr
		}

		if serr := sleep(ctx, r.timer, wait); serr != nil {
			return zero, serr
		}

		if r.onRetry != nil {
			if herr := r.onRetry(ctx, retry+1, err); herr != nil {
				return zero, herr
			}
		}
	}
}

// settlement carries the attempt loop's result across the watchdog race.
type settlement[T any] struct {
	value T
	err   error
}

// race runs the attempt loop concurrently with a watchdog timer of
// r.timeout.  Whichever settles first determines the outcome.
//
// This is a first-settle race, not a cooperative shutdown: if the watchdog
// fires first the loop keeps running in the background, but its settlement
// lands in a buffered channel nobody reads and can never affect the
// session's outcome.
func (r *Runner[T]) race(ctx context.Context, op Operation[T]) (T, error) {
	var zero T

	results := make(chan settlement[T], 1)
	go func() {
		value, err := r.attempt(ctx, op)
		results <- settlement[T]{value: value, err: err}
	}()

	tc, stop := r.timer(r.timeout)
	select {
	case s := <-results:
		stop()
		return s.value, s.err

	case <-ctx.Done():
		// the watchdog honors the same cancellation signal as the loop
		stop()
		return zero, &CancelledError{Reason: context.Cause(ctx)}

	case <-tc:
		return zero, ErrTimedOut
	}
}

// Run retries op according to cfg, returning the first successful value.
// It is shorthand for NewRunner followed by Do.
func Run[T any](ctx context.Context, cfg Config, op Operation[T]) (T, error) {
	return NewRunner[T](cfg).Do(ctx, op)
}

// Do retries an operation that produces no value.  It is a convenience for
// the common case of side-effecting work.
func Do(ctx context.Context, cfg Config, op func(context.Context) error) error {
	_, err := Run(ctx, cfg, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, op(ctx)
	})

	return err
}
