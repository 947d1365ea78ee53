// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package retryaux

import (
	"context"
	"time"
)

// Timer is a strategy for starting a timer with its stop function
type Timer func(time.Duration) (<-chan time.Time, func() bool)

// DefaultTimer is the default Timer implementation.  It simply
// delegates to time.NewTimer.
func DefaultTimer(d time.Duration) (<-chan time.Time, func() bool) {
	t := time.NewTimer(d)
	return t.C, t.Stop
}

// Sleep waits for the given duration or until ctx is cancelled, whichever
// comes first.  It returns nil if the full duration elapsed.
//
// If ctx is already cancelled, Sleep returns a *CancelledError immediately
// and never starts a timer.  If cancellation arrives mid-wait, the pending
// timer is stopped and a *CancelledError carrying the context's cause is
// returned.  Exactly one of these outcomes occurs.
func Sleep(ctx context.Context, d time.Duration) error {
	return sleep(ctx, DefaultTimer, d)
}

// sleep is Sleep with an injectable Timer strategy.  The Runner uses this
// for its inter-attempt waits so tests can substitute immediate timers.
func sleep(ctx context.Context, t Timer, d time.Duration) error {
	if reason := cancelled(ctx); reason != nil {
		return &CancelledError{Reason: reason}
	}

	tc, stop := t(d)
	select {
	case <-ctx.Done():
		stop()
		return &CancelledError{Reason: context.Cause(ctx)}

	case <-tc:
		return nil
	}
}

// cancelled performs a non-blocking check of the given context, returning
// the cancellation cause or nil if the context is still live.
func cancelled(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return context.Cause(ctx)

	default:
		return nil
	}
}
