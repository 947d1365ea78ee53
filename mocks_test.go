// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package retryaux

import (
	"context"
	"time"
)

// verifier is a stubbed Timer, Check, and OnRetry implementation all in one.
// Its Timer fires immediately, so sessions run without any real waiting, and
// every call is recorded so tests can assert the exact wait schedule and
// hook sequence a session produced.
type verifier struct {
	// waits is every duration passed to Timer, in order
	waits []time.Duration

	// checks is every error passed to Check, in order
	checks []error

	// hookRetries and hookCauses record the OnRetry invocations
	hookRetries []int
	hookCauses  []error

	// hookErr, if set, is returned by every OnRetry call
	hookErr error
}

// Timer is a Config.Timer implementation that always returns a closed time
// channel and a noop stop function.  This allows retries to continue
// immediately.
func (v *verifier) Timer(d time.Duration) (<-chan time.Time, func() bool) {
	v.waits = append(v.waits, d)

	tc := make(chan time.Time)
	close(tc)
	return tc, func() bool { return true }
}

// Check is a Config.Check that accepts every failure, but still tracks
// the calls.
func (v *verifier) Check(err error) bool {
	v.checks = append(v.checks, err)
	return true
}

// OnRetry is a Config.OnRetry that records its arguments and returns
// v.hookErr.
func (v *verifier) OnRetry(_ context.Context, retry int, cause error) error {
	v.hookRetries = append(v.hookRetries, retry)
	v.hookCauses = append(v.hookCauses, cause)
	return v.hookErr
}

// stuckTimer is a Timer whose channel never fires.  Each start is announced
// on started, and stop invocations are counted.  Used to hold a session in
// its Waiting state so tests can cancel it deterministically.
type stuckTimer struct {
	started chan time.Duration
	stops   int
}

func newStuckTimer() *stuckTimer {
	return &stuckTimer{
		started: make(chan time.Duration, 1),
	}
}

func (st *stuckTimer) Timer(d time.Duration) (<-chan time.Time, func() bool) {
	st.started <- d
	return make(chan time.Time), func() bool {
		st.stops++
		return true
	}
}
