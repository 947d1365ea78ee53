// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package retryaux

import (
	"context"
	"time"
)

// Operation is a fallible unit of work to be retried.  The context given to
// Do is passed through to every invocation; operations that can block should
// honor it, since the Runner itself never forcibly terminates an attempt.
//
// Asynchronous work is expressed by blocking inside the operation until the
// underlying result is available.
type Operation[T any] func(context.Context) (T, error)

// OnRetry is a hook invoked once per retry, after the inter-attempt wait and
// before the next attempt begins.  The retry parameter is the 1-based ordinal
// of the retry about to occur, and cause is the failure from the attempt that
// preceded it.
//
// A non-nil return halts the session immediately.  The error is surfaced to
// the caller of Do unmodified.
//
// The Runner emits no logs or metrics of its own.  This hook is the intended
// place to record retry activity.
type OnRetry func(ctx context.Context, retry int, cause error) error

// Default values applied by NewRunner to Config fields that are left unset.
const (
	DefaultRetries  = 3
	DefaultInterval = 1000 * time.Millisecond
)

// NoRetries is a Config.Retries value requesting a single attempt with no
// retries.  Any negative value behaves the same way.
const NoRetries = -1

// Config configures a retry Runner.  The zero value is usable and applies
// the documented defaults.
type Config struct {
	// Retries is the maximum number of retries after the initial attempt.
	// The total number of invocations of an operation never exceeds
	// Retries+1.
	//
	// If unset (zero), DefaultRetries is used.  Use NoRetries to request
	// exactly one attempt.
	Retries int

	// Interval is the base wait between attempts.  If unset,
	// DefaultInterval is used.
	Interval time.Duration

	// Multiplier is the factor applied to grow the wait with each retry.
	// The wait before retry n is Interval * Multiplier^(n-1), so the first
	// retry always waits exactly Interval.  Values less than or equal to
	// 1.0 leave the wait constant.
	//
	// Each wait is computed only once the preceding attempt has actually
	// failed.  Multiplier is ignored when Decay is set.
	Multiplier float64

	// Decay, if set, supplies the wait schedule instead of Multiplier.
	// See the Decay type for the contract.
	Decay Decay

	// Check determines whether a failed attempt should be retried.  If
	// nil, every failure is retried until the budget is exhausted.  When
	// Check returns false the session settles immediately with that
	// failure, unmodified.
	Check Check

	// OnRetry is an optional observation hook.  See the OnRetry type.
	OnRetry OnRetry

	// Timeout is an overall wall-clock ceiling for the whole session,
	// covering every attempt and wait.  If positive, the session races a
	// watchdog timer: should the watchdog fire first, Do returns
	// ErrTimedOut and the attempt loop's eventual result is discarded.
	//
	// Nonpositive values disable the watchdog entirely.
	Timeout time.Duration

	// Timer is the Timer strategy used for every wait this Runner starts.
	// If nil, DefaultTimer is used.  Primarily useful for testing.
	Timer Timer
}

// retries normalizes the configured retry budget.
func (cfg Config) retries() int {
	switch {
	case cfg.Retries == 0:
		return DefaultRetries

	case cfg.Retries < 0:
		return 0

	default:
		return cfg.Retries
	}
}

// timer returns the configured Timer strategy, falling back to DefaultTimer.
func (cfg Config) timer() Timer {
	if cfg.Timer != nil {
		return cfg.Timer
	}

	return DefaultTimer
}
