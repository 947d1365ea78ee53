// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package retryaux

import (
	"math"
	"time"
)

// Decay computes the wait before a given retry.  The retry parameter is the
// 1-based ordinal of the retry about to occur, and base is the configured
// Interval.  It is called exactly once per retry, after the preceding
// attempt has failed and before the wait begins.
//
// A non-nil error halts the session; Do surfaces it to the caller
// unmodified.
type Decay func(retry int, base time.Duration) (time.Duration, error)

// interval is the wait-growth configuration of one Runner.
type interval struct {
	// base is the duration to wait before the first retry
	base time.Duration

	// multiplier grows the wait with each subsequent retry.
	// values at or below 1.0 leave the wait constant.
	multiplier float64

	// decay, when set, replaces the multiplier schedule entirely
	decay Decay
}

// newInterval extracts the wait configuration from a Config, applying
// defaults.
func newInterval(cfg Config) interval {
	i := interval{
		base:       cfg.Interval,
		multiplier: cfg.Multiplier,
		decay:      cfg.Decay,
	}

	if i.base <= 0 {
		i.base = DefaultInterval
	}

	return i
}

// duration computes the wait before the given 1-based retry.  Nothing is
// precomputed: each wait is derived from the ordinal of a retry that is
// actually about to happen.
func (i interval) duration(retry int) (time.Duration, error) {
	if i.decay != nil {
		return i.decay(retry, i.base)
	}

	if i.multiplier <= 1.0 || retry < 2 {
		return i.base, nil
	}

	d := float64(i.base) * math.Pow(i.multiplier, float64(retry-1))

	// clamp rather than overflow into a negative wait
	if d >= math.MaxInt64 {
		return time.Duration(math.MaxInt64), nil
	}

	return time.Duration(math.Round(d)), nil
}
