// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

/*
Package retryaux implements retry logic for arbitrary fallible operations.

An Operation is any function that accepts a context and returns a value or
an error.  The Runner type drives repeated invocation of an operation
according to a Config and is instantiated with NewRunner:

  runner := retryaux.NewRunner[string](retryaux.Config{
    Retries:  2,
    Interval: 10 * time.Second,
  })

  v, err := runner.Do(ctx, fetch)

The package-level Run and Do functions are one-shot conveniences for the
same behavior.

Exponential backoff is also supported.  For example:

  runner := retryaux.NewRunner[string](retryaux.Config{
    Retries:    2,
    Interval:   10 * time.Second,
    Multiplier: 2.0,
  })

The basic formula for the time to wait before retry n, in terms of Config
fields, is:

  Interval * (Multiplier^(n-1))

where n is the 1-based retry.  A Decay function may be supplied instead for
full control of the wait schedule.

Cancellation is cooperative and flows through the context given to Do.  A
context that is cancelled before or between attempts halts the session with
a *CancelledError carrying the context's cause.  Each attempt receives the
same context and decides for itself whether to honor it; the Runner never
forcibly terminates an in-flight attempt.

When Config.Timeout is set, the whole session races a watchdog timer.  If
the watchdog fires before the attempt loop settles, Do returns ErrTimedOut
and the loop's eventual result is discarded.

See the documentation for the Config type for more details.
*/
package retryaux
