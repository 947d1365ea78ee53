// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package retryaux

import (
	"errors"
	"strings"
)

// ErrTimedOut indicates that a session's watchdog elapsed before the attempt
// loop settled.  It is returned only when Config.Timeout is set, and it is
// independent of whatever the last attempt failed with.
var ErrTimedOut = errors.New("operation timed out")

// CancelledError indicates that a retry session was halted by its context.
// The session's last attempt failure, if any, is not retained; cancellation
// takes precedence over an exhausted retry budget.
type CancelledError struct {
	// Reason is the context's cancellation cause, as reported by
	// context.Cause.  It is typically context.Canceled, but callers that
	// cancel with a cause will see that cause here.
	Reason error
}

// Error fulfills the error interface
func (err *CancelledError) Error() string {
	var o strings.Builder
	o.WriteString("retry cancelled")
	if err.Reason != nil {
		o.WriteString(": [")
		o.WriteString(err.Reason.Error())
		o.WriteRune(']')
	}

	return o.String()
}

// Unwrap produces the cancellation reason, allowing errors.Is tests
// against context.Canceled and similar sentinels.
func (err *CancelledError) Unwrap() error {
	return err.Reason
}
