// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package retryaux

import (
	"context"
	"errors"
)

// Check is a predicate type used to determine if a failed attempt should be
// retried.  Implementations should only return true if it is reasonable to
// retry the operation.
//
// For any failure that shouldn't be retried, implementations should return
// false.  The session then settles immediately with that failure, exactly as
// if the retry budget had been exhausted.
//
// A nil Config.Check retries every failure.
type Check func(error) bool

// Temporary is a Check that returns true if the given error is marked as a
// temporary error.  An error is considered temporary if it, or any error it
// wraps, exposes a Temporary() bool method that returns true.
//
// context.DeadlineExceeded is a temporary error.  However, for this package
// we don't want to retry it because it means the operation's context has
// expired.  Temporary therefore returns false for it.
//
// This function uses errors.As to traverse the error wrappers.
//
// See: https://pkg.go.dev/net/#Error
func Temporary(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	type temporary interface {
		Temporary() bool
	}

	var te temporary
	if errors.As(err, &te) {
		return te.Temporary()
	}

	return false
}
