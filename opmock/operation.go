// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

// Package opmock provides a stretchr/testify mock for retryable operations.
// It allows tests to script a sequence of failures and successes and to
// assert exactly how many attempts a retry session made.
package opmock

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// TryMethodName is the name of the Operation.Try method.
// Used to start expectation chains.
const TryMethodName = "Try"

// AnyContext is a mock argument matcher that matches any context.Context.
// OnTry uses this matcher; it is exported for tests that build their own
// expectations with Operation.On.
var AnyContext = mock.MatchedBy(
	func(context.Context) bool { return true },
)

// Operation is a mocked retryable operation.  Its Try method satisfies
// retryaux.Operation[any] and can be passed directly to a Runner or to
// retryaux.Run.
//
// First, create an *Operation with New.  Then, use OnTry to set
// expectations.
type Operation struct {
	mock.Mock
}

// New creates an Operation for the given test.  Expectations are asserted
// via AssertExpectations, as with any testify mock.
func New(t mock.TestingT) *Operation {
	o := new(Operation)
	o.Test(t)
	return o
}

// Try dispatches to the mock.  The configured return values determine the
// attempt's outcome.
func (o *Operation) Try(ctx context.Context) (any, error) {
	args := o.Called(ctx)
	return args.Get(0), args.Error(1)
}

// OnTry starts a fluent expectation chain for Try invocations.
func (o *Operation) OnTry() *TryCall {
	return &TryCall{
		Call: o.On(TryMethodName, AnyContext),
	}
}

// TryCall is syntactic sugar around a Try *mock.Call.  This type provides
// typesafe expectation behavior for an operation attempt.
type TryCall struct {
	*mock.Call
}

// Return establishes the result of this attempt.  A nil err scripts a
// successful attempt with the given value.
func (c *TryCall) Return(value any, err error) *TryCall {
	c.Call = c.Call.Return(value, err)
	return c
}

// Fail is shorthand for Return(nil, err).
func (c *TryCall) Fail(err error) *TryCall {
	return c.Return(nil, err)
}

// Once restricts this expectation to a single attempt.
func (c *TryCall) Once() *TryCall {
	c.Call = c.Call.Once()
	return c
}

// Times restricts this expectation to n attempts.
func (c *TryCall) Times(n int) *TryCall {
	c.Call = c.Call.Times(n)
	return c
}

// Run establishes a run function invoked with the attempt's context.
func (c *TryCall) Run(f func(context.Context)) *TryCall {
	c.Call = c.Call.Run(func(args mock.Arguments) {
		ctx, _ := args.Get(0).(context.Context)
		f(ctx)
	})

	return c
}
