// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package retryaux

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"
)

type ErrorsTestSuite struct {
	suite.Suite
}

func (suite *ErrorsTestSuite) TestCancelledError() {
	reason := errors.New("host shutting down")
	err := &CancelledError{Reason: reason}

	suite.Contains(err.Error(), "retry cancelled")
	suite.Contains(err.Error(), reason.Error())
	suite.Same(reason, err.Unwrap())
	suite.ErrorIs(err, reason)
}

func (suite *ErrorsTestSuite) TestCancelledErrorNoReason() {
	err := new(CancelledError)
	suite.Equal("retry cancelled", err.Error())
	suite.Nil(err.Unwrap())
}

func (suite *ErrorsTestSuite) TestCancelledErrorContextCause() {
	err := &CancelledError{Reason: context.Canceled}
	suite.ErrorIs(err, context.Canceled)
}

func (suite *ErrorsTestSuite) TestTimedOut() {
	suite.Equal("operation timed out", ErrTimedOut.Error())
}

func TestErrors(t *testing.T) {
	suite.Run(t, new(ErrorsTestSuite))
}
