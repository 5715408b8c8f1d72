package errors_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

type ErrorsTestSuite struct {
	suite.Suite
}

func TestErrorsSuite(t *testing.T) {
	suite.Run(t, new(ErrorsTestSuite))
}

func (s *ErrorsTestSuite) TestNewError() {
	testCases := []struct {
		name     string
		code     errors.Code
		message  string
		expected string
	}{
		{
			name:     "not found error",
			code:     errors.CodeNotFound,
			message:  "character not found",
			expected: "NOT_FOUND: character not found",
		},
		{
			name:     "invalid argument error",
			code:     errors.CodeInvalidArgument,
			message:  "unknown condition",
			expected: "INVALID_ARGUMENT: unknown condition",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := errors.New(tc.code, tc.message)
			s.Equal(tc.expected, err.Error())
			s.Equal(tc.code, err.Code)
			s.Equal(tc.message, err.Message)
		})
	}
}

func (s *ErrorsTestSuite) TestErrorWithMeta() {
	err := errors.NotFound("character not found").
		WithMeta("character_id", "psalm").
		WithMeta("dir", "./data")

	s.Equal("psalm", err.Meta["character_id"])
	s.Equal("./data", err.Meta["dir"])
}

func (s *ErrorsTestSuite) TestWrap() {
	baseErr := fmt.Errorf("disk full")
	wrapped := errors.Wrap(baseErr, "failed to save session state")

	s.Equal(errors.CodeInternal, wrapped.Code)
	s.Equal("failed to save session state", wrapped.Message)
	s.Equal(baseErr, wrapped.Unwrap())
	s.Contains(wrapped.Error(), "disk full")
}

func (s *ErrorsTestSuite) TestWrapPreservesCode() {
	notFound := errors.NotFound("session state not found").WithMeta("key", "sheet:psalm")
	wrapped := errors.Wrap(notFound, "failed to load state")

	s.Equal(errors.CodeNotFound, wrapped.Code)
	s.Equal("sheet:psalm", wrapped.Meta["key"])
	s.True(errors.IsNotFound(wrapped))
}

func (s *ErrorsTestSuite) TestWrapWithCode() {
	wrapped := errors.WrapWithCode(fmt.Errorf("eof"), errors.CodeInvalidArgument, "bad character file")
	s.Equal(errors.CodeInvalidArgument, wrapped.Code)
	s.True(errors.IsInvalidArgument(wrapped))
}

func (s *ErrorsTestSuite) TestWrapNil() {
	s.Nil(errors.Wrap(nil, "nothing"))
	s.Nil(errors.WrapWithCode(nil, errors.CodeInternal, "nothing"))
	s.Nil(errors.FromContext(nil, "nothing"))
}

func (s *ErrorsTestSuite) TestErrorIs() {
	err1 := errors.NotFound("spell not found")
	err2 := errors.NotFound("race not found")
	err3 := errors.Internal("boom")

	s.True(errors.Is(err1, err2))
	s.False(errors.Is(err1, err3))
}

func (s *ErrorsTestSuite) TestGetCode() {
	s.Equal(errors.CodeOK, errors.GetCode(nil))
	s.Equal(errors.CodeInternal, errors.GetCode(fmt.Errorf("plain")))
	s.Equal(errors.CodeNotFound, errors.GetCode(fmt.Errorf("load: %w", errors.NotFound("missing"))))
}

func (s *ErrorsTestSuite) TestFromContext() {
	s.True(errors.IsDeadlineExceeded(errors.FromContext(context.DeadlineExceeded, "remote lookup timed out")))
	s.True(errors.IsUnavailable(errors.FromContext(fmt.Errorf("connection refused"), "remote lookup failed")))
}

func (s *ErrorsTestSuite) TestExitCode() {
	s.Equal(0, errors.CodeOK.ExitCode())
	s.Equal(2, errors.CodeInvalidArgument.ExitCode())
	s.Equal(3, errors.CodeNotFound.ExitCode())
	s.Equal(4, errors.CodeUnavailable.ExitCode())
	s.Equal(4, errors.CodeDeadlineExceeded.ExitCode())
	s.Equal(1, errors.CodeInternal.ExitCode())
}

func (s *ErrorsTestSuite) TestExitCodeOfWrappedError() {
	testCases := []struct {
		name string
		err  error
		want int
	}{
		{name: "success", err: nil, want: 0},
		{name: "bad flag", err: errors.InvalidArgumentf("expected on or off, got %q", "maybe"), want: 2},
		{name: "missing character", err: errors.Wrap(errors.NotFound("Could not load psalm"), "sheet"), want: 3},
		{name: "redis down", err: errors.FromContext(fmt.Errorf("connection refused"), "ping"), want: 4},
		{name: "plain error", err: fmt.Errorf("unknown command"), want: 1},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.want, errors.GetCode(tc.err).ExitCode())
		})
	}
}
