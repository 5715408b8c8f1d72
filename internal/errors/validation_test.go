package errors_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

type ValidationTestSuite struct {
	suite.Suite
}

func TestValidationSuite(t *testing.T) {
	suite.Run(t, new(ValidationTestSuite))
}

func (s *ValidationTestSuite) TestValidationBuilder() {
	err := errors.NewValidationBuilder().
		RequiredField("SQLitePath").
		InvalidField("DiceTTL", "must be positive").
		Build()

	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Equal("INVALID_ARGUMENT: validation failed: SQLitePath is required; DiceTTL is invalid: must be positive", err.Error())
	s.Equal([]errors.FieldError{
		{Field: "SQLitePath", Reason: "is required"},
		{Field: "DiceTTL", Reason: "is invalid: must be positive"},
	}, errors.FieldErrors(err))
}

func (s *ValidationTestSuite) TestValidationBuilderNoErrors() {
	s.NoError(errors.NewValidationBuilder().Build())
}

func (s *ValidationTestSuite) TestFieldErrorsSurviveWrap() {
	err := errors.NewValidationBuilder().RequiredField("name").Build()
	wrapped := errors.Wrap(err, "invalid character file psalm.json")

	s.True(errors.IsInvalidArgument(wrapped))
	s.Equal([]errors.FieldError{{Field: "name", Reason: "is required"}}, errors.FieldErrors(wrapped))
	s.Nil(errors.FieldErrors(fmt.Errorf("plain")))
	s.Nil(errors.FieldErrors(errors.NotFound("psalm")))
}

func (s *ValidationTestSuite) TestHelpers() {
	testCases := []struct {
		name  string
		apply func(vb *errors.ValidationBuilder)
		want  []errors.FieldError
	}{
		{
			name:  "required present",
			apply: func(vb *errors.ValidationBuilder) { errors.ValidateRequired("name", "Psalm", vb) },
		},
		{
			name:  "required blank",
			apply: func(vb *errors.ValidationBuilder) { errors.ValidateRequired("name", "   ", vb) },
			want:  []errors.FieldError{{Field: "name", Reason: "is required"}},
		},
		{
			name:  "level in range",
			apply: func(vb *errors.ValidationBuilder) { errors.ValidateRange("level", 20, 1, 20, vb) },
		},
		{
			name:  "level out of range",
			apply: func(vb *errors.ValidationBuilder) { errors.ValidateRange("level", 0, 1, 20, vb) },
			want:  []errors.FieldError{{Field: "level", Reason: "is invalid: must be between 1 and 20"}},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			vb := errors.NewValidationBuilder()
			tc.apply(vb)
			err := vb.Build()
			if tc.want == nil {
				s.NoError(err)
				return
			}
			s.Require().Error(err)
			s.Equal(tc.want, errors.FieldErrors(err))
		})
	}
}
