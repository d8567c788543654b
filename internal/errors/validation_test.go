package errors_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-melee/internal/errors"
)

type ValidationTestSuite struct {
	suite.Suite
}

func TestValidationSuite(t *testing.T) {
	suite.Run(t, new(ValidationTestSuite))
}

func (s *ValidationTestSuite) TestValidationBuilder() {
	vb := errors.NewValidationBuilder()
	vb.RequiredField("fighters[0].id").
		Fieldf("fighters[0].max_hp", "must be at least %d", 1).
		InvalidField("fighters[1].side", "unknown side")

	err := vb.Build()
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "fighters[0].id: is required")
	s.Contains(err.Error(), "fighters[1].side: is invalid: unknown side")

	fields := errors.FieldErrors(err)
	s.Len(fields, 3)
	s.Equal([]string{"must be at least 1"}, fields["fighters[0].max_hp"])
	s.Nil(errors.FieldErrors(errors.NotFound("x")))
}

func (s *ValidationTestSuite) TestValidationBuilderNoErrors() {
	vb := errors.NewValidationBuilder()
	s.False(vb.HasErrors())
	s.NoError(vb.Build())
}

func (s *ValidationTestSuite) TestHelpers() {
	testCases := []struct {
		name      string
		apply     func(vb *errors.ValidationBuilder)
		shouldErr bool
	}{
		{"required ok", func(vb *errors.ValidationBuilder) { errors.ValidateRequired("name", "Bjorn", vb) }, false},
		{"required blank", func(vb *errors.ValidationBuilder) { errors.ValidateRequired("name", "  ", vb) }, true},
		{"range ok", func(vb *errors.ValidationBuilder) { errors.ValidateRange("pe", 12, 1, 40, vb) }, false},
		{"range low", func(vb *errors.ValidationBuilder) { errors.ValidateRange("pe", 0, 1, 40, vb) }, true},
		{"positive ok", func(vb *errors.ValidationBuilder) { errors.ValidatePositive("max_hp", 5, vb) }, false},
		{"positive zero", func(vb *errors.ValidationBuilder) { errors.ValidatePositive("max_hp", 0, vb) }, true},
		{"enum ok", func(vb *errors.ValidationBuilder) { errors.ValidateEnum("side", "enemy", []string{"player", "enemy"}, vb) }, false},
		{"enum bad", func(vb *errors.ValidationBuilder) { errors.ValidateEnum("side", "neutral", []string{"player", "enemy"}, vb) }, true},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			vb := errors.NewValidationBuilder()
			tc.apply(vb)
			if tc.shouldErr {
				s.Error(vb.Build())
			} else {
				s.NoError(vb.Build())
			}
		})
	}
}
