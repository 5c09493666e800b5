package validator_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/authforms/pkg/validator"
)

func TestValidationErrors_Error(t *testing.T) {
	t.Run("returns default message when no errors", func(t *testing.T) {
		var errs validator.ValidationErrors
		assert.Equal(t, "validation failed", errs.Error())
	})

	t.Run("returns formatted message with single error", func(t *testing.T) {
		var errs validator.ValidationErrors
		errs.Add(validator.ValidationError{
			Field:   "email",
			Message: "Invalid email.",
		})
		assert.Equal(t, "validation failed: email: Invalid email.", errs.Error())
	})

	t.Run("joins multiple errors", func(t *testing.T) {
		var errs validator.ValidationErrors
		errs.Add(validator.ValidationError{Field: "email", Message: "Invalid email."})
		errs.Add(validator.ValidationError{Field: "password", Message: "Invalid password."})

		msg := errs.Error()
		assert.Contains(t, msg, "email: Invalid email.")
		assert.Contains(t, msg, "password: Invalid password.")
	})
}

func TestExtractValidationErrors(t *testing.T) {
	t.Run("nil error", func(t *testing.T) {
		assert.Nil(t, validator.ExtractValidationErrors(nil))
		assert.False(t, validator.IsValidationError(nil))
	})

	t.Run("wrapped validation errors", func(t *testing.T) {
		inner := validator.ValidationErrors{{Field: "email", Message: "Invalid email."}}
		err := fmt.Errorf("submit: %w", inner)

		assert.True(t, validator.IsValidationError(err))
		assert.True(t, errors.Is(err, validator.ErrValidationFailed))
		assert.Equal(t, inner, validator.ExtractValidationErrors(err))
	})

	t.Run("other errors", func(t *testing.T) {
		err := errors.New("boom")
		assert.Nil(t, validator.ExtractValidationErrors(err))
		assert.False(t, validator.IsValidationError(err))
	})
}
