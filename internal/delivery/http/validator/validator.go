// Package validator adapts go-playground/validator to echo's Validator
// interface for request body validation.
package validator

import (
	validate "github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// Validator wraps a shared validator instance for echo.
type Validator struct {
	validate *validate.Validate
}

// New creates an echo-compatible request validator.
func New() *Validator {
	return &Validator{validate: validate.New()}
}

// Validate implements echo.Validator.
func (v *Validator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return errors.WithStack(err)
	}

	return nil
}
