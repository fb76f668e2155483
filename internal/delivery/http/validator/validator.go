// Package validator adapts struct tag validation to Echo's Validator
// interface.
package validator

import (
	"github.com/go-playground/validator/v10"
)

// EchoValidator wraps the struct tag validator for Echo.
type EchoValidator struct {
	validate *validator.Validate
}

// New creates an EchoValidator.
func New() *EchoValidator {
	return &EchoValidator{validate: validator.New()}
}

// Validate implements echo.Validator.
func (v *EchoValidator) Validate(i any) error {
	return v.validate.Struct(i)
}
