// Package validator adapts go-playground/validator to echo's Validator interface.
package validator

import (
	playground "github.com/go-playground/validator/v10"

	domainerrors "congo/internal/domain/errors"
)

type echoValidator struct {
	validate *playground.Validate
}

// New builds the echo.Validator used by the HTTP server.
func New() *echoValidator {
	return &echoValidator{validate: playground.New()}
}

// Validate checks struct tags and reports failures as a domain validation error.
func (v *echoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
