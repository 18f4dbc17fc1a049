// Package validator wires go-playground/validator as Echo's request
// validator.
package validator

import (
	"github.com/go-playground/validator/v10"

	domainerrors "quill/internal/domain/errors"
)

type echoValidator struct {
	validate *validator.Validate
}

// New creates the validator used by the Echo server.
func New() *echoValidator {
	return &echoValidator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Validate checks the bound request struct against its validate tags.
// Failures surface as ErrValidationFailed so the error handler renders
// a 422 with the offending fields in the details.
func (v *echoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
