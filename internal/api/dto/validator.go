package dto

import (
	ierr "github.com/agencyhub/agencyhub/internal/errors"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// validateStruct runs tag validation and marks failures as validation
// errors so they surface as 400s rather than opaque internal errors
func validateStruct(s any) error {
	if err := validate.Struct(s); err != nil {
		return ierr.WithError(err).
			WithHint("Invalid request payload").
			Mark(ierr.ErrValidation)
	}
	return nil
}
