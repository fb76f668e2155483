package impl

import (
	domainerrors "nosh/internal/domain/errors"
	"nosh/internal/errors"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// validateStruct runs the struct tag validation and converts failures
// into the shared validation error with the offending fields as details.
func validateStruct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		detail := ""
		for i, fe := range fieldErrs {
			if i > 0 {
				detail += "; "
			}
			detail += fe.Field() + " failed " + fe.Tag()
		}

		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails(detail))
	}

	return errors.Wrap(domainerrors.ErrValidationFailed, err.Error())
}
