package serverutils

import (
	"fmt"

	"notes-be/internal/pkg/apperrors"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateRequest checks the `validate` tags on a request DTO and turns
// the first failure into a ValidationError.
func ValidateRequest(req interface{}) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
		e := errs[0]
		return apperrors.Validation(fmt.Sprintf("field '%s' failed on '%s'", e.Field(), e.Tag()))
	}
	return apperrors.Validation("invalid request body")
}
