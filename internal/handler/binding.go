package handler

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"

	apperrors "github.com/velora-studio/booking-api/pkg/errors"
)

// BindingError converts a gin binding failure into the application's
// validation error shape so clients get per-field messages instead of the
// raw validator output.
func BindingError(err error) *apperrors.AppError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return apperrors.Validation("invalid request body", nil)
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[strings.ToLower(fe.Field())] = bindingMessage(fe)
	}
	return apperrors.Validation("invalid request body", fields)
}

func bindingMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "oneof":
		return "must be one of: " + fe.Param()
	case "gte":
		return "must be at least " + fe.Param()
	default:
		return "is invalid"
	}
}
