package exceptions

import (
	"strings"

	"simoly-service/internal/pkg/constvars"

	"github.com/go-playground/validator/v10"
)

var validationMessages = map[string]string{
	"required": "is required",
	"min":      "is below the allowed minimum",
	"max":      "is above the allowed maximum",
	"oneof":    "must be one of the allowed values",
}

// FormatFirstValidationError turns the first validator error into a message a
// client can act on. Non-validator errors fall back to the generic message.
func FormatFirstValidationError(err error) string {
	if err == nil {
		return constvars.ErrClientCannotProcessRequest
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok || len(validationErrors) == 0 {
		return constvars.ErrClientCannotProcessRequest
	}

	firstErr := validationErrors[0]
	fieldName := strings.ToLower(firstErr.Field())
	message, ok := validationMessages[firstErr.Tag()]
	if !ok {
		message = "is invalid"
	}
	return fieldName + " " + message
}
