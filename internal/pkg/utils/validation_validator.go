package utils

import (
	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("response_status", validateResponseStatus)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateResponseStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == "draft" || value == "completed"
}
