// internal/utils/validator.go
package utils

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/javajoker/collaboration-service/internal/apperror"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("latlon", validateLatLon)
}

// ValidateStruct runs struct-tag validation. Failures match apperror.ErrValidation
// and still unwrap to validator.ValidationErrors.
func ValidateStruct(s interface{}) error {
	if err := validate.Struct(s); err != nil {
		return &RequestValidationError{err: err}
	}
	return nil
}

// RequestValidationError carries the validator's field errors.
type RequestValidationError struct {
	err error
}

func (e *RequestValidationError) Error() string {
	return apperror.ErrValidation.Error() + ": " + e.err.Error()
}

func (e *RequestValidationError) Unwrap() []error {
	return []error{apperror.ErrValidation, e.err}
}

func validateLatLon(fl validator.FieldLevel) bool {
	_, err := ParseLocation(fl.Field().String())
	return err == nil
}

// Validation tags for common fields
type ValidationError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Message string `json:"message"`
}

func GetValidationErrors(err error) []ValidationError {
	var validationErrors []ValidationError

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		for _, e := range validationErrs {
			validationErrors = append(validationErrors, ValidationError{
				Field:   strings.ToLower(e.Field()),
				Tag:     e.Tag(),
				Message: getValidationMessage(e),
			})
		}
	}

	return validationErrors
}

func getValidationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "email":
		return "Invalid email format"
	case "min":
		return e.Field() + " must be at least " + e.Param()
	case "max":
		return e.Field() + " must be at most " + e.Param()
	case "gt":
		return e.Field() + " must be greater than " + e.Param()
	case "latlon":
		return e.Field() + " must be formatted as 'latitude,longitude'"
	default:
		return e.Field() + " is invalid"
	}
}
