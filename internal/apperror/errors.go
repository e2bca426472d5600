// internal/apperror/errors.go
package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrNotFound                 = errors.New("resource not found")
	ErrSellerNotFound           = errors.New("seller not found")
	ErrProductNotFound          = errors.New("product not found")
	ErrCategoryNotFound         = errors.New("category not found")
	ErrBrandNotFound            = errors.New("brand not found")
	ErrInvalidLocationFormat    = errors.New("invalid format for location, expected 'latitude,longitude'")
	ErrInvalidCollaborationType = errors.New("invalid collaboration type")
	ErrValidation               = errors.New("validation failed")
	ErrConflict                 = errors.New("resource already exists")
	ErrUpstreamFailure          = errors.New("upstream service failure")
	ErrStorageFailure           = errors.New("storage failure")
)

// Storage wraps a persistence error with the failing operation. The result
// matches both ErrStorageFailure and the cause.
func Storage(op string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w: %w", op, ErrStorageFailure, err)
}

// Validation wraps err (or a plain message) so it matches ErrValidation.
func Validation(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// Code is the machine-readable error code used in API responses.
func Code(err error) string {
	switch {
	case errors.Is(err, ErrSellerNotFound), errors.Is(err, ErrProductNotFound),
		errors.Is(err, ErrCategoryNotFound), errors.Is(err, ErrBrandNotFound),
		errors.Is(err, ErrNotFound):
		return "NOT_FOUND"
	case errors.Is(err, ErrInvalidLocationFormat):
		return "INVALID_LOCATION_FORMAT"
	case errors.Is(err, ErrInvalidCollaborationType):
		return "INVALID_COLLABORATION_TYPE"
	case errors.Is(err, ErrValidation):
		return "VALIDATION_ERROR"
	case errors.Is(err, ErrConflict):
		return "CONFLICT"
	case errors.Is(err, ErrUpstreamFailure):
		return "UPSTREAM_ERROR"
	default:
		return "INTERNAL_ERROR"
	}
}

// HTTPStatus maps an error to the status code the API reports for it.
func HTTPStatus(err error) int {
	switch Code(err) {
	case "NOT_FOUND":
		return http.StatusNotFound
	case "INVALID_LOCATION_FORMAT", "INVALID_COLLABORATION_TYPE", "VALIDATION_ERROR":
		return http.StatusBadRequest
	case "CONFLICT":
		return http.StatusConflict
	case "UPSTREAM_ERROR":
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
