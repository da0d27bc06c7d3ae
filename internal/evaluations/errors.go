package evaluations

import (
	"errors"
	"net/http"
)

// Domain errors for evaluation operations.
var (
	ErrNotFound   = errors.New("evaluation not found")
	ErrDuplicate  = errors.New("evaluation already exists")
	ErrValidation = errors.New("invalid evaluation")
	ErrInvalidID  = errors.New("invalid evaluation id")
)

// MapHTTPStatus maps evaluation domain errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicate):
		return http.StatusConflict
	case errors.Is(err, ErrValidation), errors.Is(err, ErrInvalidID):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
