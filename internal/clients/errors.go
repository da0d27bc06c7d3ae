package clients

import (
	"errors"
	"net/http"
)

// Domain errors for client operations.
var (
	ErrNotFound   = errors.New("client not found")
	ErrDuplicate  = errors.New("client email already exists")
	ErrValidation = errors.New("invalid client")
	ErrInvalidID  = errors.New("invalid client id")
)

// MapHTTPStatus maps client domain errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrDuplicate) {
		return http.StatusConflict
	}
	if errors.Is(err, ErrValidation) || errors.Is(err, ErrInvalidID) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
