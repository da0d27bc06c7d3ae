package exports

import (
	"errors"
	"net/http"
)

// Domain errors for export operations.
var (
	ErrNotFound    = errors.New("export not found")
	ErrDuplicate   = errors.New("export already exists")
	ErrInvalidName = errors.New("export name must be a single .json file name")
)

// MapHTTPStatus maps export domain errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicate):
		return http.StatusConflict
	case errors.Is(err, ErrInvalidName):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
