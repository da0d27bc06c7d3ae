package routes

import (
	"net/http"

	"github.com/JaimeStill/assay/pkg/openapi"
)

// Route binds an HTTP method and pattern to a handler.
// OpenAPI, when set, documents the route in the generated API document.
// Public routes skip the guard passed to RegisterGuarded.
type Route struct {
	Method  string
	Pattern string
	Handler http.HandlerFunc
	OpenAPI *openapi.Operation
	Public  bool
}

func (r Route) handler(guard func(http.Handler) http.Handler) http.Handler {
	if guard == nil || r.Public {
		return r.Handler
	}
	return guard(r.Handler)
}
