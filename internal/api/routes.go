package api

import (
	"net/http"

	"github.com/JaimeStill/assay/internal/users"
	"github.com/JaimeStill/assay/pkg/openapi"
	"github.com/JaimeStill/assay/pkg/routes"
)

// Groups returns the route groups of every registered domain.
func (d *Domain) Groups() []routes.Group {
	groups := []routes.Group{
		d.Clients.Handler().Routes(),
		d.Evaluations.Handler().Routes(),
		d.Users.Handler().Routes(),
	}
	if d.Exports != nil {
		groups = append(groups, d.Exports.Handler().Routes())
	}
	return groups
}

// Guard returns the bearer token middleware when authentication is
// required, otherwise nil.
func (d *Domain) Guard(runtime *Runtime) func(http.Handler) http.Handler {
	if !runtime.Auth.Require {
		return nil
	}
	return users.RequireToken(d.Tokens, runtime.Logger)
}

func registerRoutes(mux *http.ServeMux, guard func(http.Handler) http.Handler, groups []routes.Group, specBytes []byte) {
	routes.RegisterGuarded(mux, guard, groups...)
	mux.HandleFunc("GET /openapi.json", openapi.ServeSpec(specBytes))
}
