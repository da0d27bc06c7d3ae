package api

import (
	"github.com/JaimeStill/assay/internal/clients"
	"github.com/JaimeStill/assay/internal/config"
	"github.com/JaimeStill/assay/internal/evaluations"
	"github.com/JaimeStill/assay/internal/exports"
	"github.com/JaimeStill/assay/internal/users"
	"github.com/JaimeStill/assay/pkg/openapi"
	"github.com/JaimeStill/assay/pkg/routes"
)

// NewSpec builds the OpenAPI document for the given route groups.
func NewSpec(cfg *config.Config, groups []routes.Group) *openapi.Spec {
	spec := openapi.NewSpec(cfg.API.OpenAPI.Title, cfg.Version)
	spec.SetDescription(cfg.API.OpenAPI.Description)
	spec.AddServer(cfg.API.OpenAPI.Server(cfg.API.BasePath))

	spec.Components.AddSchemas(clients.Schemas())
	spec.Components.AddSchemas(evaluations.Schemas())
	spec.Components.AddSchemas(users.Schemas())
	spec.Components.AddSchemas(exports.Schemas())

	routes.Describe(spec, "", groups...)
	if cfg.Auth.Require {
		spec.SecureWith("bearerAuth", openapi.BearerJWT("Token issued by POST /auth/login"))
	}
	return spec
}
