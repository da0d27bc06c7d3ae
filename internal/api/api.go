// Package api assembles the API module with all domain systems and route registration.
package api

import (
	"fmt"
	"net/http"

	"github.com/JaimeStill/assay/internal/config"
	"github.com/JaimeStill/assay/internal/infrastructure"
	"github.com/JaimeStill/assay/pkg/middleware"
	"github.com/JaimeStill/assay/pkg/module"
)

// NewModule creates the API module with all domain handlers and middleware.
func NewModule(cfg *config.Config, infra *infrastructure.Infrastructure) (*module.Module, error) {
	runtime := NewRuntime(cfg, infra)
	domain := NewDomain(runtime)
	groups := domain.Groups()

	specBytes, err := NewSpec(cfg, groups).JSON()
	if err != nil {
		return nil, fmt.Errorf("marshal openapi spec: %w", err)
	}

	mux := http.NewServeMux()
	registerRoutes(mux, domain.Guard(runtime), groups, specBytes)

	m := module.New(cfg.API.BasePath, mux)
	m.Use(middleware.CORS(&cfg.API.CORS))
	m.Use(middleware.Logger(runtime.Logger))

	return m, nil
}
