package main

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"

	"github.com/JaimeStill/assay/internal/api"
	"github.com/JaimeStill/assay/internal/config"
	"github.com/JaimeStill/assay/internal/infrastructure"
	"github.com/JaimeStill/assay/pkg/middleware"
	"github.com/JaimeStill/assay/pkg/module"
	"github.com/JaimeStill/assay/web/scalar"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Modules struct {
	API  *module.Module
	Docs *module.Module
}

func NewModules(infra *infrastructure.Infrastructure, cfg *config.Config) (*Modules, error) {
	apiModule, err := api.NewModule(cfg, infra)
	if err != nil {
		return nil, err
	}

	docsModule := scalar.NewModule("/docs", cfg.API.BasePath+"/openapi.json")
	docsModule.Use(middleware.Logger(infra.Logger))

	return &Modules{
		API:  apiModule,
		Docs: docsModule,
	}, nil
}

func (m *Modules) Mount(router *module.Router) {
	router.Mount(m.API)
	router.Mount(m.Docs)
}

func buildRouter(infra *infrastructure.Infrastructure) *module.Router {
	router := module.NewRouter()
	router.Use(
		middleware.TraceID,
		middleware.Recovery(infra.Logger),
		infra.Metrics.Middleware,
	)

	router.HandleNative("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	router.HandleNative("GET /readyz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if pending := infra.Lifecycle.NotReady(); len(pending) > 0 {
			w.WriteHeader(http.StatusServiceUnavailable)
			json.NewEncoder(w).Encode(map[string]any{
				"status":  "not ready",
				"pending": pending,
			})
			return
		}
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]string{"status": "ready"})
	})

	router.Handle("GET /metrics", infra.Metrics.Handler())

	return router
}
