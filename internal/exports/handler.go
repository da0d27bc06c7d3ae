package exports

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/JaimeStill/assay/pkg/handlers"
	"github.com/JaimeStill/assay/pkg/routes"
)

// Handler provides HTTP endpoints for export operations.
type Handler struct {
	sys    System
	logger *slog.Logger
}

// NewHandler creates a Handler with the given system and logger.
func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		logger: logger.With("handler", "exports"),
	}
}

// Routes returns the route group definition for export endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/exports",
		Tags:   []string{"Exports"},
		Routes: []routes.Route{
			{Method: "POST", Pattern: "", Handler: h.Create, OpenAPI: createOp},
			{Method: "GET", Pattern: "", Handler: h.List, OpenAPI: listOp},
			{Method: "GET", Pattern: "/{name}", Handler: h.Download, OpenAPI: downloadOp},
			{Method: "DELETE", Pattern: "/{name}", Handler: h.Delete, OpenAPI: deleteOp},
		},
	}
}

// Create writes a new snapshot of every client and evaluation.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	export, err := h.sys.Create(r.Context())
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, export)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	exports, err := h.sys.List(r.Context())
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, exports)
}

// Download streams a stored snapshot as an attachment.
func (h *Handler) Download(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")

	body, err := h.sys.Download(r.Context(), name)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}
	defer body.Close()

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	w.WriteHeader(http.StatusOK)

	if _, err := io.Copy(w, body); err != nil {
		h.logger.Error("export download interrupted", "name", name, "error", err)
	}
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")

	if err := h.sys.Delete(r.Context(), name); err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, handlers.Message{Msg: "Export deleted successfully!"})
}
