package evaluations

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/JaimeStill/assay/pkg/handlers"
	"github.com/JaimeStill/assay/pkg/routes"
)

// CreatedResponse acknowledges a new evaluation.
type CreatedResponse struct {
	Msg        string      `json:"msg"`
	Evaluation *Evaluation `json:"evaluation"`
}

// UpdatedResponse acknowledges a category update.
type UpdatedResponse struct {
	Msg               string      `json:"msg"`
	UpdatedEvaluation *Evaluation `json:"updatedEvaluation"`
}

// Handler provides HTTP endpoints for evaluation operations.
type Handler struct {
	sys     System
	logger  *slog.Logger
	maxBody int64
}

// NewHandler creates a Handler with the given system, logger, and request body limit.
func NewHandler(sys System, logger *slog.Logger, maxBody int64) *Handler {
	return &Handler{
		sys:     sys,
		logger:  logger.With("handler", "evaluations"),
		maxBody: maxBody,
	}
}

// Routes returns the route group definition for evaluation endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/evaluations",
		Tags:   []string{"Evaluations"},
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.List, OpenAPI: listOp},
			{Method: "GET", Pattern: "/{id}", Handler: h.Find, OpenAPI: findOp},
			{Method: "POST", Pattern: "", Handler: h.Create, OpenAPI: createOp},
			{Method: "PUT", Pattern: "/{id}/categories", Handler: h.UpdateCategories, OpenAPI: updateCategoriesOp},
			{Method: "DELETE", Pattern: "/{id}", Handler: h.Delete, OpenAPI: deleteOp},
		},
	}
}

// List returns every stored evaluation.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	evals, err := h.sys.List(r.Context())
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, evals)
}

// Find returns a single evaluation by its UUID path parameter.
func (h *Handler) Find(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrInvalidID)
		return
	}

	e, err := h.sys.Find(r.Context(), id)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, e)
}

// Create scores and stores a new evaluation.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var cmd CreateCommand
	if err := handlers.DecodeJSON(w, r, h.maxBody, &cmd); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	e, err := h.sys.Create(r.Context(), cmd)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, CreatedResponse{
		Msg:        "Evaluation added successfully!",
		Evaluation: e,
	})
}

// UpdateCategories merges a partial category mapping into an evaluation
// and returns the rescored record.
func (h *Handler) UpdateCategories(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrInvalidID)
		return
	}

	var cmd UpdateCategoriesCommand
	if err := handlers.DecodeJSON(w, r, h.maxBody, &cmd); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	e, err := h.sys.UpdateCategories(r.Context(), id, cmd)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, UpdatedResponse{
		Msg:               "Evaluation updated successfully!",
		UpdatedEvaluation: e,
	})
}

// Delete removes an evaluation by its UUID path parameter.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrInvalidID)
		return
	}

	if err := h.sys.Delete(r.Context(), id); err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, handlers.Message{
		Msg: fmt.Sprintf("Evaluation %s deleted successfully!", id),
	})
}
