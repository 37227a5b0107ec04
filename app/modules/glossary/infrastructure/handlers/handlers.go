package glossaryhandlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	glossaryservice "github.com/Black-And-White-Club/doppelkopf/app/modules/glossary/application"
	"github.com/Black-And-White-Club/doppelkopf/app/shared/httputil"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"
)

// GlossaryHandlers implements the Handlers interface.
type GlossaryHandlers struct {
	service glossaryservice.Service
	logger  *slog.Logger
	tracer  trace.Tracer
}

// NewGlossaryHandlers creates a new GlossaryHandlers instance.
func NewGlossaryHandlers(service glossaryservice.Service, logger *slog.Logger, tracer trace.Tracer) Handlers {
	return &GlossaryHandlers{
		service: service,
		logger:  logger,
		tracer:  tracer,
	}
}

// AddTermRequest is the body of POST /api/terms.
type AddTermRequest struct {
	Value string `json:"value"`
}

// DeleteTermResponse is the body returned by DELETE /api/terms/{id}.
type DeleteTermResponse struct {
	Deleted bool `json:"deleted"`
}

func (h *GlossaryHandlers) HandleListTerms(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "GlossaryHandlers.HandleListTerms")
	defer span.End()

	terms, err := h.service.ListTerms(ctx)
	if err != nil {
		httputil.WriteError(w, r, h.logger, http.StatusInternalServerError, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, terms)
}

func (h *GlossaryHandlers) HandleGetTerm(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "GlossaryHandlers.HandleGetTerm")
	defer span.End()

	term, err := h.service.FindTermByValue(ctx, chi.URLParam(r, "value"))
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, term)
}

func (h *GlossaryHandlers) HandleAddTerm(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "GlossaryHandlers.HandleAddTerm")
	defer span.End()

	var req AddTermRequest
	if err := httputil.DecodeJSON(w, r, &req); err != nil {
		httputil.WriteError(w, r, h.logger, http.StatusBadRequest, err)
		return
	}

	term, err := h.service.AddTerm(ctx, req.Value)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, term)
}

func (h *GlossaryHandlers) HandleDeleteTerm(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "GlossaryHandlers.HandleDeleteTerm")
	defer span.End()

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, r, h.logger, http.StatusBadRequest, fmt.Errorf("invalid term id: %w", err))
		return
	}

	deleted, err := h.service.DeleteTermByID(ctx, id)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, DeleteTermResponse{Deleted: deleted})
}

func (h *GlossaryHandlers) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, glossaryservice.ErrTermNotFound):
		httputil.WriteError(w, r, h.logger, http.StatusNotFound, err)
	case errors.Is(err, glossaryservice.ErrEmptyTerm):
		httputil.WriteError(w, r, h.logger, http.StatusBadRequest, err)
	default:
		httputil.WriteError(w, r, h.logger, http.StatusInternalServerError, err)
	}
}
