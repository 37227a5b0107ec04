package playerhandlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	playerservice "github.com/Black-And-White-Club/doppelkopf/app/modules/player/application"
	"github.com/Black-And-White-Club/doppelkopf/app/shared/httputil"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"
)

// PlayerHandlers implements the Handlers interface.
type PlayerHandlers struct {
	service playerservice.Service
	logger  *slog.Logger
	tracer  trace.Tracer
}

// NewPlayerHandlers creates a new PlayerHandlers instance.
func NewPlayerHandlers(service playerservice.Service, logger *slog.Logger, tracer trace.Tracer) Handlers {
	return &PlayerHandlers{
		service: service,
		logger:  logger,
		tracer:  tracer,
	}
}

// CreatePlayerRequest is the body of POST /api/players.
type CreatePlayerRequest struct {
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

func (h *PlayerHandlers) HandleListPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "PlayerHandlers.HandleListPlayers")
	defer span.End()

	players, err := h.service.ListPlayers(ctx)
	if err != nil {
		httputil.WriteError(w, r, h.logger, http.StatusInternalServerError, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, players)
}

func (h *PlayerHandlers) HandleGetPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "PlayerHandlers.HandleGetPlayer")
	defer span.End()

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, r, h.logger, http.StatusBadRequest, fmt.Errorf("invalid player id: %w", err))
		return
	}

	player, err := h.service.GetPlayer(ctx, id)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, player)
}

func (h *PlayerHandlers) HandleCreatePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "PlayerHandlers.HandleCreatePlayer")
	defer span.End()

	var req CreatePlayerRequest
	if err := httputil.DecodeJSON(w, r, &req); err != nil {
		httputil.WriteError(w, r, h.logger, http.StatusBadRequest, err)
		return
	}

	player, err := h.service.CreatePlayer(ctx, req.Name, req.Picture)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, player)
}

func (h *PlayerHandlers) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, playerservice.ErrPlayerNotFound):
		httputil.WriteError(w, r, h.logger, http.StatusNotFound, err)
	case errors.Is(err, playerservice.ErrEmptyName):
		httputil.WriteError(w, r, h.logger, http.StatusBadRequest, err)
	default:
		httputil.WriteError(w, r, h.logger, http.StatusInternalServerError, err)
	}
}
