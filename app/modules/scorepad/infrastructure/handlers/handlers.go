package scorepadhandlers

import (
	"log/slog"
	"net/http"

	scorepadservice "github.com/Black-And-White-Club/doppelkopf/app/modules/scorepad/application"
	"github.com/Black-And-White-Club/doppelkopf/app/shared/httputil"
	"go.opentelemetry.io/otel/trace"
)

// ScorepadHandlers implements the Handlers interface.
type ScorepadHandlers struct {
	service scorepadservice.Service
	logger  *slog.Logger
	tracer  trace.Tracer
}

// NewScorepadHandlers creates a new ScorepadHandlers instance.
func NewScorepadHandlers(service scorepadservice.Service, logger *slog.Logger, tracer trace.Tracer) Handlers {
	return &ScorepadHandlers{
		service: service,
		logger:  logger,
		tracer:  tracer,
	}
}

var _ Handlers = (*ScorepadHandlers)(nil)

func (h *ScorepadHandlers) HandleListScorepads(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "ScorepadHandlers.HandleListScorepads")
	defer span.End()

	scorepads, err := h.service.ListScorepads(ctx)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, scorepads)
}

func (h *ScorepadHandlers) HandleCreateScorepad(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "ScorepadHandlers.HandleCreateScorepad")
	defer span.End()

	var req scorepadservice.CreateScorepadInput
	if err := httputil.DecodeJSON(w, r, &req); err != nil {
		h.writeBadRequest(w, r, err)
		return
	}

	scorepad, err := h.service.CreateScorepad(ctx, req)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, scorepad)
}

func (h *ScorepadHandlers) HandleGetScorepad(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "ScorepadHandlers.HandleGetScorepad")
	defer span.End()

	id, ok := h.scorepadID(w, r)
	if !ok {
		return
	}

	scorepad, err := h.service.GetScorepad(ctx, id)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, scorepad)
}
