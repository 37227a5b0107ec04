package scorepadhandlers

import (
	"net/http"

	scorepadtypes "github.com/Black-And-White-Club/doppelkopf/app/modules/scorepad/domain/types"
	"github.com/Black-And-White-Club/doppelkopf/app/shared/httputil"
)

func (h *ScorepadHandlers) HandleRecordMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "ScorepadHandlers.HandleRecordMatch")
	defer span.End()

	id, ok := h.scorepadID(w, r)
	if !ok {
		return
	}

	var req scorepadtypes.MatchInput
	if err := httputil.DecodeJSON(w, r, &req); err != nil {
		h.writeBadRequest(w, r, err)
		return
	}

	match, err := h.service.RecordMatch(ctx, id, req)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, match)
}

func (h *ScorepadHandlers) HandleGetBoard(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "ScorepadHandlers.HandleGetBoard")
	defer span.End()

	id, ok := h.scorepadID(w, r)
	if !ok {
		return
	}

	board, err := h.service.GetBoard(ctx, id)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, board)
}

func (h *ScorepadHandlers) HandleGetForm(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "ScorepadHandlers.HandleGetForm")
	defer span.End()

	id, ok := h.scorepadID(w, r)
	if !ok {
		return
	}

	form, err := h.service.GetForm(ctx, id)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, form)
}
