package scorepadhandlers

import (
	"errors"
	"fmt"
	"net/http"

	scorepadservice "github.com/Black-And-White-Club/doppelkopf/app/modules/scorepad/application"
	scorepadtypes "github.com/Black-And-White-Club/doppelkopf/app/modules/scorepad/domain/types"
	"github.com/Black-And-White-Club/doppelkopf/app/shared/httputil"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func (h *ScorepadHandlers) scorepadID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		h.writeBadRequest(w, r, fmt.Errorf("invalid scorepad id: %w", err))
		return uuid.Nil, false
	}
	return id, true
}

func (h *ScorepadHandlers) writeBadRequest(w http.ResponseWriter, r *http.Request, err error) {
	httputil.WriteError(w, r, h.logger, http.StatusBadRequest, err)
}

func (h *ScorepadHandlers) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, scorepadservice.ErrScorepadNotFound):
		status = http.StatusNotFound
	case errors.Is(err, scorepadtypes.ErrInvalidMatch):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, scorepadservice.ErrConcurrentMatch):
		status = http.StatusConflict
	case errors.Is(err, scorepadservice.ErrEmptyName),
		errors.Is(err, scorepadservice.ErrInvalidPlayers),
		errors.Is(err, scorepadservice.ErrInvalidPlayedAt):
		status = http.StatusBadRequest
	}
	httputil.WriteError(w, r, h.logger, status, err)
}
