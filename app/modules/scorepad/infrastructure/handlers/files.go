package scorepadhandlers

import (
	"fmt"
	"net/http"
	"strconv"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

func (h *ScorepadHandlers) HandleExportXLSX(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "ScorepadHandlers.HandleExportXLSX")
	defer span.End()

	id, ok := h.scorepadID(w, r)
	if !ok {
		return
	}

	data, err := h.service.ExportXLSX(ctx, id)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "scorepad-"+id.String()+".xlsx"))
	writeBytes(w, xlsxContentType, data)
}

func (h *ScorepadHandlers) HandleRenderChart(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "ScorepadHandlers.HandleRenderChart")
	defer span.End()

	id, ok := h.scorepadID(w, r)
	if !ok {
		return
	}

	png, err := h.service.RenderChart(ctx, id)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	w.Header().Set("Cache-Control", "no-cache")
	writeBytes(w, "image/png", png)
}

func writeBytes(w http.ResponseWriter, contentType string, data []byte) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
