package scorepadrouter

import (
	scorepadhandlers "github.com/Black-And-White-Club/doppelkopf/app/modules/scorepad/infrastructure/handlers"
	"github.com/Black-And-White-Club/doppelkopf/app/shared/httputil"
	"github.com/go-chi/chi/v5"
)

// Config selects the middleware guarding mutating routes.
type Config struct {
	Write []httputil.Middleware
}

// Mount registers the scorepad routes under /api/scorepads.
func Mount(r chi.Router, h scorepadhandlers.Handlers, cfg Config) {
	r.Route("/api/scorepads", func(r chi.Router) {
		r.Get("/", h.HandleListScorepads)
		r.With(cfg.Write...).Post("/", h.HandleCreateScorepad)

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.HandleGetScorepad)
			r.With(cfg.Write...).Post("/matches", h.HandleRecordMatch)
			r.Get("/board", h.HandleGetBoard)
			r.Get("/form", h.HandleGetForm)
			r.Get("/export.xlsx", h.HandleExportXLSX)
			r.Get("/chart.png", h.HandleRenderChart)
		})
	})
}
