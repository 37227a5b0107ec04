package glossaryrouter

import (
	glossaryhandlers "github.com/Black-And-White-Club/doppelkopf/app/modules/glossary/infrastructure/handlers"
	"github.com/Black-And-White-Club/doppelkopf/app/shared/httputil"
	"github.com/go-chi/chi/v5"
)

// Config selects the middleware guarding mutating routes.
type Config struct {
	// Write wraps every mutating route (rate limiting).
	Write []httputil.Middleware
	// Admin additionally wraps destructive routes.
	Admin []httputil.Middleware
}

// Mount registers the glossary routes under /api/terms.
func Mount(r chi.Router, h glossaryhandlers.Handlers, cfg Config) {
	r.Route("/api/terms", func(r chi.Router) {
		r.Get("/", h.HandleListTerms)
		r.Get("/{value}", h.HandleGetTerm)

		r.Group(func(r chi.Router) {
			r.Use(cfg.Write...)
			r.Post("/", h.HandleAddTerm)

			r.Group(func(r chi.Router) {
				r.Use(cfg.Admin...)
				r.Delete("/{id}", h.HandleDeleteTerm)
			})
		})
	})
}
