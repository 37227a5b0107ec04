package playerrouter

import (
	playerhandlers "github.com/Black-And-White-Club/doppelkopf/app/modules/player/infrastructure/handlers"
	"github.com/Black-And-White-Club/doppelkopf/app/shared/httputil"
	"github.com/go-chi/chi/v5"
)

// Config selects the middleware guarding player creation.
type Config struct {
	Write []httputil.Middleware
	Admin []httputil.Middleware
}

// Mount registers the player routes under /api/players.
func Mount(r chi.Router, h playerhandlers.Handlers, cfg Config) {
	r.Route("/api/players", func(r chi.Router) {
		r.Get("/", h.HandleListPlayers)
		r.Get("/{id}", h.HandleGetPlayer)

		r.With(cfg.Write...).With(cfg.Admin...).Post("/", h.HandleCreatePlayer)
	})
}
