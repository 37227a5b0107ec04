package player

import (
	"context"

	playerservice "github.com/Black-And-White-Club/doppelkopf/app/modules/player/application"
	playerhandlers "github.com/Black-And-White-Club/doppelkopf/app/modules/player/infrastructure/handlers"
	playerdb "github.com/Black-And-White-Club/doppelkopf/app/modules/player/infrastructure/repositories"
	playerrouter "github.com/Black-And-White-Club/doppelkopf/app/modules/player/infrastructure/router"
	"github.com/Black-And-White-Club/doppelkopf/app/shared/metrics"
	"github.com/Black-And-White-Club/doppelkopf/app/shared/observability"
	"github.com/go-chi/chi/v5"
	"github.com/uptrace/bun"
)

// Module represents the player module. Repo is exposed for the scorepad
// module, which seats players by id.
type Module struct {
	PlayerService playerservice.Service
	Repo          playerdb.Repository
}

// NewPlayerModule wires the player repository, service and HTTP routes.
func NewPlayerModule(
	ctx context.Context,
	obs observability.Observability,
	db *bun.DB,
	m metrics.OperationMetrics,
	httpRouter chi.Router,
	routes playerrouter.Config,
) *Module {
	logger := obs.Provider.Logger
	tracer := obs.Registry.Tracer

	logger.InfoContext(ctx, "player.NewPlayerModule initializing")

	repo := playerdb.NewRepository(db)
	service := playerservice.NewPlayerService(repo, logger, m, tracer, db)

	if httpRouter != nil {
		playerrouter.Mount(httpRouter, playerhandlers.NewPlayerHandlers(service, logger, tracer), routes)
	}

	return &Module{PlayerService: service, Repo: repo}
}
