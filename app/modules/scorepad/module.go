package scorepad

import (
	"context"

	"github.com/Black-And-White-Club/doppelkopf/app/eventbus"
	playerdb "github.com/Black-And-White-Club/doppelkopf/app/modules/player/infrastructure/repositories"
	scorepadservice "github.com/Black-And-White-Club/doppelkopf/app/modules/scorepad/application"
	scorepadhandlers "github.com/Black-And-White-Club/doppelkopf/app/modules/scorepad/infrastructure/handlers"
	scorepaddb "github.com/Black-And-White-Club/doppelkopf/app/modules/scorepad/infrastructure/repositories"
	scorepadrouter "github.com/Black-And-White-Club/doppelkopf/app/modules/scorepad/infrastructure/router"
	scorepadsubscribers "github.com/Black-And-White-Club/doppelkopf/app/modules/scorepad/infrastructure/subscribers"
	"github.com/Black-And-White-Club/doppelkopf/app/shared/metrics"
	"github.com/Black-And-White-Club/doppelkopf/app/shared/observability"
	"github.com/go-chi/chi/v5"
	"github.com/uptrace/bun"
)

// Module represents the scorepad module.
type Module struct {
	ScorepadService scorepadservice.Service
	Stats           *scorepadsubscribers.MatchStats
}

// NewScorepadModule wires the scorepad repository, service, event
// consumers and HTTP routes. Seating resolves players through playerRepo.
func NewScorepadModule(
	ctx context.Context,
	obs observability.Observability,
	db *bun.DB,
	m metrics.OperationMetrics,
	bus *eventbus.Bus,
	playerRepo playerdb.Repository,
	httpRouter chi.Router,
	routes scorepadrouter.Config,
) *Module {
	logger := obs.Provider.Logger
	tracer := obs.Registry.Tracer

	logger.InfoContext(ctx, "scorepad.NewScorepadModule initializing")

	repo := scorepaddb.NewRepository(db)
	service := scorepadservice.NewScorepadService(repo, playerRepo, bus, logger, m, tracer, db)

	stats := scorepadsubscribers.NewMatchStats(obs.Registry.Prometheus, logger)
	stats.Subscribe(bus)

	if httpRouter != nil {
		scorepadrouter.Mount(httpRouter, scorepadhandlers.NewScorepadHandlers(service, logger, tracer), routes)
	}

	return &Module{ScorepadService: service, Stats: stats}
}
