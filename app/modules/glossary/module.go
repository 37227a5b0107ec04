package glossary

import (
	"context"

	glossaryservice "github.com/Black-And-White-Club/doppelkopf/app/modules/glossary/application"
	glossaryhandlers "github.com/Black-And-White-Club/doppelkopf/app/modules/glossary/infrastructure/handlers"
	glossarydb "github.com/Black-And-White-Club/doppelkopf/app/modules/glossary/infrastructure/repositories"
	glossaryrouter "github.com/Black-And-White-Club/doppelkopf/app/modules/glossary/infrastructure/router"
	"github.com/Black-And-White-Club/doppelkopf/app/shared/metrics"
	"github.com/Black-And-White-Club/doppelkopf/app/shared/observability"
	"github.com/go-chi/chi/v5"
	"github.com/uptrace/bun"
)

// Module represents the glossary module.
type Module struct {
	GlossaryService glossaryservice.Service
	observability   observability.Observability
}

// NewGlossaryModule wires the term repository, service and HTTP routes.
func NewGlossaryModule(
	ctx context.Context,
	obs observability.Observability,
	db *bun.DB,
	m metrics.OperationMetrics,
	httpRouter chi.Router,
	routes glossaryrouter.Config,
) *Module {
	logger := obs.Provider.Logger
	tracer := obs.Registry.Tracer

	logger.InfoContext(ctx, "glossary.NewGlossaryModule initializing")

	repo := glossarydb.NewRepository(db)
	service := glossaryservice.NewGlossaryService(repo, logger, m, tracer, db)
	handlers := glossaryhandlers.NewGlossaryHandlers(service, logger, tracer)

	if httpRouter != nil {
		glossaryrouter.Mount(httpRouter, handlers, routes)
	}

	return &Module{
		GlossaryService: service,
		observability:   obs,
	}
}
