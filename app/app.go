// Package app wires configuration, storage, the event bus and the modules
// into one HTTP server.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/Black-And-White-Club/doppelkopf/app/eventbus"
	"github.com/Black-And-White-Club/doppelkopf/app/modules/auth"
	"github.com/Black-And-White-Club/doppelkopf/app/modules/glossary"
	glossaryrouter "github.com/Black-And-White-Club/doppelkopf/app/modules/glossary/infrastructure/router"
	"github.com/Black-And-White-Club/doppelkopf/app/modules/player"
	playerrouter "github.com/Black-And-White-Club/doppelkopf/app/modules/player/infrastructure/router"
	"github.com/Black-And-White-Club/doppelkopf/app/modules/scorepad"
	scorepadevents "github.com/Black-And-White-Club/doppelkopf/app/modules/scorepad/domain/events"
	scorepadrouter "github.com/Black-And-White-Club/doppelkopf/app/modules/scorepad/infrastructure/router"
	"github.com/Black-And-White-Club/doppelkopf/app/shared/metrics"
	"github.com/Black-And-White-Club/doppelkopf/app/shared/observability"
	"github.com/Black-And-White-Club/doppelkopf/config"
	"github.com/Black-And-White-Club/doppelkopf/db/bundb"
	"github.com/go-chi/chi/v5"
	"github.com/uptrace/bun"
)

const serviceName = "doppelkopf"

// Modules holds every module of the app.
type Modules struct {
	Auth     *auth.Module
	Glossary *glossary.Module
	Player   *player.Module
	Scorepad *scorepad.Module
}

// App is the assembled application.
type App struct {
	Config        *config.Config
	Observability observability.Observability
	DB            *bun.DB
	EventBus      *eventbus.Bus
	Modules       Modules
	Router        chi.Router

	stream *eventbus.JetStream
}

// Initialize connects to Postgres and, when configured, NATS, then builds
// every module and mounts its routes.
func Initialize(ctx context.Context, cfg *config.Config) (*App, error) {
	obs := observability.Init(observability.Config{
		ServiceName: serviceName,
		Environment: cfg.Observability.Environment,
		LogLevel:    cfg.Observability.LogLevel,
	})
	logger := obs.Provider.Logger

	db, err := bundb.Open(ctx, cfg.Postgres.DSN)
	if err != nil {
		return nil, err
	}

	app, err := assemble(ctx, cfg, obs, db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	if cfg.NATS.URL != "" {
		js, err := eventbus.ConnectJetStream(ctx, cfg.NATS.URL, []string{scorepadevents.MatchRecordedTopic}, logger)
		if err != nil {
			_ = app.Close()
			return nil, fmt.Errorf("failed to connect to nats: %w", err)
		}
		app.stream = js
		forwarder := eventbus.NewForwarder(js, scorepadevents.MatchRecordedTopic, logger)
		app.EventBus.Consume("nats.forward_match_recorded", scorepadevents.MatchRecordedTopic, forwarder.Handle)
	}

	logger.InfoContext(ctx, "Application initialized",
		slog.String("addr", cfg.HTTP.Addr),
		slog.Bool("nats_forwarding", app.stream != nil),
		slog.Bool("admin_guard", app.Modules.Auth.Provider != nil),
	)
	return app, nil
}

// assemble builds the bus, the modules and the router on an open database.
func assemble(ctx context.Context, cfg *config.Config, obs observability.Observability, db *bun.DB) (*App, error) {
	reg := obs.Registry.Prometheus

	bus, err := eventbus.New(obs.Provider.Logger, reg)
	if err != nil {
		return nil, err
	}

	opMetrics := metrics.NewPrometheus(reg, serviceName)

	authModule := auth.NewAuthModule(ctx, obs, auth.Config{
		Secret:         cfg.Auth.Secret,
		DefaultTTL:     cfg.Auth.DefaultTTL,
		AllowedOrigins: cfg.HTTP.AllowedOrigins,
		RateLimit:      cfg.HTTP.RateLimit,
		RateBurst:      cfg.HTTP.RateBurst,
	})

	router := newRouter(obs, authModule.CORS, cfg.Observability.MetricsEnabled)

	playerModule := player.NewPlayerModule(ctx, obs, db, opMetrics, router, playerrouter.Config{
		Write: authModule.Write,
		Admin: authModule.Admin,
	})
	glossaryModule := glossary.NewGlossaryModule(ctx, obs, db, opMetrics, router, glossaryrouter.Config{
		Write: authModule.Write,
		Admin: authModule.Admin,
	})
	scorepadModule := scorepad.NewScorepadModule(ctx, obs, db, opMetrics, bus, playerModule.Repo, router, scorepadrouter.Config{
		Write: authModule.Write,
	})

	return &App{
		Config:        cfg,
		Observability: obs,
		DB:            db,
		EventBus:      bus,
		Router:        router,
		Modules: Modules{
			Auth:     authModule,
			Glossary: glossaryModule,
			Player:   playerModule,
			Scorepad: scorepadModule,
		},
	}, nil
}

// Handler returns the root HTTP handler.
func (a *App) Handler() http.Handler {
	return a.Router
}

// Close releases the bus, the NATS connection and the database.
func (a *App) Close() error {
	var firstErr error
	keep := func(err error) {
		if err != nil && firstErr == nil {
			firstErr = err
		}
	}

	keep(a.EventBus.Close())
	if a.stream != nil {
		keep(a.stream.Close())
	}
	keep(a.DB.Close())
	return firstErr
}
