package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/Black-And-White-Club/doppelkopf/app/shared/attr"
)

const (
	shutdownTimeout   = 10 * time.Second
	readHeaderTimeout = 5 * time.Second
)

// Run serves HTTP and runs the event bus until ctx is cancelled, then shuts
// both down and closes the app.
func (a *App) Run(ctx context.Context) error {
	logger := a.Observability.Provider.Logger

	srv := &http.Server{
		Addr:              a.Config.HTTP.Addr,
		Handler:           a.Handler(),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	busErr := make(chan error, 1)
	go func() {
		busErr <- a.EventBus.Run(ctx)
	}()

	srvErr := make(chan error, 1)
	go func() {
		logger.InfoContext(ctx, "HTTP server starting", attr.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			srvErr <- err
		}
		close(srvErr)
	}()

	var runErr error
	select {
	case <-ctx.Done():
		logger.InfoContext(ctx, "Shutdown signal received")
	case err := <-srvErr:
		runErr = fmt.Errorf("http server failed: %w", err)
	case err := <-busErr:
		if err != nil {
			runErr = fmt.Errorf("event bus failed: %w", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.ErrorContext(shutdownCtx, "HTTP server shutdown failed", attr.Error(err))
	}
	if err := a.Close(); err != nil {
		logger.ErrorContext(shutdownCtx, "Failed to close app", attr.Error(err))
	}

	logger.InfoContext(shutdownCtx, "Application shut down gracefully")
	return runErr
}
