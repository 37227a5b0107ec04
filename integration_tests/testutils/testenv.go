package testutils

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/Black-And-White-Club/doppelkopf/db/bundb"
	"github.com/Black-And-White-Club/doppelkopf/integration_tests/containers"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/uptrace/bun"
)

// appTables are truncated between tests. Migration bookkeeping tables are kept.
var appTables = []string{"matches", "scorepads", "players", "terms"}

// TestEnvironment holds a migrated Postgres database for integration tests.
type TestEnvironment struct {
	Ctx         context.Context
	Cancel      context.CancelFunc
	PgContainer *postgres.PostgresContainer
	DB          *bun.DB
	DSN         string
}

// NewTestEnvironment starts Postgres and applies every module migration.
func NewTestEnvironment() (*TestEnvironment, error) {
	ctx, cancel := context.WithCancel(context.Background())

	pgContainer, dsn, err := containers.SetupPostgresContainer(ctx)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("failed to setup postgres container: %w", err)
	}

	sqlDB, err := sql.Open("pgx", dsn)
	if err != nil {
		_ = pgContainer.Terminate(ctx)
		cancel()
		return nil, fmt.Errorf("failed to open sql DB connection: %w", err)
	}
	db := bundb.BunDB(sqlDB)

	if err := bundb.Migrate(ctx, db, slog.New(slog.NewTextHandler(io.Discard, nil))); err != nil {
		_ = db.Close()
		_ = pgContainer.Terminate(ctx)
		cancel()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &TestEnvironment{
		Ctx:         ctx,
		Cancel:      cancel,
		PgContainer: pgContainer,
		DB:          db,
		DSN:         dsn,
	}, nil
}

// Reset truncates every application table.
func (env *TestEnvironment) Reset(ctx context.Context) error {
	query := fmt.Sprintf("TRUNCATE TABLE %s CASCADE", strings.Join(appTables, ", "))
	if _, err := env.DB.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("failed to truncate tables: %w", err)
	}
	return nil
}

// Cleanup closes the database and terminates the container.
func (env *TestEnvironment) Cleanup() {
	if env.DB != nil {
		_ = env.DB.Close()
	}
	if env.PgContainer != nil {
		_ = env.PgContainer.Terminate(context.Background())
	}
	env.Cancel()
}

// TestWriter wraps a testing.T to implement io.Writer for slog.
type TestWriter struct {
	T *testing.T
}

func (tw TestWriter) Write(p []byte) (n int, err error) {
	tw.T.Log(strings.TrimRight(string(p), "\n"))
	return len(p), nil
}

// TestLogger returns a debug logger writing to the test output.
func TestLogger(t *testing.T) *slog.Logger {
	return slog.New(slog.NewTextHandler(TestWriter{T: t}, &slog.HandlerOptions{Level: slog.LevelDebug}))
}
