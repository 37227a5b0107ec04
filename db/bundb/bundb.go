// Package bundb opens the Postgres connection pool and runs the module
// migrations.
package bundb

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
)

// Open connects to Postgres through pgdriver and pings it.
func Open(ctx context.Context, dsn string) (*bun.DB, error) {
	db := BunDB(sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(dsn))))
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}

// BunDB wraps an existing pool in the Postgres dialect.
func BunDB(sqldb *sql.DB) *bun.DB {
	return bun.NewDB(sqldb, pgdialect.New())
}
