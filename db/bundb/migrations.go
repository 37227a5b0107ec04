package bundb

import (
	"context"
	"fmt"
	"log/slog"

	glossarymigrations "github.com/Black-And-White-Club/doppelkopf/app/modules/glossary/infrastructure/repositories/migrations"
	playermigrations "github.com/Black-And-White-Club/doppelkopf/app/modules/player/infrastructure/repositories/migrations"
	scorepadmigrations "github.com/Black-And-White-Club/doppelkopf/app/modules/scorepad/infrastructure/repositories/migrations"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/migrate"
)

// ModuleMigrator is the migrator of one module. Each module keeps its own
// bookkeeping table so rollbacks never cross modules.
type ModuleMigrator struct {
	Name     string
	Migrator *migrate.Migrator
}

type moduleMigrations struct {
	name       string
	migrations *migrate.Migrations
}

func registered() []moduleMigrations {
	return []moduleMigrations{
		{"player", playermigrations.Migrations},
		{"glossary", glossarymigrations.Migrations},
		{"scorepad", scorepadmigrations.Migrations},
	}
}

// Migrators returns the module migrators in the order they must run.
func Migrators(db *bun.DB) []ModuleMigrator {
	modules := registered()
	out := make([]ModuleMigrator, 0, len(modules))
	for _, m := range modules {
		out = append(out, ModuleMigrator{
			Name: m.name,
			Migrator: migrate.NewMigrator(db, m.migrations,
				migrate.WithTableName("bun_migrations_"+m.name),
				migrate.WithLocksTableName("bun_migration_locks_"+m.name),
			),
		})
	}
	return out
}

// Migrate initializes the bookkeeping tables and applies every pending
// migration, module by module.
func Migrate(ctx context.Context, db *bun.DB, logger *slog.Logger) error {
	for _, m := range Migrators(db) {
		if err := m.Migrator.Init(ctx); err != nil {
			return fmt.Errorf("failed to initialize %s migrations: %w", m.Name, err)
		}
		group, err := m.Migrator.Migrate(ctx)
		if err != nil {
			return fmt.Errorf("failed to run %s migrations: %w", m.Name, err)
		}
		if group.IsZero() {
			logger.DebugContext(ctx, "No new migrations", slog.String("module", m.Name))
			continue
		}
		logger.InfoContext(ctx, "Migrated module", slog.String("module", m.Name), slog.String("group", group.String()))
	}
	return nil
}
