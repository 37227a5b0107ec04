package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/Black-And-White-Club/doppelkopf/config"
	"github.com/Black-And-White-Club/doppelkopf/db/bundb"
	"github.com/urfave/cli/v2"
)

func main() {
	cliApp := &cli.App{
		Name:  "bun",
		Usage: "database migrations for every module",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Value: "config.yaml", Usage: "path to the configuration file"},
		},
		Commands: []*cli.Command{
			newMultiModuleDBCommand(),
		},
	}

	if err := cliApp.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

// withMigrators loads the config, opens the database and hands the module
// migrators to fn.
func withMigrators(c *cli.Context, fn func(ctx context.Context, migrators []bundb.ModuleMigrator) error) error {
	cfg, err := config.LoadConfig(c.String("config"))
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := bundb.Open(c.Context, cfg.Postgres.DSN)
	if err != nil {
		return err
	}
	defer db.Close()

	return fn(c.Context, bundb.Migrators(db))
}

func findMigrator(migrators []bundb.ModuleMigrator, name string) (bundb.ModuleMigrator, error) {
	for _, m := range migrators {
		if m.Name == name {
			return m, nil
		}
	}
	return bundb.ModuleMigrator{}, fmt.Errorf("invalid module name: %s", name)
}

func newMultiModuleDBCommand() *cli.Command {
	return &cli.Command{
		Name:  "migrate",
		Usage: "database migrations",
		Subcommands: []*cli.Command{
			{
				Name:  "init",
				Usage: "create migration tables",
				Action: func(c *cli.Context) error {
					return withMigrators(c, func(ctx context.Context, migrators []bundb.ModuleMigrator) error {
						for _, m := range migrators {
							fmt.Printf("Initializing migrations for module: %s\n", m.Name)
							if err := m.Migrator.Init(ctx); err != nil {
								return fmt.Errorf("failed to initialize %s: %w", m.Name, err)
							}
						}
						return nil
					})
				},
			},
			{
				Name:  "migrate",
				Usage: "migrate database",
				Action: func(c *cli.Context) error {
					return withMigrators(c, func(ctx context.Context, migrators []bundb.ModuleMigrator) error {
						for _, m := range migrators {
							if err := m.Migrator.Lock(ctx); err != nil {
								return err
							}
							group, err := m.Migrator.Migrate(ctx)
							_ = m.Migrator.Unlock(ctx)
							if err != nil {
								return fmt.Errorf("failed to migrate %s: %w", m.Name, err)
							}
							if group.IsZero() {
								fmt.Printf("No new migrations to run for module: %s\n", m.Name)
							} else {
								fmt.Printf("Migrated module: %s to %s\n", m.Name, group)
							}
						}
						return nil
					})
				},
			},
			{
				Name:  "rollback",
				Usage: "rollback the last migration group of a module",
				Action: func(c *cli.Context) error {
					return withMigrators(c, func(ctx context.Context, migrators []bundb.ModuleMigrator) error {
						m, err := findMigrator(migrators, c.Args().First())
						if err != nil {
							return err
						}
						group, err := m.Migrator.Rollback(ctx)
						if err != nil {
							return err
						}
						if group.IsZero() {
							fmt.Printf("No groups to roll back for module: %s\n", m.Name)
						} else {
							fmt.Printf("Rolled back module: %s to %s\n", m.Name, group)
						}
						return nil
					})
				},
			},
			{
				Name:  "create_go",
				Usage: "create Go migration",
				Action: func(c *cli.Context) error {
					return withMigrators(c, func(ctx context.Context, migrators []bundb.ModuleMigrator) error {
						m, err := findMigrator(migrators, c.Args().First())
						if err != nil {
							return err
						}
						name := strings.Join(c.Args().Tail(), "_")
						mf, err := m.Migrator.CreateGoMigration(ctx, name)
						if err != nil {
							return err
						}
						fmt.Printf("Created migration for module %s: %s (%s)\n", m.Name, mf.Name, mf.Path)
						return nil
					})
				},
			},
			{
				Name:  "status",
				Usage: "print migrations status",
				Action: func(c *cli.Context) error {
					return withMigrators(c, func(ctx context.Context, migrators []bundb.ModuleMigrator) error {
						for _, m := range migrators {
							ms, err := m.Migrator.MigrationsWithStatus(ctx)
							if err != nil {
								return err
							}
							fmt.Printf("Migrations for module: %s\n", m.Name)
							fmt.Printf("  %s\n", ms)
							fmt.Printf("  Applied: %s\n", ms.Applied())
							fmt.Printf("  Unapplied: %s\n", ms.Unapplied())
						}
						return nil
					})
				},
			},
		},
	}
}
