package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Black-And-White-Club/doppelkopf/app"
	"github.com/Black-And-White-Club/doppelkopf/app/modules/auth"
	authdomain "github.com/Black-And-White-Club/doppelkopf/app/modules/auth/domain"
	"github.com/Black-And-White-Club/doppelkopf/app/shared/observability"
	"github.com/Black-And-White-Club/doppelkopf/config"
	"github.com/Black-And-White-Club/doppelkopf/db/bundb"
	"github.com/urfave/cli/v2"
)

func main() {
	cliApp := &cli.App{
		Name:  "doppelkopf",
		Usage: "Doppelkopf scorepad and glossary server",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Value:   "config.yaml",
				Usage:   "path to the configuration file",
				EnvVars: []string{"CONFIG_PATH"},
			},
		},
		Commands: []*cli.Command{
			serveCommand(),
			tokenCommand(),
		},
		DefaultCommand: "serve",
	}

	if err := cliApp.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "run the HTTP server",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "migrate", Usage: "apply pending migrations before serving"},
		},
		Action: func(c *cli.Context) error {
			cfg, err := config.LoadConfig(c.String("config"))
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
			defer stop()

			application, err := app.Initialize(ctx, cfg)
			if err != nil {
				return fmt.Errorf("failed to initialize app: %w", err)
			}
			if c.Bool("migrate") {
				if err := bundb.Migrate(ctx, application.DB, application.Observability.Provider.Logger); err != nil {
					_ = application.Close()
					return err
				}
			}
			return application.Run(ctx)
		},
	}
}

func tokenCommand() *cli.Command {
	return &cli.Command{
		Name:  "token",
		Usage: "print a signed API token",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "subject", Required: true, Usage: "who the token is issued to"},
			&cli.StringFlag{Name: "role", Value: string(authdomain.RoleAdmin), Usage: "editor or admin"},
			&cli.DurationFlag{Name: "ttl", Usage: "token lifetime, defaults to auth.default_ttl"},
		},
		Action: func(c *cli.Context) error {
			cfg, err := config.LoadConfig(c.String("config"))
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			token, err := issueToken(c.Context, cfg, c.String("subject"), authdomain.Role(c.String("role")), c.Duration("ttl"))
			if err != nil {
				return err
			}
			fmt.Fprintln(c.App.Writer, token)
			return nil
		},
	}
}

func issueToken(ctx context.Context, cfg *config.Config, subject string, role authdomain.Role, ttl time.Duration) (string, error) {
	if !role.IsValid() {
		return "", fmt.Errorf("unknown role %q", role)
	}
	m := auth.NewAuthModule(ctx, observability.NewNoop(), auth.Config{
		Secret:     cfg.Auth.Secret,
		DefaultTTL: cfg.Auth.DefaultTTL,
	})
	return m.IssueToken(subject, role, ttl)
}
