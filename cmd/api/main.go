package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/Apurer/devcars-api/internal/app/api"
	"github.com/Apurer/devcars-api/internal/platform/migrations"
	platformobservability "github.com/Apurer/devcars-api/internal/platform/observability"
	platformpostgres "github.com/Apurer/devcars-api/internal/platform/postgres"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newApp().RunContext(ctx, os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "devcars-api",
		Usage: "DevCars dealership HTTP API",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "env-file",
				Usage:   "dotenv file loaded before reading the environment",
				EnvVars: []string{api.EnvFileVariable},
			},
			&cli.StringFlag{
				Name:    "port",
				Usage:   "HTTP listen port",
				EnvVars: []string{"PORT"},
			},
		},
		Before: applyFlags,
		Action: func(c *cli.Context) error {
			cfg, err := api.LoadConfig()
			if err != nil {
				return err
			}
			return api.Run(c.Context, cfg)
		},
		Commands: []*cli.Command{
			{
				Name:  "migrate",
				Usage: "create or update the PostgreSQL schema and exit",
				Action: func(c *cli.Context) error {
					cfg, err := api.LoadConfig()
					if err != nil {
						return err
					}
					return migrate(c.Context, cfg)
				},
			},
		},
	}
}

// applyFlags pushes explicit flags into the environment read by api.LoadConfig.
func applyFlags(c *cli.Context) error {
	for flag, variable := range map[string]string{"env-file": api.EnvFileVariable, "port": "PORT"} {
		if c.IsSet(flag) {
			if err := os.Setenv(variable, c.String(flag)); err != nil {
				return err
			}
		}
	}
	return nil
}

func migrate(ctx context.Context, cfg api.Config) error {
	if cfg.PostgresDSN == "" {
		return fmt.Errorf("POSTGRES_DSN is required to run migrations")
	}
	logger := platformobservability.NewLogger(os.Stdout, platformobservability.ParseLevel(cfg.LogLevel))
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	db, closeDB, err := platformpostgres.Open(ctx, cfg.PostgresDSN, logger)
	if err != nil {
		return err
	}
	defer closeDB()
	if err := migrations.Run(db); err != nil {
		return err
	}
	logger.Info("schema migration completed", slog.Int("tables", len(migrations.Models())))
	return nil
}
