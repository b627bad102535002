package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"

	"github.com/Apurer/devcars-api/internal/app/api"
	"github.com/Apurer/devcars-api/internal/app/worker"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := &cli.App{
		Name:  "devcars-worker",
		Usage: "Temporal worker executing DevCars order placement",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "env-file",
				Usage:   "dotenv file loaded before reading the environment",
				EnvVars: []string{api.EnvFileVariable},
			},
		},
		Action: func(c *cli.Context) error {
			if c.IsSet("env-file") {
				if err := os.Setenv(api.EnvFileVariable, c.String("env-file")); err != nil {
					return err
				}
			}
			cfg, err := api.LoadConfig()
			if err != nil {
				return err
			}
			return worker.Run(c.Context, cfg)
		},
	}
	if err := app.RunContext(ctx, os.Args); err != nil {
		log.Fatal(err)
	}
}
