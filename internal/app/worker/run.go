package worker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.temporal.io/sdk/activity"
	temporalworker "go.temporal.io/sdk/worker"
	"go.temporal.io/sdk/workflow"

	"github.com/Apurer/devcars-api/internal/app/api"
	"github.com/Apurer/devcars-api/internal/platform/migrations"
	platformobservability "github.com/Apurer/devcars-api/internal/platform/observability"
	platformpostgres "github.com/Apurer/devcars-api/internal/platform/postgres"
	orderactivities "github.com/Apurer/devcars-api/internal/platform/temporal/activities/orders"
	orderworkflows "github.com/Apurer/devcars-api/internal/platform/temporal/workflows/orders"
)

// ErrPostgresRequired is returned when the worker is started without a database.
var ErrPostgresRequired = errors.New("worker requires POSTGRES_DSN: order placement must share state with the API")

// Run starts the Temporal worker that executes order placement workflows.
func Run(ctx context.Context, cfg api.Config) error {
	if cfg.PostgresDSN == "" {
		return ErrPostgresRequired
	}
	instruments, shutdown, err := platformobservability.Init(ctx, cfg.Observability(cfg.ServiceName+"-worker"))
	if err != nil {
		return fmt.Errorf("failed to initialize observability: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			instruments.Logger.Error("failed to shutdown observability", slog.String("error", err.Error()))
		}
	}()
	logger := instruments.Logger

	db, closeDB, err := platformpostgres.Open(ctx, cfg.PostgresDSN, logger)
	if err != nil {
		return err
	}
	defer closeDB()
	if err := migrations.Run(db); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}

	services := api.BuildServices(db, instruments)
	temporalClient, err := api.DialTemporal(cfg, instruments, "temporal-worker")
	if err != nil {
		return fmt.Errorf("failed to create Temporal client: %w", err)
	}
	defer temporalClient.Close()

	w := temporalworker.New(temporalClient, orderworkflows.OrderPlacementTaskQueue, temporalworker.Options{})
	Register(w, orderactivities.NewActivities(services.Orders))

	logger.Info("worker listening",
		slog.String("taskQueue", orderworkflows.OrderPlacementTaskQueue),
		slog.String("namespace", cfg.TemporalNamespace),
	)
	stop := make(chan interface{})
	go func() {
		<-ctx.Done()
		close(stop)
	}()
	if err := w.Run(stop); err != nil {
		logger.Error("Temporal worker exited with error", slog.String("error", err.Error()))
		return err
	}
	logger.Info("Temporal worker stopped")
	return nil
}

// Registrar is satisfied by Temporal workers and test workflow environments.
type Registrar interface {
	RegisterWorkflowWithOptions(w interface{}, options workflow.RegisterOptions)
	RegisterActivityWithOptions(a interface{}, options activity.RegisterOptions)
}

// Register binds the order placement workflow and activity under their stable names.
func Register(r Registrar, activities *orderactivities.Activities) {
	r.RegisterWorkflowWithOptions(orderworkflows.OrderPlacementWorkflow, workflow.RegisterOptions{Name: orderworkflows.OrderPlacementWorkflowName})
	r.RegisterActivityWithOptions(activities.PlaceOrder, activity.RegisterOptions{Name: orderactivities.PlaceOrderActivityName})
}
