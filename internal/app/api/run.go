package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	devcarsserver "github.com/Apurer/devcars-api/go"
	ordersworkflows "github.com/Apurer/devcars-api/internal/domains/orders/adapters/workflows"
	ordersports "github.com/Apurer/devcars-api/internal/domains/orders/ports"
	"github.com/Apurer/devcars-api/internal/platform/migrations"
	platformobservability "github.com/Apurer/devcars-api/internal/platform/observability"
	platformpostgres "github.com/Apurer/devcars-api/internal/platform/postgres"
)

// Run boots the DevCars HTTP API and blocks until ctx is cancelled or the server fails.
func Run(ctx context.Context, cfg Config) error {
	instruments, shutdown, err := platformobservability.Init(ctx, cfg.Observability(cfg.ServiceName))
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

	services := BuildServices(db, instruments)
	var orderWorkflows ordersports.WorkflowOrchestrator = ordersworkflows.NewInlineOrderWorkflows(services.Orders)
	if cfg.UseTemporal() {
		temporalClient, err := DialTemporal(cfg, instruments, "temporal-client")
		if err != nil {
			logger.Warn("Temporal workflows unavailable, placing orders inline", slog.String("error", err.Error()))
		} else {
			defer temporalClient.Close()
			orderWorkflows = ordersworkflows.NewTemporalOrderWorkflows(temporalClient, ordersworkflows.WithOrderIndex(services.OrderRepository))
			logger.Info("Temporal workflows enabled", slog.String("namespace", cfg.TemporalNamespace))
		}
	}

	router := NewRouter(cfg.ServiceName, services, orderWorkflows)
	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("DevCars API listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("DevCars API server exited", slog.String("addr", srv.Addr), slog.String("error", err.Error()))
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down DevCars API")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// NewRouter builds the gin engine with tracing and recovery middleware.
func NewRouter(serviceName string, services Services, orderWorkflows ordersports.WorkflowOrchestrator) *gin.Engine {
	engine := gin.New()
	engine.Use(gin.Recovery(), otelgin.Middleware(serviceName))
	return devcarsserver.NewRouterWithGinEngine(engine, devcarsserver.ApiHandleFunctions{
		CarAPI:      devcarsserver.NewCarAPI(services.Cars),
		CustomerAPI: devcarsserver.NewCustomerAPI(services.Customers),
		OrderAPI:    devcarsserver.NewOrderAPI(services.Orders, orderWorkflows),
	})
}
