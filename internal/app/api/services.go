package api

import (
	"log/slog"

	"gorm.io/gorm"

	carsmemory "github.com/Apurer/devcars-api/internal/domains/cars/adapters/memory"
	carsobs "github.com/Apurer/devcars-api/internal/domains/cars/adapters/observability"
	carspostgres "github.com/Apurer/devcars-api/internal/domains/cars/adapters/persistence/postgres"
	carsapp "github.com/Apurer/devcars-api/internal/domains/cars/application"
	carsports "github.com/Apurer/devcars-api/internal/domains/cars/ports"
	customersmemory "github.com/Apurer/devcars-api/internal/domains/customers/adapters/memory"
	customersobs "github.com/Apurer/devcars-api/internal/domains/customers/adapters/observability"
	customerspostgres "github.com/Apurer/devcars-api/internal/domains/customers/adapters/persistence/postgres"
	customersapp "github.com/Apurer/devcars-api/internal/domains/customers/application"
	customersports "github.com/Apurer/devcars-api/internal/domains/customers/ports"
	"github.com/Apurer/devcars-api/internal/domains/orders/adapters/catalog"
	ordersmemory "github.com/Apurer/devcars-api/internal/domains/orders/adapters/memory"
	ordersobs "github.com/Apurer/devcars-api/internal/domains/orders/adapters/observability"
	orderspostgres "github.com/Apurer/devcars-api/internal/domains/orders/adapters/persistence/postgres"
	ordersapp "github.com/Apurer/devcars-api/internal/domains/orders/application"
	ordersports "github.com/Apurer/devcars-api/internal/domains/orders/ports"
	platformobservability "github.com/Apurer/devcars-api/internal/platform/observability"
)

// Services holds the decorated application services of every bounded context.
// OrderRepository backs the requested-id check of the Temporal orchestrator.
type Services struct {
	Cars            carsports.Service
	Customers       customersports.Service
	Orders          ordersports.Service
	OrderRepository ordersports.Repository
}

// BuildServices wires repositories and services. A nil db selects in-memory repositories.
func BuildServices(db *gorm.DB, instruments *platformobservability.Instruments) Services {
	var (
		carRepo      carsports.Repository
		customerRepo customersports.Repository
		orderRepo    ordersports.Repository
	)
	if db != nil {
		carRepo = carspostgres.NewRepository(db)
		customerRepo = customerspostgres.NewRepository(db)
		orderRepo = orderspostgres.NewRepository(db)
	} else {
		carRepo = carsmemory.NewRepository()
		customerRepo = customersmemory.NewRepository()
		orderRepo = ordersmemory.NewRepository()
	}
	logger := slog.New(slog.DiscardHandler)
	if instruments != nil && instruments.Logger != nil {
		logger = instruments.Logger
	}

	cars := carsobs.New(
		carsapp.NewService(carRepo),
		carsobs.WithLogger(logger),
		carsobs.WithTracer(instruments.Tracer("internal.cars.application")),
		carsobs.WithMeter(instruments.Meter("internal.cars.application")),
	)
	customers := customersobs.New(
		customersapp.NewService(customerRepo),
		customersobs.WithLogger(logger),
		customersobs.WithTracer(instruments.Tracer("internal.customers.application")),
		customersobs.WithMeter(instruments.Meter("internal.customers.application")),
	)
	orders := ordersobs.New(
		ordersapp.NewService(orderRepo, catalog.NewCarInventory(cars), catalog.NewCustomerDirectory(customers)),
		ordersobs.WithLogger(logger),
		ordersobs.WithTracer(instruments.Tracer("internal.orders.application")),
		ordersobs.WithMeter(instruments.Meter("internal.orders.application")),
	)
	return Services{Cars: cars, Customers: customers, Orders: orders, OrderRepository: orderRepo}
}
