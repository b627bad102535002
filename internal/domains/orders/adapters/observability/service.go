package observability

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"

	"github.com/Apurer/devcars-api/internal/domains/orders/application/types"
	orderdomain "github.com/Apurer/devcars-api/internal/domains/orders/domain"
	orderports "github.com/Apurer/devcars-api/internal/domains/orders/ports"
)

const tracerName = "github.com/Apurer/devcars-api/internal/domains/orders/adapters/observability/service"

// Service decorates the orders service with tracing, logging, and metrics.
type Service struct {
	inner   orderports.Service
	tracer  trace.Tracer
	logger  *slog.Logger
	metrics serviceMetrics
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithTracer(tr trace.Tracer) Option {
	return func(s *Service) {
		s.tracer = tr
	}
}

func WithMeter(m metric.Meter) Option {
	return func(s *Service) {
		s.metrics = newServiceMetrics(m)
	}
}

// New wraps the core orders service.
func New(inner orderports.Service, opts ...Option) orderports.Service {
	s := &Service{
		inner:   inner,
		tracer:  nooptrace.NewTracerProvider().Tracer(tracerName),
		logger:  slog.New(slog.DiscardHandler),
		metrics: newServiceMetrics(nil),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	if s.tracer == nil {
		s.tracer = nooptrace.NewTracerProvider().Tracer(tracerName)
	}
	return s
}

func (s *Service) PlaceOrder(ctx context.Context, input types.PlaceOrderInput) (*orderdomain.Order, error) {
	ctx, span := s.tracer.Start(ctx, "OrderService.PlaceOrder",
		trace.WithAttributes(
			attribute.Int64("car.id", input.CarID),
			attribute.Int64("customer.id", input.CustomerID),
			attribute.Int("order.extra_items", len(input.ExtraItems)),
		))
	defer span.End()

	attrs := []slog.Attr{slog.Int64("car.id", input.CarID), slog.Int64("customer.id", input.CustomerID)}
	s.logInfo(ctx, "placing order", attrs...)
	order, err := s.inner.PlaceOrder(ctx, input)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to place order", append(attrs, slog.Int64("order.requested_id", input.RequestedOrderID))...)
	}
	span.SetAttributes(attribute.Int64("order.id", order.ID), attribute.String("order.total_cost", order.TotalCost.String()))
	s.metrics.recordPlaced(ctx, order)
	s.logInfo(ctx, "order placed", slog.Int64("order.id", order.ID), slog.String("order.total_cost", order.TotalCost.String()))
	return order, nil
}

func (s *Service) GetCustomerOrder(ctx context.Context, customerID, orderID int64) (*orderdomain.Order, error) {
	ctx, span := s.tracer.Start(ctx, "OrderService.GetCustomerOrder",
		trace.WithAttributes(attribute.Int64("customer.id", customerID), attribute.Int64("order.id", orderID)))
	defer span.End()

	order, err := s.inner.GetCustomerOrder(ctx, customerID, orderID)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to load order", slog.Int64("customer.id", customerID), slog.Int64("order.id", orderID))
	}
	return order, nil
}

func (s *Service) ListOrders(ctx context.Context) ([]*orderdomain.Order, error) {
	ctx, span := s.tracer.Start(ctx, "OrderService.ListOrders")
	defer span.End()

	orders, err := s.inner.ListOrders(ctx)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to list orders")
	}
	span.SetAttributes(attribute.Int("order.count", len(orders)))
	return orders, nil
}

func (s *Service) ListCustomerOrders(ctx context.Context, customerID int64) ([]*orderdomain.Order, error) {
	ctx, span := s.tracer.Start(ctx, "OrderService.ListCustomerOrders", trace.WithAttributes(attribute.Int64("customer.id", customerID)))
	defer span.End()

	orders, err := s.inner.ListCustomerOrders(ctx, customerID)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to list customer orders", slog.Int64("customer.id", customerID))
	}
	span.SetAttributes(attribute.Int("order.count", len(orders)))
	return orders, nil
}

func (s *Service) logInfo(ctx context.Context, msg string, attrs ...slog.Attr) {
	if s.logger == nil {
		return
	}
	s.logger.LogAttrs(ctx, slog.LevelInfo, msg, attrs...)
}

func (s *Service) logError(ctx context.Context, msg string, err error, attrs ...slog.Attr) {
	if s.logger == nil {
		return
	}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}
	s.logger.LogAttrs(ctx, slog.LevelError, msg, attrs...)
}

func (s *Service) handleError(ctx context.Context, span trace.Span, err error, msg string, attrs ...slog.Attr) error {
	if span != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	s.logError(ctx, msg, err, attrs...)
	return err
}

type serviceMetrics struct {
	ordersPlaced metric.Int64Counter
	orderTotal   metric.Float64Histogram
}

func newServiceMetrics(m metric.Meter) serviceMetrics {
	if m == nil {
		return serviceMetrics{}
	}
	placed, _ := m.Int64Counter("orders.service.orders_placed", metric.WithDescription("Number of orders placed"))
	total, _ := m.Float64Histogram("orders.service.order_total", metric.WithDescription("Total cost of placed orders"))
	return serviceMetrics{ordersPlaced: placed, orderTotal: total}
}

func (m serviceMetrics) recordPlaced(ctx context.Context, order *orderdomain.Order) {
	if m.ordersPlaced != nil {
		m.ordersPlaced.Add(ctx, 1)
	}
	if m.orderTotal != nil {
		total, _ := order.TotalCost.Float64()
		m.orderTotal.Record(ctx, total)
	}
}

var _ orderports.Service = (*Service)(nil)
