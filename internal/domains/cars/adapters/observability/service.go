package observability

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"

	"github.com/Apurer/devcars-api/internal/domains/cars/application/types"
	cardomain "github.com/Apurer/devcars-api/internal/domains/cars/domain"
	carports "github.com/Apurer/devcars-api/internal/domains/cars/ports"
)

const tracerName = "github.com/Apurer/devcars-api/internal/domains/cars/adapters/observability/service"

// Service decorates the cars service with tracing, logging, and metrics.
type Service struct {
	inner   carports.Service
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

// New wraps the core cars service.
func New(inner carports.Service, opts ...Option) carports.Service {
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

func (s *Service) RegisterCar(ctx context.Context, input types.RegisterCarInput) (*cardomain.Car, error) {
	ctx, span := s.tracer.Start(ctx, "CarService.RegisterCar",
		trace.WithAttributes(attribute.String("car.brand", input.Brand), attribute.String("car.model", input.Model)))
	defer span.End()

	s.logInfo(ctx, "registering car", slog.String("car.brand", input.Brand), slog.String("car.model", input.Model))
	result, err := s.inner.RegisterCar(ctx, input)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to register car", slog.String("car.model", input.Model))
	}
	span.SetAttributes(attribute.Int64("car.id", result.ID))
	s.metrics.recordRegistered(ctx)
	s.logInfo(ctx, "car registered", slog.Int64("car.id", result.ID))
	return result, nil
}

func (s *Service) GetCar(ctx context.Context, id int64) (*cardomain.Car, error) {
	ctx, span := s.tracer.Start(ctx, "CarService.GetCar", trace.WithAttributes(attribute.Int64("car.id", id)))
	defer span.End()

	result, err := s.inner.GetCar(ctx, id)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to load car", slog.Int64("car.id", id))
	}
	return result, nil
}

func (s *Service) ListByStatus(ctx context.Context, status cardomain.Status) ([]*cardomain.Car, error) {
	ctx, span := s.tracer.Start(ctx, "CarService.ListByStatus", trace.WithAttributes(attribute.String("car.status", string(status))))
	defer span.End()

	result, err := s.inner.ListByStatus(ctx, status)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to list cars", slog.String("car.status", string(status)))
	}
	span.SetAttributes(attribute.Int("car.count", len(result)))
	return result, nil
}

func (s *Service) UpdateCar(ctx context.Context, input types.UpdateCarInput) (*cardomain.Car, error) {
	ctx, span := s.tracer.Start(ctx, "CarService.UpdateCar", trace.WithAttributes(attribute.Int64("car.id", input.ID)))
	defer span.End()

	s.logInfo(ctx, "updating car", slog.Int64("car.id", input.ID), slog.String("car.color", input.Color), slog.String("car.price", input.Price.String()))
	result, err := s.inner.UpdateCar(ctx, input)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to update car", slog.Int64("car.id", input.ID))
	}
	s.logInfo(ctx, "car updated", slog.Int64("car.id", result.ID), slog.Int64("car.version", result.Version))
	return result, nil
}

func (s *Service) SuspendCar(ctx context.Context, id int64) error {
	ctx, span := s.tracer.Start(ctx, "CarService.SuspendCar", trace.WithAttributes(attribute.Int64("car.id", id)))
	defer span.End()

	s.logInfo(ctx, "suspending car", slog.Int64("car.id", id))
	if err := s.inner.SuspendCar(ctx, id); err != nil {
		return s.handleError(ctx, span, err, "failed to suspend car", slog.Int64("car.id", id))
	}
	s.metrics.recordSuspended(ctx)
	s.logInfo(ctx, "car suspended", slog.Int64("car.id", id))
	return nil
}

func (s *Service) SellCar(ctx context.Context, id int64) (*cardomain.Car, error) {
	ctx, span := s.tracer.Start(ctx, "CarService.SellCar", trace.WithAttributes(attribute.Int64("car.id", id)))
	defer span.End()

	s.logInfo(ctx, "selling car", slog.Int64("car.id", id))
	result, err := s.inner.SellCar(ctx, id)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to sell car", slog.Int64("car.id", id))
	}
	s.logInfo(ctx, "car sold", slog.Int64("car.id", id), slog.String("car.price", result.Price.String()))
	return result, nil
}

func (s *Service) ReleaseCar(ctx context.Context, id, version int64) (*cardomain.Car, error) {
	ctx, span := s.tracer.Start(ctx, "CarService.ReleaseCar",
		trace.WithAttributes(attribute.Int64("car.id", id), attribute.Int64("car.version", version)))
	defer span.End()

	s.logInfo(ctx, "releasing car", slog.Int64("car.id", id), slog.Int64("car.version", version))
	result, err := s.inner.ReleaseCar(ctx, id, version)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to release car", slog.Int64("car.id", id))
	}
	s.logInfo(ctx, "car released", slog.Int64("car.id", id), slog.Int64("car.version", result.Version))
	return result, nil
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
	carsRegistered metric.Int64Counter
	carsSuspended  metric.Int64Counter
}

func newServiceMetrics(m metric.Meter) serviceMetrics {
	if m == nil {
		return serviceMetrics{}
	}
	registered, _ := m.Int64Counter("cars.service.cars_registered", metric.WithDescription("Number of cars registered"))
	suspended, _ := m.Int64Counter("cars.service.cars_suspended", metric.WithDescription("Number of cars withdrawn from sale"))
	return serviceMetrics{carsRegistered: registered, carsSuspended: suspended}
}

func (m serviceMetrics) recordRegistered(ctx context.Context) {
	if m.carsRegistered != nil {
		m.carsRegistered.Add(ctx, 1)
	}
}

func (m serviceMetrics) recordSuspended(ctx context.Context) {
	if m.carsSuspended != nil {
		m.carsSuspended.Add(ctx, 1)
	}
}

var _ carports.Service = (*Service)(nil)
