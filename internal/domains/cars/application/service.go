package application

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Apurer/devcars-api/internal/domains/cars/application/types"
	"github.com/Apurer/devcars-api/internal/domains/cars/domain"
	"github.com/Apurer/devcars-api/internal/domains/cars/ports"
)

// Service orchestrates the cars use cases.
type Service struct {
	repo ports.Repository
	now  func() time.Time
}

// Option customises the service.
type Option func(*Service)

// WithClock overrides the time source used for default production dates.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// NewService wires the cars service with its repository.
func NewService(repo ports.Repository, opts ...Option) *Service {
	s := &Service{repo: repo, now: time.Now}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// RegisterCar validates and stores a new available car.
func (s *Service) RegisterCar(ctx context.Context, input types.RegisterCarInput) (*domain.Car, error) {
	if err := domain.ValidateModel(input.Model); err != nil {
		return nil, mapError(err)
	}
	if err := domain.ValidatePrice(input.Price); err != nil {
		return nil, mapError(err)
	}
	brand := input.Brand
	if strings.TrimSpace(brand) == "" {
		brand = domain.DefaultBrand
	}
	productionDate := input.ProductionDate
	if productionDate.IsZero() {
		productionDate = s.now().UTC()
	}
	car := domain.NewCar(input.VinCode, brand, input.Model, input.Year, input.Price, input.Color, productionDate)
	saved, err := s.repo.Save(ctx, car)
	if err != nil {
		return nil, mapError(err)
	}
	return saved, nil
}

// GetCar loads a single car.
func (s *Service) GetCar(ctx context.Context, id int64) (*domain.Car, error) {
	return s.repo.GetByID(ctx, id)
}

// ListByStatus returns the cars currently in the given status, oldest first.
func (s *Service) ListByStatus(ctx context.Context, status domain.Status) ([]*domain.Car, error) {
	cars, err := s.repo.FindByStatus(ctx, status)
	if err != nil {
		return nil, mapError(err)
	}
	if cars == nil {
		cars = []*domain.Car{}
	}
	return cars, nil
}

// UpdateCar overwrites color and price of an existing car.
func (s *Service) UpdateCar(ctx context.Context, input types.UpdateCarInput) (*domain.Car, error) {
	if err := domain.ValidatePrice(input.Price); err != nil {
		return nil, mapError(err)
	}
	car, err := s.repo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	car.Update(input.Color, input.Price)
	saved, err := s.repo.Save(ctx, car)
	if err != nil {
		return nil, mapError(err)
	}
	return saved, nil
}

// SuspendCar withdraws a car from sale. Cars are never physically deleted.
func (s *Service) SuspendCar(ctx context.Context, id int64) error {
	car, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	car.SetAsSuspended()
	if _, err := s.repo.Save(ctx, car); err != nil {
		return mapError(err)
	}
	return nil
}

// SellCar transitions an available car to sold. The repository version
// check makes the first of several concurrent sales win.
func (s *Service) SellCar(ctx context.Context, id int64) (*domain.Car, error) {
	car, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !car.IsAvailable() {
		return nil, fmt.Errorf("%w: car %d is %s", ErrNotAvailable, car.ID, car.Status)
	}
	car.SetAsSold()
	saved, err := s.repo.Save(ctx, car)
	if err != nil {
		return nil, mapError(err)
	}
	return saved, nil
}

// ReleaseCar reverts a sale whose order could not be recorded. The car must
// still be sold at the version the sale produced.
func (s *Service) ReleaseCar(ctx context.Context, id, version int64) (*domain.Car, error) {
	car, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if car.Status != domain.StatusSold {
		return nil, fmt.Errorf("%w: car %d is %s", ErrNotSold, car.ID, car.Status)
	}
	if car.Version != version {
		return nil, ports.ErrVersionConflict
	}
	car.SetAsAvailable()
	saved, err := s.repo.Save(ctx, car)
	if err != nil {
		return nil, mapError(err)
	}
	return saved, nil
}

var _ ports.Service = (*Service)(nil)
