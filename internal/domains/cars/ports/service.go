package ports

import (
	"context"

	"github.com/Apurer/devcars-api/internal/domains/cars/application/types"
	"github.com/Apurer/devcars-api/internal/domains/cars/domain"
)

// Service exposes the cars use cases to adapters.
type Service interface {
	RegisterCar(ctx context.Context, input types.RegisterCarInput) (*domain.Car, error)
	GetCar(ctx context.Context, id int64) (*domain.Car, error)
	ListByStatus(ctx context.Context, status domain.Status) ([]*domain.Car, error)
	UpdateCar(ctx context.Context, input types.UpdateCarInput) (*domain.Car, error)
	SuspendCar(ctx context.Context, id int64) error
	SellCar(ctx context.Context, id int64) (*domain.Car, error)
	ReleaseCar(ctx context.Context, id, version int64) (*domain.Car, error)
}
