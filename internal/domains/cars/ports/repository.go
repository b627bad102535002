package ports

import (
	"context"
	"errors"

	"github.com/Apurer/devcars-api/internal/domains/cars/domain"
)

var (
	ErrNotFound        = errors.New("car not found")
	ErrVersionConflict = errors.New("car was modified concurrently")
)

// Repository persists cars. Save inserts when ID is zero and otherwise
// updates only if the stored version matches car.Version.
type Repository interface {
	Save(ctx context.Context, car *domain.Car) (*domain.Car, error)
	GetByID(ctx context.Context, id int64) (*domain.Car, error)
	FindByStatus(ctx context.Context, status domain.Status) ([]*domain.Car, error)
	List(ctx context.Context) ([]*domain.Car, error)
}
