package ports

import (
	"context"
	"errors"

	"github.com/Apurer/devcars-api/internal/domains/orders/domain"
)

var (
	ErrNotFound  = errors.New("order not found")
	ErrDuplicate = errors.New("order identifier already in use")
)

// Repository persists orders together with their extra items.
type Repository interface {
	Save(ctx context.Context, order *domain.Order) (*domain.Order, error)
	GetByID(ctx context.Context, id int64) (*domain.Order, error)
	Exists(ctx context.Context, id int64) (bool, error)
	List(ctx context.Context) ([]*domain.Order, error)
	ListByCustomer(ctx context.Context, customerID int64) ([]*domain.Order, error)
}
