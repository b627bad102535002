package ports

import (
	"context"
	"time"

	"github.com/Apurer/devcars-api/internal/domains/customers/domain"
)

// Service exposes the customer use cases to adapters.
type Service interface {
	RegisterCustomer(ctx context.Context, fullName, document string, birthDate time.Time) (*domain.Customer, error)
	GetCustomer(ctx context.Context, id int64) (*domain.Customer, error)
	ListCustomers(ctx context.Context) ([]*domain.Customer, error)
}
