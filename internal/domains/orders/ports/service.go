package ports

import (
	"context"

	"github.com/Apurer/devcars-api/internal/domains/orders/application/types"
	"github.com/Apurer/devcars-api/internal/domains/orders/domain"
)

// Service exposes order placement and queries.
type Service interface {
	PlaceOrder(ctx context.Context, input types.PlaceOrderInput) (*domain.Order, error)
	GetCustomerOrder(ctx context.Context, customerID, orderID int64) (*domain.Order, error)
	ListOrders(ctx context.Context) ([]*domain.Order, error)
	ListCustomerOrders(ctx context.Context, customerID int64) ([]*domain.Order, error)
}
