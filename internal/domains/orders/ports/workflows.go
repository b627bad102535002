package ports

import (
	"context"

	"github.com/Apurer/devcars-api/internal/domains/orders/application/types"
	"github.com/Apurer/devcars-api/internal/domains/orders/domain"
)

// WorkflowOrchestrator runs order placement, durably when a workflow engine is available.
type WorkflowOrchestrator interface {
	PlaceOrder(ctx context.Context, input types.PlaceOrderInput) (*domain.Order, error)
}
