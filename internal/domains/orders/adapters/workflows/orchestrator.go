package workflows

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	oteltrace "go.opentelemetry.io/otel/trace"
	enumspb "go.temporal.io/api/enums/v1"
	"go.temporal.io/api/serviceerror"
	"go.temporal.io/sdk/client"

	orderapp "github.com/Apurer/devcars-api/internal/domains/orders/application"
	ordertypes "github.com/Apurer/devcars-api/internal/domains/orders/application/types"
	orderdomain "github.com/Apurer/devcars-api/internal/domains/orders/domain"
	"github.com/Apurer/devcars-api/internal/domains/orders/ports"
	orderactivities "github.com/Apurer/devcars-api/internal/platform/temporal/activities/orders"
	orderworkflows "github.com/Apurer/devcars-api/internal/platform/temporal/workflows/orders"
)

var (
	_ ports.WorkflowOrchestrator = (*TemporalOrderWorkflows)(nil)
	_ ports.WorkflowOrchestrator = (*InlineOrderWorkflows)(nil)
)

// OrderIndex answers whether an order identifier is taken.
type OrderIndex interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

// TemporalOrderWorkflows starts order workflows on a Temporal cluster.
type TemporalOrderWorkflows struct {
	client    client.Client
	taskQueue string
	orders    OrderIndex
}

// TemporalOption customises the Temporal orchestrator.
type TemporalOption func(*TemporalOrderWorkflows)

// WithOrderIndex rejects taken order identifiers before a workflow is started.
func WithOrderIndex(orders OrderIndex) TemporalOption {
	return func(o *TemporalOrderWorkflows) {
		o.orders = orders
	}
}

// NewTemporalOrderWorkflows wires a Temporal client into the orchestrator.
func NewTemporalOrderWorkflows(c client.Client, opts ...TemporalOption) *TemporalOrderWorkflows {
	o := &TemporalOrderWorkflows{client: c, taskQueue: orderworkflows.OrderPlacementTaskQueue}
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}
	return o
}

// PlaceOrder runs the placement workflow and waits for its result.
// Business failures come back as the same sentinels the inline path returns.
// Workflow IDs are keyed by car, so a second placement for a car whose sale is
// running or completed fails with ErrCarUnavailable. A taken requested
// identifier is reported first, as in the inline path.
func (o *TemporalOrderWorkflows) PlaceOrder(ctx context.Context, input ordertypes.PlaceOrderInput) (*orderdomain.Order, error) {
	if o == nil || o.client == nil {
		return nil, errors.New("temporal order workflows not configured")
	}
	if o.orders != nil && input.RequestedOrderID != 0 {
		exists, err := o.orders.Exists(ctx, input.RequestedOrderID)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, orderapp.ConflictError(input.RequestedOrderID)
		}
	}
	traceID := workflowTraceID(ctx)
	options := client.StartWorkflowOptions{
		ID:                                       buildOrderPlacementWorkflowID(input),
		TaskQueue:                                o.taskQueue,
		WorkflowIDReusePolicy:                    enumspb.WORKFLOW_ID_REUSE_POLICY_ALLOW_DUPLICATE_FAILED_ONLY,
		WorkflowExecutionErrorWhenAlreadyStarted: true,
	}
	run, err := o.client.ExecuteWorkflow(
		ctx,
		options,
		orderworkflows.OrderPlacementWorkflowName,
		orderworkflows.OrderPlacementWorkflowInput{Command: input, TraceID: traceID},
	)
	if err != nil {
		var alreadyStarted *serviceerror.WorkflowExecutionAlreadyStarted
		if errors.As(err, &alreadyStarted) {
			return nil, fmt.Errorf("%w: car %d already has a placement run", orderapp.ErrCarUnavailable, input.CarID)
		}
		return nil, err
	}
	var order orderdomain.Order
	if err := run.Get(ctx, &order); err != nil {
		return nil, orderactivities.DecodeError(err)
	}
	return &order, nil
}

// InlineOrderWorkflows executes the service directly without Temporal.
type InlineOrderWorkflows struct {
	service ports.Service
}

func NewInlineOrderWorkflows(service ports.Service) *InlineOrderWorkflows {
	return &InlineOrderWorkflows{service: service}
}

func (o *InlineOrderWorkflows) PlaceOrder(ctx context.Context, input ordertypes.PlaceOrderInput) (*orderdomain.Order, error) {
	if o == nil || o.service == nil {
		return nil, errors.New("inline order workflows not configured")
	}
	return o.service.PlaceOrder(ctx, input)
}

func buildOrderPlacementWorkflowID(input ordertypes.PlaceOrderInput) string {
	return fmt.Sprintf("order-placement-car-%d", input.CarID)
}

// workflowTraceID correlates worker logs with the request; untraced requests get a random id.
func workflowTraceID(ctx context.Context) string {
	spanCtx := oteltrace.SpanContextFromContext(ctx)
	if !spanCtx.IsValid() {
		return uuid.NewString()
	}
	return spanCtx.TraceID().String()
}
