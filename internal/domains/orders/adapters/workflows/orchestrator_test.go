package workflows

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace"
	"go.temporal.io/api/serviceerror"
	"go.temporal.io/sdk/client"

	orderapp "github.com/Apurer/devcars-api/internal/domains/orders/application"
	ordertypes "github.com/Apurer/devcars-api/internal/domains/orders/application/types"
	orderdomain "github.com/Apurer/devcars-api/internal/domains/orders/domain"
	orderworkflows "github.com/Apurer/devcars-api/internal/platform/temporal/workflows/orders"
)

type recordingService struct {
	input ordertypes.PlaceOrderInput
}

func (r *recordingService) PlaceOrder(_ context.Context, input ordertypes.PlaceOrderInput) (*orderdomain.Order, error) {
	r.input = input
	order := orderdomain.NewOrder(input.CarID, input.CustomerID, decimal.NewFromInt(10), nil)
	order.ID = 1
	return order, nil
}

func (r *recordingService) GetCustomerOrder(context.Context, int64, int64) (*orderdomain.Order, error) {
	return nil, nil
}

func (r *recordingService) ListOrders(context.Context) ([]*orderdomain.Order, error) {
	return nil, nil
}

func (r *recordingService) ListCustomerOrders(context.Context, int64) ([]*orderdomain.Order, error) {
	return nil, nil
}

func TestInlineOrderWorkflows_Delegates(t *testing.T) {
	svc := &recordingService{}
	order, err := NewInlineOrderWorkflows(svc).PlaceOrder(context.Background(), ordertypes.PlaceOrderInput{CarID: 3, CustomerID: 4})
	require.NoError(t, err)
	assert.Equal(t, int64(1), order.ID)
	assert.Equal(t, int64(3), svc.input.CarID)
}

func TestOrchestrators_RequireCollaborators(t *testing.T) {
	_, err := NewInlineOrderWorkflows(nil).PlaceOrder(context.Background(), ordertypes.PlaceOrderInput{})
	require.Error(t, err)
	_, err = NewTemporalOrderWorkflows(nil).PlaceOrder(context.Background(), ordertypes.PlaceOrderInput{})
	require.Error(t, err)
}

func TestBuildOrderPlacementWorkflowID_KeyedByCar(t *testing.T) {
	assert.Equal(t, "order-placement-car-7", buildOrderPlacementWorkflowID(ordertypes.PlaceOrderInput{CarID: 7, CustomerID: 1}))
	assert.Equal(t, "order-placement-car-7", buildOrderPlacementWorkflowID(ordertypes.PlaceOrderInput{CarID: 7, CustomerID: 2}))
}

type stubTemporalClient struct {
	client.Client
	options client.StartWorkflowOptions
	err     error
	started int
}

func (s *stubTemporalClient) ExecuteWorkflow(_ context.Context, options client.StartWorkflowOptions, _ interface{}, _ ...interface{}) (client.WorkflowRun, error) {
	s.options = options
	s.started++
	return nil, s.err
}

type orderIndexFunc func(ctx context.Context, id int64) (bool, error)

func (f orderIndexFunc) Exists(ctx context.Context, id int64) (bool, error) {
	return f(ctx, id)
}

func TestTemporalOrderWorkflows_TakenRequestedIDIsConflict(t *testing.T) {
	stub := &stubTemporalClient{err: &serviceerror.WorkflowExecutionAlreadyStarted{Message: "completed", RunId: "run-1"}}
	index := orderIndexFunc(func(_ context.Context, id int64) (bool, error) { return id == 1, nil })
	orchestrator := NewTemporalOrderWorkflows(stub, WithOrderIndex(index))

	_, err := orchestrator.PlaceOrder(context.Background(), ordertypes.PlaceOrderInput{RequestedOrderID: 1, CarID: 5, CustomerID: 1})
	require.ErrorIs(t, err, orderapp.ErrOrderConflict)
	assert.Contains(t, err.Error(), "an order with id 1 already exists")
	assert.Zero(t, stub.started)

	_, err = orchestrator.PlaceOrder(context.Background(), ordertypes.PlaceOrderInput{RequestedOrderID: 2, CarID: 5, CustomerID: 1})
	require.ErrorIs(t, err, orderapp.ErrCarUnavailable)
	assert.Equal(t, 1, stub.started)
}

func TestTemporalOrderWorkflows_OrderIndexErrorsStopPlacement(t *testing.T) {
	boom := errors.New("db down")
	stub := &stubTemporalClient{}
	index := orderIndexFunc(func(context.Context, int64) (bool, error) { return false, boom })

	_, err := NewTemporalOrderWorkflows(stub, WithOrderIndex(index)).PlaceOrder(context.Background(), ordertypes.PlaceOrderInput{RequestedOrderID: 1, CarID: 5})
	require.ErrorIs(t, err, boom)
	assert.Zero(t, stub.started)
}

func TestTemporalOrderWorkflows_SaleInFlightIsUnavailable(t *testing.T) {
	stub := &stubTemporalClient{err: &serviceerror.WorkflowExecutionAlreadyStarted{Message: "running", RunId: "run-1"}}
	_, err := NewTemporalOrderWorkflows(stub).PlaceOrder(context.Background(), ordertypes.PlaceOrderInput{CarID: 5, CustomerID: 1})
	require.ErrorIs(t, err, orderapp.ErrCarUnavailable)
	assert.Equal(t, "order-placement-car-5", stub.options.ID)
	assert.True(t, stub.options.WorkflowExecutionErrorWhenAlreadyStarted)
	assert.Equal(t, orderworkflows.OrderPlacementTaskQueue, stub.options.TaskQueue)
}

func TestTemporalOrderWorkflows_PassesStartErrorsThrough(t *testing.T) {
	stub := &stubTemporalClient{err: errors.New("unavailable")}
	_, err := NewTemporalOrderWorkflows(stub).PlaceOrder(context.Background(), ordertypes.PlaceOrderInput{CarID: 5})
	require.EqualError(t, err, "unavailable")
}

func TestWorkflowTraceID(t *testing.T) {
	assert.NotEmpty(t, workflowTraceID(context.Background()))

	traceID := trace.TraceID{1, 2, 3}
	spanCtx := trace.NewSpanContext(trace.SpanContextConfig{TraceID: traceID, SpanID: trace.SpanID{1}})
	ctx := trace.ContextWithSpanContext(context.Background(), spanCtx)
	assert.Equal(t, traceID.String(), workflowTraceID(ctx))
}
