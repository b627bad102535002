package orders

import (
	"context"
	"errors"

	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/temporal"

	orderapp "github.com/Apurer/devcars-api/internal/domains/orders/application"
	ordertypes "github.com/Apurer/devcars-api/internal/domains/orders/application/types"
	orderdomain "github.com/Apurer/devcars-api/internal/domains/orders/domain"
	orderports "github.com/Apurer/devcars-api/internal/domains/orders/ports"
)

// PlaceOrderActivityName runs the order placement use case against the shared store.
const PlaceOrderActivityName = "orders.activities.PlaceOrder"

// Error type tags carried by non-retryable application errors.
const (
	ErrorTypeInvalidInput     = "OrderInvalidInput"
	ErrorTypeCarNotFound      = "OrderCarNotFound"
	ErrorTypeCustomerNotFound = "OrderCustomerNotFound"
	ErrorTypeConflict         = "OrderConflict"
	ErrorTypeCarUnavailable   = "OrderCarUnavailable"
)

var errorTypes = []struct {
	tag      string
	sentinel error
}{
	{ErrorTypeInvalidInput, orderapp.ErrInvalidInput},
	{ErrorTypeCarNotFound, orderapp.ErrCarNotFound},
	{ErrorTypeCustomerNotFound, orderapp.ErrCustomerNotFound},
	{ErrorTypeConflict, orderapp.ErrOrderConflict},
	{ErrorTypeCarUnavailable, orderapp.ErrCarUnavailable},
}

// NonRetryableErrorTypes lists the tags that retrying cannot fix.
func NonRetryableErrorTypes() []string {
	tags := make([]string, 0, len(errorTypes))
	for _, et := range errorTypes {
		tags = append(tags, et.tag)
	}
	return tags
}

// Activities groups activities that operate on the orders bounded context.
type Activities struct {
	service orderports.Service
}

func NewActivities(service orderports.Service) *Activities {
	return &Activities{service: service}
}

// PlaceOrder runs the placement and tags business failures so callers can recover them.
func (a *Activities) PlaceOrder(ctx context.Context, input ordertypes.PlaceOrderInput) (*orderdomain.Order, error) {
	logger := activity.GetLogger(ctx)
	if a == nil || a.service == nil {
		logger.Error("order placement activity not initialized", "carId", input.CarID)
		return nil, errors.New("order placement activity not initialized")
	}
	logger.Info("PlaceOrder activity started", "carId", input.CarID, "customerId", input.CustomerID)
	order, err := a.service.PlaceOrder(ctx, input)
	if err != nil {
		logger.Error("PlaceOrder activity failed", "carId", input.CarID, "customerId", input.CustomerID, "error", err)
		return nil, EncodeError(err)
	}
	logger.Info("PlaceOrder activity completed", "orderId", order.ID)
	return order, nil
}

// EncodeError converts order sentinels into tagged non-retryable application errors.
func EncodeError(err error) error {
	for _, et := range errorTypes {
		if errors.Is(err, et.sentinel) {
			return temporal.NewNonRetryableApplicationError(err.Error(), et.tag, nil)
		}
	}
	return err
}

// DecodeError recovers the order sentinel from a tagged application error anywhere in the chain.
func DecodeError(err error) error {
	var appErr *temporal.ApplicationError
	if !errors.As(err, &appErr) {
		return err
	}
	for _, et := range errorTypes {
		if appErr.Type() == et.tag {
			return &remoteError{sentinel: et.sentinel, msg: appErr.Error()}
		}
	}
	return err
}

type remoteError struct {
	sentinel error
	msg      string
}

func (e *remoteError) Error() string { return e.msg }

func (e *remoteError) Unwrap() error { return e.sentinel }
