package application

import (
	"errors"
	"fmt"

	"github.com/Apurer/devcars-api/internal/domains/orders/domain"
)

var (
	ErrInvalidInput     = errors.New("invalid order input")
	ErrCarNotFound      = errors.New("car not found")
	ErrCustomerNotFound = errors.New("customer not found")
	// ErrOrderConflict means an order already exists under the requested identifier.
	ErrOrderConflict = errors.New("order conflict")
	// ErrCarUnavailable means the car is sold, suspended, or was sold concurrently.
	ErrCarUnavailable = errors.New("car unavailable")
)

func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, domain.ErrNegativeItemPrice) || errors.Is(err, domain.ErrItemPricePrecision) {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return err
}

// ConflictError reports that orderID is already taken.
func ConflictError(orderID int64) error {
	return fmt.Errorf("%w: an order with id %d already exists", ErrOrderConflict, orderID)
}
