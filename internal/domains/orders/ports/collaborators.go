package ports

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
)

var (
	// ErrCarMissing and ErrCustomerMissing are returned by collaborators for unknown identifiers.
	ErrCarMissing      = errors.New("car does not exist")
	ErrCustomerMissing = errors.New("customer does not exist")
	// ErrCarNotForSale is returned when the car cannot transition to sold.
	ErrCarNotForSale = errors.New("car is not for sale")
)

// SaleCar is the slice of a car the order workflow needs.
// Version identifies the car state the inventory returned.
type SaleCar struct {
	ID        int64
	Price     decimal.Decimal
	Available bool
	Version   int64
}

// CarInventory reads and sells cars on behalf of the order workflow.
// Release undoes a MarkSold whose order was never recorded.
type CarInventory interface {
	LookupCar(ctx context.Context, carID int64) (*SaleCar, error)
	MarkSold(ctx context.Context, carID int64) (*SaleCar, error)
	Release(ctx context.Context, car *SaleCar) error
}

// CustomerDirectory confirms customers exist.
type CustomerDirectory interface {
	CustomerExists(ctx context.Context, customerID int64) error
}
