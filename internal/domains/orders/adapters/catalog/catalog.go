// Package catalog adapts the cars and customers contexts to the collaborator
// ports the order workflow depends on.
package catalog

import (
	"context"
	"errors"

	carapp "github.com/Apurer/devcars-api/internal/domains/cars/application"
	cardomain "github.com/Apurer/devcars-api/internal/domains/cars/domain"
	carports "github.com/Apurer/devcars-api/internal/domains/cars/ports"
	customerports "github.com/Apurer/devcars-api/internal/domains/customers/ports"
	orderports "github.com/Apurer/devcars-api/internal/domains/orders/ports"
)

var (
	_ orderports.CarInventory      = (*CarInventory)(nil)
	_ orderports.CustomerDirectory = (*CustomerDirectory)(nil)
)

// CarInventory sells cars through the cars service.
type CarInventory struct {
	cars carports.Service
}

func NewCarInventory(cars carports.Service) *CarInventory {
	return &CarInventory{cars: cars}
}

func (c *CarInventory) LookupCar(ctx context.Context, carID int64) (*orderports.SaleCar, error) {
	car, err := c.cars.GetCar(ctx, carID)
	if err != nil {
		return nil, translateCarError(err)
	}
	return toSaleCar(car), nil
}

func (c *CarInventory) MarkSold(ctx context.Context, carID int64) (*orderports.SaleCar, error) {
	car, err := c.cars.SellCar(ctx, carID)
	if err != nil {
		return nil, translateCarError(err)
	}
	return toSaleCar(car), nil
}

func (c *CarInventory) Release(ctx context.Context, car *orderports.SaleCar) error {
	if _, err := c.cars.ReleaseCar(ctx, car.ID, car.Version); err != nil {
		return translateCarError(err)
	}
	return nil
}

func translateCarError(err error) error {
	switch {
	case errors.Is(err, carports.ErrNotFound):
		return orderports.ErrCarMissing
	case errors.Is(err, carapp.ErrNotAvailable), errors.Is(err, carports.ErrVersionConflict):
		return orderports.ErrCarNotForSale
	default:
		return err
	}
}

func toSaleCar(car *cardomain.Car) *orderports.SaleCar {
	return &orderports.SaleCar{ID: car.ID, Price: car.Price, Available: car.IsAvailable(), Version: car.Version}
}

// CustomerDirectory resolves customers through the customers service.
type CustomerDirectory struct {
	customers customerports.Service
}

func NewCustomerDirectory(customers customerports.Service) *CustomerDirectory {
	return &CustomerDirectory{customers: customers}
}

func (d *CustomerDirectory) CustomerExists(ctx context.Context, customerID int64) error {
	if _, err := d.customers.GetCustomer(ctx, customerID); err != nil {
		if errors.Is(err, customerports.ErrNotFound) {
			return orderports.ErrCustomerMissing
		}
		return err
	}
	return nil
}
