package application

import (
	"errors"
	"fmt"

	"github.com/Apurer/devcars-api/internal/domains/cars/domain"
)

var (
	// ErrInvalidInput signals the request violated a domain invariant.
	ErrInvalidInput = errors.New("invalid car input")
	// ErrNotAvailable is returned when selling a car that is sold or suspended.
	ErrNotAvailable = errors.New("car is not available for sale")
	// ErrNotSold is returned when releasing a car that is not sold.
	ErrNotSold = errors.New("car is not sold")
)

func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, domain.ErrModelTooLong) ||
		errors.Is(err, domain.ErrNegativePrice) ||
		errors.Is(err, domain.ErrPricePrecision) ||
		errors.Is(err, domain.ErrInvalidStatus) {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return err
}
