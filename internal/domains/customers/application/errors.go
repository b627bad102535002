package application

import (
	"errors"
	"fmt"

	"github.com/Apurer/devcars-api/internal/domains/customers/domain"
)

// ErrInvalidInput signals the request violated a domain invariant.
var ErrInvalidInput = errors.New("invalid customer input")

func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, domain.ErrEmptyFullName) {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return err
}
