package types

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegisterCarInput carries the descriptive fields of a new car.
// A zero ProductionDate is replaced by the registration time.
type RegisterCarInput struct {
	VinCode        string
	Brand          string
	Model          string
	Year           int
	Price          decimal.Decimal
	Color          string
	ProductionDate time.Time
}

// UpdateCarInput overwrites the mutable attributes of an existing car.
type UpdateCarInput struct {
	ID    int64
	Color string
	Price decimal.Decimal
}
