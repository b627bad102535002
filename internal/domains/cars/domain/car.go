package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Status represents where a car sits in the dealership lifecycle.
type Status string

const (
	StatusAvailable Status = "available"
	StatusSold      Status = "sold"
	StatusSuspended Status = "suspended"
)

// MaxModelLength bounds the model name accepted on registration.
const MaxModelLength = 50

// PriceScale is the number of decimal places a price may carry.
const PriceScale = 2

// DefaultBrand is stored when a car is registered without a brand.
const DefaultBrand = "PADRAO"

var (
	ErrModelTooLong   = errors.New("model cannot exceed 50 characters")
	ErrNegativePrice  = errors.New("price must be greater or equal to zero")
	ErrPricePrecision = errors.New("price cannot have more than 2 decimal places")
	ErrInvalidStatus  = errors.New("car status is invalid")
)

// Car is the aggregate managed by the cars bounded context.
// Version is an optimistic concurrency token maintained by repositories.
type Car struct {
	ID             int64
	VinCode        string
	Brand          string
	Model          string
	Year           int
	Price          decimal.Decimal
	Color          string
	ProductionDate time.Time
	Status         Status
	Version        int64
}

// NewCar builds an available car from its descriptive fields.
func NewCar(vinCode, brand, model string, year int, price decimal.Decimal, color string, productionDate time.Time) *Car {
	return &Car{
		VinCode:        vinCode,
		Brand:          brand,
		Model:          model,
		Year:           year,
		Price:          price,
		Color:          color,
		ProductionDate: productionDate,
		Status:         StatusAvailable,
	}
}

// Update overwrites color and price. Status is left untouched.
func (c *Car) Update(color string, price decimal.Decimal) {
	c.Color = color
	c.Price = price
}

// SetAsSold marks the car as sold.
func (c *Car) SetAsSold() {
	c.Status = StatusSold
}

// SetAsAvailable puts a sold car back on sale.
func (c *Car) SetAsAvailable() {
	c.Status = StatusAvailable
}

// SetAsSuspended withdraws the car from sale.
func (c *Car) SetAsSuspended() {
	c.Status = StatusSuspended
}

// IsAvailable reports whether the car can still be ordered.
func (c *Car) IsAvailable() bool {
	return c.Status == StatusAvailable
}

// ValidateModel enforces the registration limit on the model name.
func ValidateModel(model string) error {
	if len([]rune(model)) > MaxModelLength {
		return ErrModelTooLong
	}
	return nil
}

// ValidatePrice rejects negative amounts and fractions of a cent.
func ValidatePrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return ErrNegativePrice
	}
	if !price.Equal(price.Truncate(PriceScale)) {
		return ErrPricePrecision
	}
	return nil
}

// ParseStatus maps a case-insensitive label to a Status. An empty label means available.
func ParseStatus(raw string) (Status, error) {
	switch Status(strings.ToLower(strings.TrimSpace(raw))) {
	case "", StatusAvailable:
		return StatusAvailable, nil
	case StatusSold:
		return StatusSold, nil
	case StatusSuspended:
		return StatusSuspended, nil
	default:
		return "", ErrInvalidStatus
	}
}
