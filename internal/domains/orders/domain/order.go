package domain

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

// PriceScale is the number of decimal places an item price may carry.
const PriceScale = 2

var (
	ErrNegativeItemPrice  = errors.New("extra item price must not be negative")
	ErrItemPricePrecision = errors.New("extra item price cannot have more than 2 decimal places")
)

// ExtraOrderItem is an add-on purchased with the car. Owned by its order.
type ExtraOrderItem struct {
	ID          int64
	Description string
	Price       decimal.Decimal
}

// NewExtraOrderItem builds an item from a caller-supplied description and price.
func NewExtraOrderItem(description string, price decimal.Decimal) ExtraOrderItem {
	return ExtraOrderItem{Description: strings.TrimSpace(description), Price: price}
}

// Order records the sale of one car to one customer.
// TotalCost is fixed at construction and never recomputed.
type Order struct {
	ID         int64
	CarID      int64
	CustomerID int64
	TotalCost  decimal.Decimal
	ExtraItems []ExtraOrderItem
}

// NewOrder computes the total as the car price plus every extra item.
func NewOrder(carID, customerID int64, carPrice decimal.Decimal, items []ExtraOrderItem) *Order {
	total := carPrice
	owned := make([]ExtraOrderItem, 0, len(items))
	for _, item := range items {
		total = total.Add(item.Price)
		owned = append(owned, item)
	}
	return &Order{
		CarID:      carID,
		CustomerID: customerID,
		TotalCost:  total,
		ExtraItems: owned,
	}
}

// ValidateItems rejects negative prices and fractions of a cent.
func ValidateItems(items []ExtraOrderItem) error {
	for _, item := range items {
		if item.Price.IsNegative() {
			return ErrNegativeItemPrice
		}
		if !item.Price.Equal(item.Price.Truncate(PriceScale)) {
			return ErrItemPricePrecision
		}
	}
	return nil
}

// ItemDescriptions lists extra item descriptions in order.
func (o *Order) ItemDescriptions() []string {
	descriptions := make([]string, 0, len(o.ExtraItems))
	for _, item := range o.ExtraItems {
		descriptions = append(descriptions, item.Description)
	}
	return descriptions
}

// Clone returns a deep copy including the extra items.
func (o *Order) Clone() *Order {
	if o == nil {
		return nil
	}
	clone := *o
	clone.ExtraItems = append([]ExtraOrderItem(nil), o.ExtraItems...)
	if clone.ExtraItems == nil {
		clone.ExtraItems = []ExtraOrderItem{}
	}
	return &clone
}
