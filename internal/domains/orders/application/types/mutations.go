package types

import "github.com/shopspring/decimal"

// ExtraItemInput is a requested add-on line.
type ExtraItemInput struct {
	Description string
	Price       decimal.Decimal
}

// PlaceOrderInput carries an order placement request.
// RequestedOrderID is the identifier taken from the request path; an existing
// order with that identifier blocks placement. Zero skips the check.
type PlaceOrderInput struct {
	RequestedOrderID int64
	CarID            int64
	CustomerID       int64
	ExtraItems       []ExtraItemInput
}
