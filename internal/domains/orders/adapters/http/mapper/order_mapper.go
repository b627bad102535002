package mapper

import (
	"github.com/shopspring/decimal"

	"github.com/Apurer/devcars-api/internal/domains/orders/application/types"
	"github.com/Apurer/devcars-api/internal/domains/orders/domain"
)

// ExtraItem is a requested add-on line in the order payload.
type ExtraItem struct {
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
}

// PlaceOrder is the inbound payload for order placement.
type PlaceOrder struct {
	IDCar      int64       `json:"idCar"`
	IDCustomer int64       `json:"idCustomer"`
	ExtraItems []ExtraItem `json:"extraItems"`
}

// OrderSummary is the list shape for orders.
type OrderSummary struct {
	ID         int64           `json:"id"`
	TotalCost  decimal.Decimal `json:"totalCost"`
	CustomerID int64           `json:"customerId"`
	CarID      int64           `json:"carId"`
}

// OrderDetails is the single-order shape with extra item descriptions.
type OrderDetails struct {
	ID         int64           `json:"id"`
	CarID      int64           `json:"carId"`
	CustomerID int64           `json:"customerId"`
	TotalCost  decimal.Decimal `json:"totalCost"`
	ExtraItems []string        `json:"extraItems"`
}

// ToPlaceOrderInput binds the path identifier and body into the application input.
func ToPlaceOrderInput(requestedOrderID int64, payload PlaceOrder) types.PlaceOrderInput {
	items := make([]types.ExtraItemInput, 0, len(payload.ExtraItems))
	for _, item := range payload.ExtraItems {
		items = append(items, types.ExtraItemInput{Description: item.Description, Price: item.Price})
	}
	return types.PlaceOrderInput{
		RequestedOrderID: requestedOrderID,
		CarID:            payload.IDCar,
		CustomerID:       payload.IDCustomer,
		ExtraItems:       items,
	}
}

func ToOrderSummary(order *domain.Order) OrderSummary {
	if order == nil {
		return OrderSummary{}
	}
	return OrderSummary{ID: order.ID, TotalCost: order.TotalCost, CustomerID: order.CustomerID, CarID: order.CarID}
}

func ToOrderSummaryList(orders []*domain.Order) []OrderSummary {
	result := make([]OrderSummary, 0, len(orders))
	for _, order := range orders {
		if order != nil {
			result = append(result, ToOrderSummary(order))
		}
	}
	return result
}

func ToOrderDetails(order *domain.Order) OrderDetails {
	if order == nil {
		return OrderDetails{ExtraItems: []string{}}
	}
	return OrderDetails{
		ID:         order.ID,
		CarID:      order.CarID,
		CustomerID: order.CustomerID,
		TotalCost:  order.TotalCost,
		ExtraItems: order.ItemDescriptions(),
	}
}
