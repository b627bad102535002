package mapper

import (
	"github.com/shopspring/decimal"

	"github.com/Apurer/devcars-api/internal/domains/cars/application/types"
	"github.com/Apurer/devcars-api/internal/domains/cars/domain"
	"github.com/Apurer/devcars-api/internal/shared/calendar"
)

// CreateCar is the inbound payload for car registration.
type CreateCar struct {
	Brand           string          `json:"brand"`
	Model           string          `json:"model"`
	VinCode         string          `json:"vinCode"`
	Year            int             `json:"year"`
	Price           decimal.Decimal `json:"price"`
	Color           string          `json:"color"`
	ProductionModel calendar.Date   `json:"productionModel"`
}

// UpdateCar is the inbound payload for the partial car update.
type UpdateCar struct {
	Color string          `json:"color"`
	Price decimal.Decimal `json:"price"`
}

// CarItem is the summary shape returned by status listings.
type CarItem struct {
	ID    int64           `json:"id"`
	Brand string          `json:"brand"`
	Model string          `json:"model"`
	Price decimal.Decimal `json:"price"`
}

// CarDetails is the detail shape returned for a single car.
type CarDetails struct {
	ID             int64           `json:"id"`
	Brand          string          `json:"brand"`
	Model          string          `json:"model"`
	VinCode        string          `json:"vinCode"`
	Year           int             `json:"year"`
	Price          decimal.Decimal `json:"price"`
	Color          string          `json:"color"`
	ProductionDate calendar.Date   `json:"productionDate"`
}

// ToRegisterInput converts the transport payload into the application input.
func ToRegisterInput(payload CreateCar) types.RegisterCarInput {
	return types.RegisterCarInput{
		VinCode:        payload.VinCode,
		Brand:          payload.Brand,
		Model:          payload.Model,
		Year:           payload.Year,
		Price:          payload.Price,
		Color:          payload.Color,
		ProductionDate: payload.ProductionModel.Time,
	}
}

// ToUpdateInput converts the transport payload into the application input.
func ToUpdateInput(id int64, payload UpdateCar) types.UpdateCarInput {
	return types.UpdateCarInput{ID: id, Color: payload.Color, Price: payload.Price}
}

// ToCarItem projects a car onto its summary shape.
func ToCarItem(car *domain.Car) CarItem {
	if car == nil {
		return CarItem{}
	}
	return CarItem{ID: car.ID, Brand: car.Brand, Model: car.Model, Price: car.Price}
}

// ToCarItemList projects cars onto summaries, preserving order. Never returns nil.
func ToCarItemList(cars []*domain.Car) []CarItem {
	result := make([]CarItem, 0, len(cars))
	for _, car := range cars {
		if car == nil {
			continue
		}
		result = append(result, ToCarItem(car))
	}
	return result
}

// ToCarDetails projects a car onto its detail shape.
func ToCarDetails(car *domain.Car) CarDetails {
	if car == nil {
		return CarDetails{}
	}
	return CarDetails{
		ID:             car.ID,
		Brand:          car.Brand,
		Model:          car.Model,
		VinCode:        car.VinCode,
		Year:           car.Year,
		Price:          car.Price,
		Color:          car.Color,
		ProductionDate: calendar.NewDate(car.ProductionDate),
	}
}
