package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/Apurer/devcars-api/internal/domains/orders/application/types"
	"github.com/Apurer/devcars-api/internal/domains/orders/domain"
	"github.com/Apurer/devcars-api/internal/domains/orders/ports"
)

// Service runs the order placement workflow and order queries.
type Service struct {
	repo      ports.Repository
	cars      ports.CarInventory
	customers ports.CustomerDirectory
}

func NewService(repo ports.Repository, cars ports.CarInventory, customers ports.CustomerDirectory) *Service {
	return &Service{repo: repo, cars: cars, customers: customers}
}

// PlaceOrder checks the requested identifier, resolves car and customer,
// sells the car and persists the order priced from the sold car. A sale whose
// order cannot be persisted is released again.
func (s *Service) PlaceOrder(ctx context.Context, input types.PlaceOrderInput) (*domain.Order, error) {
	if input.RequestedOrderID != 0 {
		exists, err := s.repo.Exists(ctx, input.RequestedOrderID)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, ConflictError(input.RequestedOrderID)
		}
	}

	car, err := s.cars.LookupCar(ctx, input.CarID)
	if err != nil {
		return nil, mapCollaboratorError(err, input)
	}
	if err := s.customers.CustomerExists(ctx, input.CustomerID); err != nil {
		return nil, mapCollaboratorError(err, input)
	}

	items := toItems(input.ExtraItems)
	if err := domain.ValidateItems(items); err != nil {
		return nil, mapError(err)
	}
	if !car.Available {
		return nil, fmt.Errorf("%w: car %d is not available for sale", ErrCarUnavailable, car.ID)
	}

	sold, err := s.cars.MarkSold(ctx, car.ID)
	if err != nil {
		return nil, mapCollaboratorError(err, input)
	}
	order, err := s.repo.Save(ctx, domain.NewOrder(sold.ID, input.CustomerID, sold.Price, items))
	if err != nil {
		if releaseErr := s.cars.Release(context.WithoutCancel(ctx), sold); releaseErr != nil {
			return nil, errors.Join(err, fmt.Errorf("release car %d: %w", sold.ID, releaseErr))
		}
		return nil, err
	}
	return order, nil
}

// GetCustomerOrder returns the order only if it belongs to the customer.
func (s *Service) GetCustomerOrder(ctx context.Context, customerID, orderID int64) (*domain.Order, error) {
	order, err := s.repo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.CustomerID != customerID {
		return nil, ports.ErrNotFound
	}
	return order, nil
}

func (s *Service) ListOrders(ctx context.Context) ([]*domain.Order, error) {
	return nonNil(s.repo.List(ctx))
}

func (s *Service) ListCustomerOrders(ctx context.Context, customerID int64) ([]*domain.Order, error) {
	if err := s.customers.CustomerExists(ctx, customerID); err != nil {
		return nil, mapCollaboratorError(err, types.PlaceOrderInput{CustomerID: customerID})
	}
	return nonNil(s.repo.ListByCustomer(ctx, customerID))
}

func mapCollaboratorError(err error, input types.PlaceOrderInput) error {
	switch {
	case errors.Is(err, ports.ErrCarMissing):
		return fmt.Errorf("%w: car %d", ErrCarNotFound, input.CarID)
	case errors.Is(err, ports.ErrCustomerMissing):
		return fmt.Errorf("%w: customer %d", ErrCustomerNotFound, input.CustomerID)
	case errors.Is(err, ports.ErrCarNotForSale):
		return fmt.Errorf("%w: car %d was sold or withdrawn", ErrCarUnavailable, input.CarID)
	default:
		return err
	}
}

func toItems(inputs []types.ExtraItemInput) []domain.ExtraOrderItem {
	items := make([]domain.ExtraOrderItem, 0, len(inputs))
	for _, in := range inputs {
		items = append(items, domain.NewExtraOrderItem(in.Description, in.Price))
	}
	return items
}

func nonNil(orders []*domain.Order, err error) ([]*domain.Order, error) {
	if err != nil {
		return nil, err
	}
	if orders == nil {
		orders = []*domain.Order{}
	}
	return orders, nil
}

var _ ports.Service = (*Service)(nil)
