package application

import (
	"context"
	"time"

	"github.com/Apurer/devcars-api/internal/domains/customers/domain"
	"github.com/Apurer/devcars-api/internal/domains/customers/ports"
)

// Service orchestrates customer use cases.
type Service struct {
	repo ports.Repository
}

func NewService(repo ports.Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) RegisterCustomer(ctx context.Context, fullName, document string, birthDate time.Time) (*domain.Customer, error) {
	if err := domain.ValidateFullName(fullName); err != nil {
		return nil, mapError(err)
	}
	return s.repo.Save(ctx, domain.NewCustomer(fullName, document, birthDate))
}

func (s *Service) GetCustomer(ctx context.Context, id int64) (*domain.Customer, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListCustomers(ctx context.Context) ([]*domain.Customer, error) {
	customers, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if customers == nil {
		customers = []*domain.Customer{}
	}
	return customers, nil
}

var _ ports.Service = (*Service)(nil)
