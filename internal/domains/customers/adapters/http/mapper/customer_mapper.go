package mapper

import (
	"github.com/Apurer/devcars-api/internal/domains/customers/domain"
	"github.com/Apurer/devcars-api/internal/shared/calendar"
)

// CreateCustomer is the inbound payload for customer registration.
type CreateCustomer struct {
	FullName  string        `json:"fullName"`
	Document  string        `json:"document"`
	BirthDate calendar.Date `json:"birthDate"`
}

// Customer is the outbound customer representation.
type Customer struct {
	ID        int64         `json:"id"`
	FullName  string        `json:"fullName"`
	Document  string        `json:"document"`
	BirthDate calendar.Date `json:"birthDate"`
}

func ToCustomer(customer *domain.Customer) Customer {
	if customer == nil {
		return Customer{}
	}
	return Customer{
		ID:        customer.ID,
		FullName:  customer.FullName,
		Document:  customer.Document,
		BirthDate: calendar.NewDate(customer.BirthDate),
	}
}

func ToCustomerList(customers []*domain.Customer) []Customer {
	result := make([]Customer, 0, len(customers))
	for _, customer := range customers {
		if customer != nil {
			result = append(result, ToCustomer(customer))
		}
	}
	return result
}
