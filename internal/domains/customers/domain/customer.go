package domain

import (
	"errors"
	"strings"
	"time"
)

var ErrEmptyFullName = errors.New("full name is required")

// Customer is a registered buyer. Customers are never updated or removed.
type Customer struct {
	ID        int64
	FullName  string
	Document  string
	BirthDate time.Time
}

// NewCustomer builds a customer. Callers reject empty names beforehand via ValidateFullName.
func NewCustomer(fullName, document string, birthDate time.Time) *Customer {
	return &Customer{
		FullName:  strings.TrimSpace(fullName),
		Document:  strings.TrimSpace(document),
		BirthDate: birthDate,
	}
}

// ValidateFullName enforces the only registration invariant.
func ValidateFullName(fullName string) error {
	if strings.TrimSpace(fullName) == "" {
		return ErrEmptyFullName
	}
	return nil
}
