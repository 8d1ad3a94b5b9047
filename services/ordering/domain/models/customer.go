package models

import (
	"fmt"
	"strings"
	"time"
)

// Customer is a diner who can place orders. Phone is the primary contact and
// must be unique; email is optional but unique when present.
type Customer struct {
	ID        int64
	Name      string
	Phone     string
	Email     *string
	Address   *string
	CreatedAt time.Time
}

// NewCustomer constructs a valid Customer. The ID is assigned by the
// repository on insert.
func NewCustomer(name, phone string, email, address *string) (*Customer, error) {
	name = strings.TrimSpace(name)
	phone = strings.TrimSpace(phone)

	if name == "" {
		return nil, fmt.Errorf("customer name must not be empty")
	}
	if phone == "" {
		return nil, fmt.Errorf("customer phone must not be empty")
	}
	if email != nil && strings.TrimSpace(*email) == "" {
		email = nil
	}

	return &Customer{
		Name:      name,
		Phone:     phone,
		Email:     email,
		Address:   address,
		CreatedAt: time.Now().UTC(),
	}, nil
}
