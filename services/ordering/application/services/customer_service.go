package services

import (
	"context"
	"fmt"

	"github.com/ghuser/dosadiner/services/ordering/domain"
	"github.com/ghuser/dosadiner/services/ordering/domain/models"
	"github.com/ghuser/dosadiner/services/ordering/domain/repositories"
)

// CustomerService orchestrates customer CRUD. Uniqueness of phone/email is
// enforced by the repository at write time.
type CustomerService struct {
	repo repositories.CustomerRepository
}

// NewCustomerService returns a CustomerService wired with the given repository.
func NewCustomerService(repo repositories.CustomerRepository) *CustomerService {
	return &CustomerService{repo: repo}
}

// Create validates and persists a new customer.
func (s *CustomerService) Create(ctx context.Context, name, phone string, email, address *string) (*models.Customer, error) {
	customer, err := models.NewCustomer(name, phone, email, address)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidInput, err)
	}
	if err := s.repo.Save(ctx, customer); err != nil {
		return nil, fmt.Errorf("save customer: %w", err)
	}
	return customer, nil
}

// Get retrieves a customer by ID.
func (s *CustomerService) Get(ctx context.Context, id int64) (*models.Customer, error) {
	customer, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return customer, nil
}

// List returns all customers in insertion order.
func (s *CustomerService) List(ctx context.Context) ([]*models.Customer, error) {
	customers, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	return customers, nil
}

// Update replaces all mutable fields of an existing customer, re-validating
// the same constraints as Create. Partial updates are not supported.
func (s *CustomerService) Update(ctx context.Context, id int64, name, phone string, email, address *string) (*models.Customer, error) {
	customer, err := models.NewCustomer(name, phone, email, address)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidInput, err)
	}
	customer.ID = id
	if err := s.repo.Update(ctx, customer); err != nil {
		return nil, fmt.Errorf("update customer: %w", err)
	}
	return s.Get(ctx, id)
}

// Delete removes a customer. Customers still referenced by orders are
// rejected with ErrInUse (reject-on-conflict delete policy).
func (s *CustomerService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete customer: %w", err)
	}
	return nil
}
