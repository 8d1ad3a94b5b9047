package services

import (
	"context"
	"fmt"
	"time"

	"github.com/ghuser/dosadiner/services/ordering/domain"
	"github.com/ghuser/dosadiner/services/ordering/domain/models"
	"github.com/ghuser/dosadiner/services/ordering/domain/repositories"
	domainsvcs "github.com/ghuser/dosadiner/services/ordering/domain/services"
)

// OrderService orchestrates order creation, reads, and line mutation.
// All multi-row writes are transactional in the repository: an order is
// either fully persisted with all its lines or not at all.
type OrderService struct {
	repo repositories.OrderRepository
}

// NewOrderService returns an OrderService wired with the given repository.
func NewOrderService(repo repositories.OrderRepository) *OrderService {
	return &OrderService{repo: repo}
}

// Create validates the order and its requested lines, then persists
// everything in one transaction. Each line snapshots the item's current
// price; a missing customer or item aborts the whole creation.
func (s *OrderService) Create(ctx context.Context, customerID int64, placedAt *time.Time, status string, notes *string, lines []models.LineInput) (*models.Order, error) {
	order, err := models.NewOrder(customerID, placedAt, status, notes)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidInput, err)
	}

	consolidated, err := domainsvcs.ConsolidateLines(lines)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidInput, err)
	}

	if err := s.repo.Create(ctx, order, consolidated); err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}
	return order, nil
}

// Get retrieves an order with its lines.
func (s *OrderService) Get(ctx context.Context, id int64) (*models.Order, error) {
	order, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}
	return order, nil
}

// List returns all orders with their lines in insertion order.
func (s *OrderService) List(ctx context.Context) ([]*models.Order, error) {
	orders, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}

// Update replaces the order's customer, timestamp, status, and notes.
// Lines are mutated through AddLine/RemoveLine only, so their unit price
// snapshots survive whole-order replacement.
func (s *OrderService) Update(ctx context.Context, id, customerID int64, placedAt *time.Time, status string, notes *string) (*models.Order, error) {
	order, err := models.NewOrder(customerID, placedAt, status, notes)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidInput, err)
	}
	order.ID = id
	if err := s.repo.Update(ctx, order); err != nil {
		return nil, fmt.Errorf("update order: %w", err)
	}
	return s.Get(ctx, id)
}

// Delete removes the order and all its lines atomically.
func (s *OrderService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete order: %w", err)
	}
	return nil
}

// AddLine upserts one line on an existing order. Adding an item the order
// already holds adjusts the quantity; the original unit price snapshot is
// kept either way.
func (s *OrderService) AddLine(ctx context.Context, orderID, itemID int64, quantity int32) (*models.OrderLine, error) {
	if err := domainsvcs.ValidateQuantity(quantity); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidInput, err)
	}
	line, err := s.repo.UpsertLine(ctx, orderID, itemID, quantity)
	if err != nil {
		return nil, fmt.Errorf("add order line: %w", err)
	}
	return line, nil
}

// RemoveLine deletes one line from an order.
func (s *OrderService) RemoveLine(ctx context.Context, orderID, itemID int64) error {
	if err := s.repo.RemoveLine(ctx, orderID, itemID); err != nil {
		return fmt.Errorf("remove order line: %w", err)
	}
	return nil
}
