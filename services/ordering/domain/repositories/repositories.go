// Package repositories declares the persistence interfaces for the ordering
// aggregates. The domain layer owns these interfaces; infrastructure
// implements them against PostgreSQL.
package repositories

import (
	"context"

	"github.com/ghuser/dosadiner/services/ordering/domain/models"
)

// CustomerRepository is the persistence interface for Customer rows.
type CustomerRepository interface {
	// Save inserts a new customer and assigns customer.ID.
	// Returns ErrDuplicateContact on phone/email uniqueness conflicts.
	Save(ctx context.Context, customer *models.Customer) error

	// GetByID returns ErrCustomerNotFound when the id is absent.
	GetByID(ctx context.Context, id int64) (*models.Customer, error)

	// List returns all customers in insertion order.
	List(ctx context.Context) ([]*models.Customer, error)

	// Update replaces all mutable fields. Returns ErrCustomerNotFound when
	// the id is absent and ErrDuplicateContact on uniqueness conflicts.
	Update(ctx context.Context, customer *models.Customer) error

	// Delete removes a customer. Returns ErrInUse when orders still
	// reference it.
	Delete(ctx context.Context, id int64) error
}

// MenuItemRepository is the persistence interface for MenuItem rows.
type MenuItemRepository interface {
	// Save inserts a new menu item and assigns item.ID.
	Save(ctx context.Context, item *models.MenuItem) error

	// GetByID returns ErrMenuItemNotFound when the id is absent.
	GetByID(ctx context.Context, id int64) (*models.MenuItem, error)

	// List returns all menu items in insertion order.
	List(ctx context.Context) ([]*models.MenuItem, error)

	// Update replaces all mutable fields. Existing order lines keep their
	// unit price snapshots regardless of price changes here.
	Update(ctx context.Context, item *models.MenuItem) error

	// Delete removes a menu item. Returns ErrInUse when order lines still
	// reference it.
	Delete(ctx context.Context, id int64) error
}

// OrderRepository is the persistence interface for Order aggregates
// including their lines.
type OrderRepository interface {
	// Create persists the order and all lines in one transaction,
	// snapshotting each item's current price into the line. Assigns
	// order.ID and fills order.Lines. A missing customer or item aborts
	// the whole transaction.
	Create(ctx context.Context, order *models.Order, lines []models.LineInput) error

	// GetByID loads the order with its lines, each joined with the current
	// menu item name/category for display. The stored unit price is never
	// recomputed. Returns ErrOrderNotFound when the id is absent.
	GetByID(ctx context.Context, id int64) (*models.Order, error)

	// List returns all orders with their lines in insertion order.
	List(ctx context.Context) ([]*models.Order, error)

	// Update replaces customer_id, placed_at, status, and notes. Lines are
	// untouched; mutate them through UpsertLine/RemoveLine. Returns
	// ErrOrderNotFound when the id is absent and ErrInvalidInput when the
	// new customer_id does not resolve.
	Update(ctx context.Context, order *models.Order) error

	// Delete removes the order and all its lines in one transaction.
	Delete(ctx context.Context, id int64) error

	// UpsertLine adds a line for the item, snapshotting the item's current
	// price. If the order already holds a line for the item, only the
	// quantity is updated and the original price snapshot is kept.
	UpsertLine(ctx context.Context, orderID, itemID int64, quantity int32) (*models.OrderLine, error)

	// RemoveLine deletes one line. Returns ErrOrderLineNotFound when the
	// order has no line for the item.
	RemoveLine(ctx context.Context, orderID, itemID int64) error
}
