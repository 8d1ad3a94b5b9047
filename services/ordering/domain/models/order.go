package models

import (
	"fmt"
	"strings"
	"time"
)

// StatusPending is the status assigned to new orders when none is given.
// Status is free text beyond this default; the core enforces no workflow.
const StatusPending = "Pending"

// Order is a customer's order. Lines are owned by the order and are deleted
// with it; each line carries the unit price captured when it was added.
type Order struct {
	ID         int64
	CustomerID int64
	PlacedAt   time.Time
	Status     string
	Notes      *string
	Lines      []OrderLine
}

// OrderLine is one item-quantity row of an order. UnitPrice is a historical
// fact written once at insert time, never recomputed from the menu.
// ItemName and ItemCategory are display fields resolved from the current
// menu item on reads; they are not stored on the line.
type OrderLine struct {
	OrderID      int64
	ItemID       int64
	Quantity     int32
	UnitPrice    float64
	ItemName     string
	ItemCategory string
}

// LineInput is the requested (item, quantity) pair for order creation and
// line upserts, before the price snapshot is taken.
type LineInput struct {
	ItemID   int64
	Quantity int32
}

// NewOrder constructs a valid Order with defaults applied: PlacedAt falls
// back to the current time, Status to StatusPending. The ID is assigned by
// the repository on insert; CustomerID is resolved against the customer
// store there as well.
func NewOrder(customerID int64, placedAt *time.Time, status string, notes *string) (*Order, error) {
	if customerID <= 0 {
		return nil, fmt.Errorf("order customer_id must be positive, got %d", customerID)
	}

	at := time.Now().UTC()
	if placedAt != nil {
		at = placedAt.UTC()
	}

	status = strings.TrimSpace(status)
	if status == "" {
		status = StatusPending
	}

	return &Order{
		CustomerID: customerID,
		PlacedAt:   at,
		Status:     status,
		Notes:      notes,
	}, nil
}
