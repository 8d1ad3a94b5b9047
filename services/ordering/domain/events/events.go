package events

import (
	"time"

	"github.com/google/uuid"
)

// Watermill topics published by the ordering context.
const (
	// TopicOrderCreated is published after an order and its lines are persisted.
	TopicOrderCreated = "ordering.order.created"

	// TopicMenuItemCreated is published after a new menu item is persisted.
	TopicMenuItemCreated = "ordering.menu_item.created"
)

// OrderCreatedEvent is published in the same transaction that writes the
// order and its lines, so consumers never observe an order that later
// rolled back.
type OrderCreatedEvent struct {
	EventID    uuid.UUID `json:"event_id"` // Unique publish-time identifier for deduplication
	Version    int       `json:"version"`  // Schema version; increment on breaking changes
	OrderID    int64     `json:"order_id"`
	CustomerID int64     `json:"customer_id"`
	Status     string    `json:"status"`
	LineCount  int       `json:"line_count"`
	OccurredAt time.Time `json:"occurred_at"`
}

// MenuItemCreatedEvent is published after a new menu item is persisted.
// The worker warms the Redis menu cache from it.
type MenuItemCreatedEvent struct {
	EventID     uuid.UUID `json:"event_id"`
	Version     int       `json:"version"`
	ItemID      int64     `json:"item_id"`
	Name        string    `json:"name"`
	Price       float64   `json:"price"`
	Description *string   `json:"description"`
	Category    string    `json:"category"`
	CreatedAt   time.Time `json:"created_at"`
	OccurredAt  time.Time `json:"occurred_at"`
}
