package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"

	"github.com/ghuser/dosadiner/pkg/database"
	"github.com/ghuser/dosadiner/pkg/events"
	"github.com/ghuser/dosadiner/services/ordering/domain"
	domainevents "github.com/ghuser/dosadiner/services/ordering/domain/events"
	"github.com/ghuser/dosadiner/services/ordering/domain/models"
)

// OrderRepository implements repositories.OrderRepository against PostgreSQL.
//
// Every multi-row operation (create with lines, cascade delete, line upsert)
// runs in a single transaction, so readers never observe a partially applied
// order and the price snapshot is taken under the same isolation as the line
// insert.
type OrderRepository struct {
	db  *database.Database
	bus *events.EventBus
}

// NewOrderRepository returns an OrderRepository backed by the given pool and
// event bus. The bus publishes OrderCreatedEvents in the same transaction as
// the order rows; pass nil to disable publishing.
func NewOrderRepository(db *database.Database, bus *events.EventBus) *OrderRepository {
	return &OrderRepository{db: db, bus: bus}
}

// Create persists the order and all its lines atomically. For each line the
// referenced menu item is resolved (ErrMenuItemNotFound aborts the whole
// transaction) and its current price is snapshotted into unit_price.
// A duplicated item within the request updates the quantity of the existing
// line instead of inserting a second row.
func (r *OrderRepository) Create(ctx context.Context, order *models.Order, lines []models.LineInput) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		var exists bool
		if err := tx.QueryRowContext(ctx,
			`SELECT EXISTS (SELECT 1 FROM customers WHERE id = $1)`, order.CustomerID,
		).Scan(&exists); err != nil {
			return fmt.Errorf("check customer: %w", err)
		}
		if !exists {
			return domain.ErrCustomerNotFound
		}

		err := tx.QueryRowContext(ctx,
			`INSERT INTO orders (customer_id, placed_at, status, notes)
			 VALUES ($1, $2, $3, $4)
			 RETURNING id`,
			order.CustomerID, order.PlacedAt, order.Status, order.Notes,
		).Scan(&order.ID)
		if err != nil {
			return fmt.Errorf("insert order: %w", err)
		}

		order.Lines = make([]models.OrderLine, 0, len(lines))
		for _, in := range lines {
			line, err := upsertLineTx(ctx, tx, order.ID, in.ItemID, in.Quantity)
			if err != nil {
				return err
			}
			order.Lines = append(order.Lines, *line)
		}

		if r.bus != nil {
			if err := r.publishCreated(tx, order); err != nil {
				return fmt.Errorf("publish order created: %w", err)
			}
		}
		return nil
	})
}

// GetByID loads the order with its lines, each joined with the current menu
// item name/category for display. unit_price always comes from the stored
// line, never from the menu.
func (r *OrderRepository) GetByID(ctx context.Context, id int64) (*models.Order, error) {
	var o models.Order
	err := r.db.DB().QueryRowContext(ctx,
		`SELECT id, customer_id, placed_at, status, notes
		 FROM orders WHERE id = $1`,
		id,
	).Scan(&o.ID, &o.CustomerID, &o.PlacedAt, &o.Status, &o.Notes)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, fmt.Errorf("query order: %w", err)
	}

	lines, err := r.queryLines(ctx, `WHERE oi.order_id = $1`, id)
	if err != nil {
		return nil, err
	}
	o.Lines = lines
	return &o, nil
}

// List retrieves all orders with their lines in insertion order.
func (r *OrderRepository) List(ctx context.Context) ([]*models.Order, error) {
	rows, err := r.db.DB().QueryContext(ctx,
		`SELECT id, customer_id, placed_at, status, notes
		 FROM orders ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("query orders: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	var orders []*models.Order
	byID := make(map[int64]*models.Order)
	for rows.Next() {
		var o models.Order
		if err := rows.Scan(&o.ID, &o.CustomerID, &o.PlacedAt, &o.Status, &o.Notes); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		o.Lines = []models.OrderLine{}
		orders = append(orders, &o)
		byID[o.ID] = &o
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate orders: %w", err)
	}
	if len(orders) == 0 {
		return orders, nil
	}

	lines, err := r.queryLines(ctx, ``)
	if err != nil {
		return nil, err
	}
	for _, line := range lines {
		if o, ok := byID[line.OrderID]; ok {
			o.Lines = append(o.Lines, line)
		}
	}
	return orders, nil
}

// Update replaces the order's customer, timestamp, status, and notes. Lines
// are deliberately untouched: whole-order replacement must not reset their
// unit price snapshots. NotFound is reserved for the order id itself;
// reassigning to a customer that does not resolve is ErrInvalidInput.
func (r *OrderRepository) Update(ctx context.Context, order *models.Order) error {
	res, err := r.db.DB().ExecContext(ctx,
		`UPDATE orders SET customer_id = $2, placed_at = $3, status = $4, notes = $5
		 WHERE id = $1`,
		order.ID, order.CustomerID, order.PlacedAt, order.Status, order.Notes,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: customer %d does not exist", domain.ErrInvalidInput, order.CustomerID)
		}
		return fmt.Errorf("update order: %w", err)
	}
	return requireRowAffected(res, domain.ErrOrderNotFound)
}

// Delete removes the order and all its lines in one transaction. The
// ownership cascade is unconditional; the referenced menu items remain.
func (r *OrderRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM order_items WHERE order_id = $1`, id); err != nil {
			return fmt.Errorf("delete order lines: %w", err)
		}
		res, err := tx.ExecContext(ctx, `DELETE FROM orders WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("delete order: %w", err)
		}
		return requireRowAffected(res, domain.ErrOrderNotFound)
	})
}

// UpsertLine adds a line for the item, snapshotting the item's current
// price. If the order already holds a line for the item, only the quantity
// changes and the original price snapshot is preserved.
func (r *OrderRepository) UpsertLine(ctx context.Context, orderID, itemID int64, quantity int32) (*models.OrderLine, error) {
	var line *models.OrderLine
	err := r.db.WithTx(ctx, func(tx *sql.Tx) error {
		var exists bool
		if err := tx.QueryRowContext(ctx,
			`SELECT EXISTS (SELECT 1 FROM orders WHERE id = $1)`, orderID,
		).Scan(&exists); err != nil {
			return fmt.Errorf("check order: %w", err)
		}
		if !exists {
			return domain.ErrOrderNotFound
		}

		l, err := upsertLineTx(ctx, tx, orderID, itemID, quantity)
		if err != nil {
			return err
		}
		line = l
		return nil
	})
	if err != nil {
		return nil, err
	}
	return line, nil
}

// RemoveLine deletes one line from an order.
func (r *OrderRepository) RemoveLine(ctx context.Context, orderID, itemID int64) error {
	res, err := r.db.DB().ExecContext(ctx,
		`DELETE FROM order_items WHERE order_id = $1 AND item_id = $2`,
		orderID, itemID,
	)
	if err != nil {
		return fmt.Errorf("delete order line: %w", err)
	}
	return requireRowAffected(res, domain.ErrOrderLineNotFound)
}

// upsertLineTx resolves the menu item, snapshots its price, and upserts the
// (order_id, item_id) row. On conflict only the quantity is rewritten; the
// stored unit_price stays, keeping the snapshot taken when the line was
// first added. The snapshot SELECT and the INSERT share tx, so a concurrent
// price update cannot slip between them.
func upsertLineTx(ctx context.Context, tx *sql.Tx, orderID, itemID int64, quantity int32) (*models.OrderLine, error) {
	var (
		name     string
		category string
		price    float64
	)
	err := tx.QueryRowContext(ctx,
		`SELECT name, category, price FROM menu_items WHERE id = $1`, itemID,
	).Scan(&name, &category, &price)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrMenuItemNotFound
		}
		return nil, fmt.Errorf("query menu item for line: %w", err)
	}

	line := models.OrderLine{
		OrderID:      orderID,
		ItemID:       itemID,
		ItemName:     name,
		ItemCategory: category,
	}
	err = tx.QueryRowContext(ctx,
		`INSERT INTO order_items (order_id, item_id, quantity, unit_price)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (order_id, item_id) DO UPDATE SET quantity = EXCLUDED.quantity
		 RETURNING quantity, unit_price`,
		orderID, itemID, quantity, price,
	).Scan(&line.Quantity, &line.UnitPrice)
	if err != nil {
		return nil, fmt.Errorf("upsert order line: %w", err)
	}
	return &line, nil
}

// queryLines loads order lines joined with current menu display fields.
// where is an optional "WHERE ..." clause over alias oi.
func (r *OrderRepository) queryLines(ctx context.Context, where string, args ...any) ([]models.OrderLine, error) {
	q := `SELECT oi.order_id, oi.item_id, oi.quantity, oi.unit_price, mi.name, mi.category
	      FROM order_items oi
	      JOIN menu_items mi ON mi.id = oi.item_id ` + where + `
	      ORDER BY oi.order_id, oi.item_id`
	rows, err := r.db.DB().QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query order lines: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	lines := []models.OrderLine{}
	for rows.Next() {
		var l models.OrderLine
		if err := rows.Scan(&l.OrderID, &l.ItemID, &l.Quantity, &l.UnitPrice, &l.ItemName, &l.ItemCategory); err != nil {
			return nil, fmt.Errorf("scan order line: %w", err)
		}
		lines = append(lines, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate order lines: %w", err)
	}
	return lines, nil
}

func (r *OrderRepository) publishCreated(tx *sql.Tx, order *models.Order) error {
	event := domainevents.OrderCreatedEvent{
		EventID:    uuid.New(),
		Version:    1,
		OrderID:    order.ID,
		CustomerID: order.CustomerID,
		Status:     order.Status,
		LineCount:  len(order.Lines),
		OccurredAt: time.Now().UTC(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.Metadata.Set("event_id", event.EventID.String())
	msg.Metadata.Set("event_version", "1")
	p, err := r.bus.NewTxPublisher(tx)
	if err != nil {
		return fmt.Errorf("create publisher: %w", err)
	}
	return p.Publish(domainevents.TopicOrderCreated, msg)
}
