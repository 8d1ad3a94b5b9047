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

// MenuItemRepository implements repositories.MenuItemRepository against PostgreSQL.
type MenuItemRepository struct {
	db  *database.Database
	bus *events.EventBus
}

// NewMenuItemRepository returns a MenuItemRepository backed by the given pool
// and event bus. The bus publishes MenuItemCreatedEvents in the same
// transaction as the insert; pass nil to disable publishing.
func NewMenuItemRepository(db *database.Database, bus *events.EventBus) *MenuItemRepository {
	return &MenuItemRepository{db: db, bus: bus}
}

// Save persists a new menu item and publishes a MenuItemCreatedEvent within
// the same transaction.
func (r *MenuItemRepository) Save(ctx context.Context, item *models.MenuItem) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		err := tx.QueryRowContext(ctx,
			`INSERT INTO menu_items (name, price, description, category, created_at)
			 VALUES ($1, $2, $3, $4, $5)
			 RETURNING id`,
			item.Name, item.Price, item.Description, item.Category, item.CreatedAt,
		).Scan(&item.ID)
		if err != nil {
			return fmt.Errorf("insert menu item: %w", err)
		}

		if r.bus != nil {
			if err := r.publishCreated(tx, item); err != nil {
				return fmt.Errorf("publish menu item created: %w", err)
			}
		}
		return nil
	})
}

// GetByID retrieves a menu item by ID. Returns ErrMenuItemNotFound if absent.
func (r *MenuItemRepository) GetByID(ctx context.Context, id int64) (*models.MenuItem, error) {
	var item models.MenuItem
	err := r.db.DB().QueryRowContext(ctx,
		`SELECT id, name, price, description, category, created_at
		 FROM menu_items WHERE id = $1`,
		id,
	).Scan(&item.ID, &item.Name, &item.Price, &item.Description, &item.Category, &item.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrMenuItemNotFound
		}
		return nil, fmt.Errorf("query menu item: %w", err)
	}
	return &item, nil
}

// List retrieves all menu items in insertion order.
func (r *MenuItemRepository) List(ctx context.Context) ([]*models.MenuItem, error) {
	rows, err := r.db.DB().QueryContext(ctx,
		`SELECT id, name, price, description, category, created_at
		 FROM menu_items ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("query menu items: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	var items []*models.MenuItem
	for rows.Next() {
		var item models.MenuItem
		if err := rows.Scan(&item.ID, &item.Name, &item.Price, &item.Description, &item.Category, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan menu item: %w", err)
		}
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate menu items: %w", err)
	}
	return items, nil
}

// Update replaces all mutable fields of an existing menu item. Existing
// order lines keep their unit price snapshots; only the menu row changes.
func (r *MenuItemRepository) Update(ctx context.Context, item *models.MenuItem) error {
	res, err := r.db.DB().ExecContext(ctx,
		`UPDATE menu_items SET name = $2, price = $3, description = $4, category = $5
		 WHERE id = $1`,
		item.ID, item.Name, item.Price, item.Description, item.Category,
	)
	if err != nil {
		return fmt.Errorf("update menu item: %w", err)
	}
	return requireRowAffected(res, domain.ErrMenuItemNotFound)
}

// Delete removes a menu item. The delete policy is reject-on-conflict:
// an item still referenced by order lines yields ErrInUse.
func (r *MenuItemRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.DB().ExecContext(ctx, `DELETE FROM menu_items WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrInUse
		}
		return fmt.Errorf("delete menu item: %w", err)
	}
	return requireRowAffected(res, domain.ErrMenuItemNotFound)
}

func (r *MenuItemRepository) publishCreated(tx *sql.Tx, item *models.MenuItem) error {
	event := domainevents.MenuItemCreatedEvent{
		EventID:     uuid.New(),
		Version:     1,
		ItemID:      item.ID,
		Name:        item.Name,
		Price:       item.Price,
		Description: item.Description,
		Category:    item.Category,
		CreatedAt:   item.CreatedAt,
		OccurredAt:  time.Now().UTC(),
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
	return p.Publish(domainevents.TopicMenuItemCreated, msg)
}
