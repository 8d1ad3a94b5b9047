package services

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/ghuser/dosadiner/pkg/config"
	"github.com/ghuser/dosadiner/pkg/logger"
	"github.com/ghuser/dosadiner/services/ordering/domain"
	"github.com/ghuser/dosadiner/services/ordering/domain/models"
)

// fakeStore is an in-memory stand-in for the Postgres repositories. It
// honors the same contracts: unique customer contacts, price snapshots on
// lines, reject-on-conflict deletes, and atomic order creation.
type fakeStore struct {
	mu        sync.Mutex
	nextID    int64
	customers map[int64]models.Customer
	items     map[int64]models.MenuItem
	orders    map[int64]models.Order
	lines     map[int64]map[int64]models.OrderLine // orderID -> itemID -> line
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		customers: make(map[int64]models.Customer),
		items:     make(map[int64]models.MenuItem),
		orders:    make(map[int64]models.Order),
		lines:     make(map[int64]map[int64]models.OrderLine),
	}
}

func (s *fakeStore) id() int64 {
	s.nextID++
	return s.nextID
}

type fakeCustomerRepo struct{ s *fakeStore }

func (r *fakeCustomerRepo) contactTaken(c *models.Customer) bool {
	for id, existing := range r.s.customers {
		if id == c.ID {
			continue
		}
		if existing.Phone == c.Phone {
			return true
		}
		if existing.Email != nil && c.Email != nil && *existing.Email == *c.Email {
			return true
		}
	}
	return false
}

func (r *fakeCustomerRepo) Save(_ context.Context, c *models.Customer) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.contactTaken(c) {
		return domain.ErrDuplicateContact
	}
	c.ID = r.s.id()
	r.s.customers[c.ID] = *c
	return nil
}

func (r *fakeCustomerRepo) GetByID(_ context.Context, id int64) (*models.Customer, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.customers[id]
	if !ok {
		return nil, domain.ErrCustomerNotFound
	}
	return &c, nil
}

func (r *fakeCustomerRepo) List(_ context.Context) ([]*models.Customer, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*models.Customer, 0, len(r.s.customers))
	for id := range r.s.customers {
		c := r.s.customers[id]
		out = append(out, &c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeCustomerRepo) Update(_ context.Context, c *models.Customer) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	existing, ok := r.s.customers[c.ID]
	if !ok {
		return domain.ErrCustomerNotFound
	}
	if r.contactTaken(c) {
		return domain.ErrDuplicateContact
	}
	c.CreatedAt = existing.CreatedAt
	r.s.customers[c.ID] = *c
	return nil
}

func (r *fakeCustomerRepo) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.customers[id]; !ok {
		return domain.ErrCustomerNotFound
	}
	for _, o := range r.s.orders {
		if o.CustomerID == id {
			return domain.ErrInUse
		}
	}
	delete(r.s.customers, id)
	return nil
}

type fakeMenuItemRepo struct{ s *fakeStore }

func (r *fakeMenuItemRepo) Save(_ context.Context, m *models.MenuItem) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	m.ID = r.s.id()
	r.s.items[m.ID] = *m
	return nil
}

func (r *fakeMenuItemRepo) GetByID(_ context.Context, id int64) (*models.MenuItem, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	m, ok := r.s.items[id]
	if !ok {
		return nil, domain.ErrMenuItemNotFound
	}
	return &m, nil
}

func (r *fakeMenuItemRepo) List(_ context.Context) ([]*models.MenuItem, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*models.MenuItem, 0, len(r.s.items))
	for id := range r.s.items {
		m := r.s.items[id]
		out = append(out, &m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeMenuItemRepo) Update(_ context.Context, m *models.MenuItem) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	existing, ok := r.s.items[m.ID]
	if !ok {
		return domain.ErrMenuItemNotFound
	}
	m.CreatedAt = existing.CreatedAt
	r.s.items[m.ID] = *m
	return nil
}

func (r *fakeMenuItemRepo) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.items[id]; !ok {
		return domain.ErrMenuItemNotFound
	}
	for _, byItem := range r.s.lines {
		if _, ok := byItem[id]; ok {
			return domain.ErrInUse
		}
	}
	delete(r.s.items, id)
	return nil
}

type fakeOrderRepo struct{ s *fakeStore }

func (r *fakeOrderRepo) upsertLineLocked(orderID, itemID int64, quantity int32) (*models.OrderLine, error) {
	item, ok := r.s.items[itemID]
	if !ok {
		return nil, domain.ErrMenuItemNotFound
	}
	byItem := r.s.lines[orderID]
	if byItem == nil {
		byItem = make(map[int64]models.OrderLine)
		r.s.lines[orderID] = byItem
	}
	line, exists := byItem[itemID]
	if exists {
		line.Quantity = quantity
	} else {
		line = models.OrderLine{
			OrderID:   orderID,
			ItemID:    itemID,
			Quantity:  quantity,
			UnitPrice: item.Price,
		}
	}
	line.ItemName = item.Name
	line.ItemCategory = item.Category
	byItem[itemID] = line
	return &line, nil
}

func (r *fakeOrderRepo) Create(_ context.Context, order *models.Order, lines []models.LineInput) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.customers[order.CustomerID]; !ok {
		return domain.ErrCustomerNotFound
	}
	id := r.s.id()
	order.ID = id
	order.Lines = make([]models.OrderLine, 0, len(lines))
	for _, in := range lines {
		line, err := r.upsertLineLocked(id, in.ItemID, in.Quantity)
		if err != nil {
			// Atomicity: roll the whole order back.
			delete(r.s.lines, id)
			order.ID = 0
			return err
		}
		order.Lines = append(order.Lines, *line)
	}
	r.s.orders[id] = *order
	return nil
}

func (r *fakeOrderRepo) linesLocked(orderID int64) []models.OrderLine {
	byItem := r.s.lines[orderID]
	out := make([]models.OrderLine, 0, len(byItem))
	for itemID := range byItem {
		line := byItem[itemID]
		if item, ok := r.s.items[itemID]; ok {
			line.ItemName = item.Name
			line.ItemCategory = item.Category
		}
		out = append(out, line)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ItemID < out[j].ItemID })
	return out
}

func (r *fakeOrderRepo) GetByID(_ context.Context, id int64) (*models.Order, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	o, ok := r.s.orders[id]
	if !ok {
		return nil, domain.ErrOrderNotFound
	}
	o.Lines = r.linesLocked(id)
	return &o, nil
}

func (r *fakeOrderRepo) List(_ context.Context) ([]*models.Order, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*models.Order, 0, len(r.s.orders))
	for id := range r.s.orders {
		o := r.s.orders[id]
		o.Lines = r.linesLocked(id)
		out = append(out, &o)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeOrderRepo) Update(_ context.Context, order *models.Order) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.orders[order.ID]; !ok {
		return domain.ErrOrderNotFound
	}
	if _, ok := r.s.customers[order.CustomerID]; !ok {
		return fmt.Errorf("%w: customer %d does not exist", domain.ErrInvalidInput, order.CustomerID)
	}
	stored := r.s.orders[order.ID]
	stored.CustomerID = order.CustomerID
	stored.PlacedAt = order.PlacedAt
	stored.Status = order.Status
	stored.Notes = order.Notes
	r.s.orders[order.ID] = stored
	return nil
}

func (r *fakeOrderRepo) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.orders[id]; !ok {
		return domain.ErrOrderNotFound
	}
	delete(r.s.lines, id)
	delete(r.s.orders, id)
	return nil
}

func (r *fakeOrderRepo) UpsertLine(_ context.Context, orderID, itemID int64, quantity int32) (*models.OrderLine, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.orders[orderID]; !ok {
		return nil, domain.ErrOrderNotFound
	}
	return r.upsertLineLocked(orderID, itemID, quantity)
}

func (r *fakeOrderRepo) RemoveLine(_ context.Context, orderID, itemID int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	byItem := r.s.lines[orderID]
	if _, ok := byItem[itemID]; !ok {
		return domain.ErrOrderLineNotFound
	}
	delete(byItem, itemID)
	return nil
}

func lineInputs(itemID int64, quantity int32) []models.LineInput {
	return []models.LineInput{{ItemID: itemID, Quantity: quantity}}
}

// newFakeServices wires the application services against one shared fake
// store, with caching disabled and logging quieted.
func newFakeServices() (*Services, *fakeStore) {
	store := newFakeStore()
	log := logger.New(&config.Config{LogLevel: "error"})
	return &Services{
		Customers: NewCustomerService(&fakeCustomerRepo{s: store}),
		Menu:      NewMenuService(&fakeMenuItemRepo{s: store}, nil, log),
		Orders:    NewOrderService(&fakeOrderRepo{s: store}),
	}, store
}
