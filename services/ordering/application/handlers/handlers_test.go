package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/dosadiner/pkg/config"
	"github.com/ghuser/dosadiner/pkg/logger"
	"github.com/ghuser/dosadiner/services/ordering/application/handlers"
	appsvcs "github.com/ghuser/dosadiner/services/ordering/application/services"
	"github.com/ghuser/dosadiner/services/ordering/domain"
	"github.com/ghuser/dosadiner/services/ordering/domain/models"
)

// memStore is a minimal in-memory backend implementing the repository
// interfaces for handler-level tests.
type memStore struct {
	nextID    int64
	customers map[int64]models.Customer
	items     map[int64]models.MenuItem
	orders    map[int64]models.Order
	lines     map[int64]map[int64]models.OrderLine
}

func newMemStore() *memStore {
	return &memStore{
		customers: make(map[int64]models.Customer),
		items:     make(map[int64]models.MenuItem),
		orders:    make(map[int64]models.Order),
		lines:     make(map[int64]map[int64]models.OrderLine),
	}
}

func (s *memStore) id() int64 { s.nextID++; return s.nextID }

type memCustomerRepo struct{ s *memStore }

func (r *memCustomerRepo) Save(_ context.Context, c *models.Customer) error {
	for _, existing := range r.s.customers {
		if existing.Phone == c.Phone {
			return domain.ErrDuplicateContact
		}
	}
	c.ID = r.s.id()
	r.s.customers[c.ID] = *c
	return nil
}

func (r *memCustomerRepo) GetByID(_ context.Context, id int64) (*models.Customer, error) {
	c, ok := r.s.customers[id]
	if !ok {
		return nil, domain.ErrCustomerNotFound
	}
	return &c, nil
}

func (r *memCustomerRepo) List(_ context.Context) ([]*models.Customer, error) {
	out := make([]*models.Customer, 0, len(r.s.customers))
	for id := range r.s.customers {
		c := r.s.customers[id]
		out = append(out, &c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memCustomerRepo) Update(_ context.Context, c *models.Customer) error {
	if _, ok := r.s.customers[c.ID]; !ok {
		return domain.ErrCustomerNotFound
	}
	r.s.customers[c.ID] = *c
	return nil
}

func (r *memCustomerRepo) Delete(_ context.Context, id int64) error {
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

type memMenuItemRepo struct{ s *memStore }

func (r *memMenuItemRepo) Save(_ context.Context, m *models.MenuItem) error {
	m.ID = r.s.id()
	r.s.items[m.ID] = *m
	return nil
}

func (r *memMenuItemRepo) GetByID(_ context.Context, id int64) (*models.MenuItem, error) {
	m, ok := r.s.items[id]
	if !ok {
		return nil, domain.ErrMenuItemNotFound
	}
	return &m, nil
}

func (r *memMenuItemRepo) List(_ context.Context) ([]*models.MenuItem, error) {
	out := make([]*models.MenuItem, 0, len(r.s.items))
	for id := range r.s.items {
		m := r.s.items[id]
		out = append(out, &m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memMenuItemRepo) Update(_ context.Context, m *models.MenuItem) error {
	if _, ok := r.s.items[m.ID]; !ok {
		return domain.ErrMenuItemNotFound
	}
	r.s.items[m.ID] = *m
	return nil
}

func (r *memMenuItemRepo) Delete(_ context.Context, id int64) error {
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

type memOrderRepo struct{ s *memStore }

func (r *memOrderRepo) upsert(orderID, itemID int64, quantity int32) (*models.OrderLine, error) {
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
		line = models.OrderLine{OrderID: orderID, ItemID: itemID, Quantity: quantity, UnitPrice: item.Price}
	}
	line.ItemName = item.Name
	line.ItemCategory = item.Category
	byItem[itemID] = line
	return &line, nil
}

func (r *memOrderRepo) Create(_ context.Context, order *models.Order, lines []models.LineInput) error {
	if _, ok := r.s.customers[order.CustomerID]; !ok {
		return domain.ErrCustomerNotFound
	}
	id := r.s.id()
	order.ID = id
	order.Lines = make([]models.OrderLine, 0, len(lines))
	for _, in := range lines {
		line, err := r.upsert(id, in.ItemID, in.Quantity)
		if err != nil {
			delete(r.s.lines, id)
			order.ID = 0
			return err
		}
		order.Lines = append(order.Lines, *line)
	}
	r.s.orders[id] = *order
	return nil
}

func (r *memOrderRepo) loadLines(orderID int64) []models.OrderLine {
	byItem := r.s.lines[orderID]
	out := make([]models.OrderLine, 0, len(byItem))
	for itemID := range byItem {
		out = append(out, byItem[itemID])
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ItemID < out[j].ItemID })
	return out
}

func (r *memOrderRepo) GetByID(_ context.Context, id int64) (*models.Order, error) {
	o, ok := r.s.orders[id]
	if !ok {
		return nil, domain.ErrOrderNotFound
	}
	o.Lines = r.loadLines(id)
	return &o, nil
}

func (r *memOrderRepo) List(_ context.Context) ([]*models.Order, error) {
	out := make([]*models.Order, 0, len(r.s.orders))
	for id := range r.s.orders {
		o := r.s.orders[id]
		o.Lines = r.loadLines(id)
		out = append(out, &o)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memOrderRepo) Update(_ context.Context, order *models.Order) error {
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

func (r *memOrderRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.s.orders[id]; !ok {
		return domain.ErrOrderNotFound
	}
	delete(r.s.lines, id)
	delete(r.s.orders, id)
	return nil
}

func (r *memOrderRepo) UpsertLine(_ context.Context, orderID, itemID int64, quantity int32) (*models.OrderLine, error) {
	if _, ok := r.s.orders[orderID]; !ok {
		return nil, domain.ErrOrderNotFound
	}
	return r.upsert(orderID, itemID, quantity)
}

func (r *memOrderRepo) RemoveLine(_ context.Context, orderID, itemID int64) error {
	byItem := r.s.lines[orderID]
	if _, ok := byItem[itemID]; !ok {
		return domain.ErrOrderLineNotFound
	}
	delete(byItem, itemID)
	return nil
}

// newTestRouter mounts the full ordering route tree over the in-memory store.
func newTestRouter() (*chi.Mux, *memStore) {
	store := newMemStore()
	log := logger.New(&config.Config{LogLevel: "error"})
	svcs := &appsvcs.Services{
		Customers: appsvcs.NewCustomerService(&memCustomerRepo{s: store}),
		Menu:      appsvcs.NewMenuService(&memMenuItemRepo{s: store}, nil, log),
		Orders:    appsvcs.NewOrderService(&memOrderRepo{s: store}),
	}

	r := chi.NewRouter()
	r.Route("/customers", func(r chi.Router) {
		r.Post("/", handlers.NewPostCustomerHandler(svcs).Execute)
		r.Get("/", handlers.NewListCustomersHandler(svcs).Execute)
		r.Get("/{id}", handlers.NewGetCustomerHandler(svcs).Execute)
		r.Put("/{id}", handlers.NewPutCustomerHandler(svcs).Execute)
		r.Delete("/{id}", handlers.NewDeleteCustomerHandler(svcs).Execute)
	})
	r.Route("/items", func(r chi.Router) {
		r.Post("/", handlers.NewPostMenuItemHandler(svcs).Execute)
		r.Get("/", handlers.NewListMenuItemsHandler(svcs).Execute)
		r.Get("/{id}", handlers.NewGetMenuItemHandler(svcs).Execute)
		r.Put("/{id}", handlers.NewPutMenuItemHandler(svcs).Execute)
		r.Delete("/{id}", handlers.NewDeleteMenuItemHandler(svcs).Execute)
	})
	r.Route("/orders", func(r chi.Router) {
		r.Post("/", handlers.NewPostOrderHandler(svcs).Execute)
		r.Get("/", handlers.NewListOrdersHandler(svcs).Execute)
		r.Get("/{id}", handlers.NewGetOrderHandler(svcs).Execute)
		r.Put("/{id}", handlers.NewPutOrderHandler(svcs).Execute)
		r.Delete("/{id}", handlers.NewDeleteOrderHandler(svcs).Execute)
		r.Post("/{id}/items", handlers.NewPostOrderLineHandler(svcs).Execute)
		r.Delete("/{id}/items/{itemID}", handlers.NewDeleteOrderLineHandler(svcs).Execute)
	})
	return r, store
}

func doJSON(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
	return out
}
