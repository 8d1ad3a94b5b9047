package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/dosadiner/pkg/httpx"
	"github.com/ghuser/dosadiner/services/ordering/domain/models"
)

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"customer not found"`
}

// CustomerResponse is the JSON representation of a customer.
type CustomerResponse struct {
	ID        int64     `json:"id"         example:"1"`
	Name      string    `json:"name"       example:"Asha Rao"`
	Phone     string    `json:"phone"      example:"+1-555-0100"`
	Email     *string   `json:"email"      example:"asha@example.com"`
	Address   *string   `json:"address"    example:"12 Curry Lane"`
	CreatedAt time.Time `json:"created_at" example:"2024-01-15T10:30:00Z"`
}

func newCustomerResponse(c *models.Customer) CustomerResponse {
	return CustomerResponse{
		ID:        c.ID,
		Name:      c.Name,
		Phone:     c.Phone,
		Email:     c.Email,
		Address:   c.Address,
		CreatedAt: c.CreatedAt,
	}
}

// MenuItemResponse is the JSON representation of a menu item.
type MenuItemResponse struct {
	ID          int64     `json:"id"          example:"1"`
	Name        string    `json:"name"        example:"Masala Dosa"`
	Price       float64   `json:"price"       example:"8.50"`
	Description *string   `json:"description" example:"Crispy crepe with spiced potato"`
	Category    string    `json:"category"    example:"Dosas"`
	CreatedAt   time.Time `json:"created_at"  example:"2024-01-15T10:30:00Z"`
}

func newMenuItemResponse(m *models.MenuItem) MenuItemResponse {
	return MenuItemResponse{
		ID:          m.ID,
		Name:        m.Name,
		Price:       m.Price,
		Description: m.Description,
		Category:    m.Category,
		CreatedAt:   m.CreatedAt,
	}
}

// OrderLineResponse is one line of an order. UnitPrice is the price captured
// when the line was added, not the current menu price.
type OrderLineResponse struct {
	ItemID       int64   `json:"item_id"       example:"1"`
	ItemName     string  `json:"item_name"     example:"Masala Dosa"`
	ItemCategory string  `json:"item_category" example:"Dosas"`
	Quantity     int32   `json:"quantity"      example:"2"`
	UnitPrice    float64 `json:"unit_price"    example:"8.50"`
}

func newOrderLineResponse(l models.OrderLine) OrderLineResponse {
	return OrderLineResponse{
		ItemID:       l.ItemID,
		ItemName:     l.ItemName,
		ItemCategory: l.ItemCategory,
		Quantity:     l.Quantity,
		UnitPrice:    l.UnitPrice,
	}
}

// OrderResponse is the JSON representation of an order with its lines.
type OrderResponse struct {
	ID         int64               `json:"id"          example:"1"`
	CustomerID int64               `json:"customer_id" example:"1"`
	PlacedAt   time.Time           `json:"placed_at"   example:"2024-01-15T10:30:00Z"`
	Status     string              `json:"status"      example:"Pending"`
	Notes      *string             `json:"notes"       example:"extra chutney"`
	Items      []OrderLineResponse `json:"items"`
}

func newOrderResponse(o *models.Order) OrderResponse {
	items := make([]OrderLineResponse, 0, len(o.Lines))
	for _, l := range o.Lines {
		items = append(items, newOrderLineResponse(l))
	}
	return OrderResponse{
		ID:         o.ID,
		CustomerID: o.CustomerID,
		PlacedAt:   o.PlacedAt,
		Status:     o.Status,
		Notes:      o.Notes,
		Items:      items,
	}
}

// idFromURL parses the named chi URL parameter as a positive int64. On
// failure it writes a 422 response and returns false.
func idFromURL(w http.ResponseWriter, r *http.Request, param string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, param), 10, 64)
	if err != nil || id <= 0 {
		httpx.JSON(w, http.StatusUnprocessableEntity, ErrorResponse{Error: "invalid " + param})
		return 0, false
	}
	return id, true
}
