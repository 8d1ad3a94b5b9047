package handlers

import (
	"net/http"
	"time"

	"github.com/ghuser/dosadiner/pkg/errhttp"
	"github.com/ghuser/dosadiner/pkg/httpx"
	pkgvalidator "github.com/ghuser/dosadiner/pkg/validator"
	appsvcs "github.com/ghuser/dosadiner/services/ordering/application/services"
	"github.com/ghuser/dosadiner/services/ordering/domain/models"
)

// OrderLineRequest is one requested line of an order.
type OrderLineRequest struct {
	ItemID   int64 `json:"item_id"  validate:"required,gt=0" example:"1"`
	Quantity int32 `json:"quantity" validate:"required,gt=0" example:"2"`
}

// CreateOrderRequest is the request body for POST /orders. Items may be
// empty or omitted; lines are attachable later via POST /orders/{id}/items.
// placed_at defaults to now and status to "Pending". Listing the same item
// twice keeps the later quantity.
type CreateOrderRequest struct {
	CustomerID int64              `json:"customer_id" validate:"required,gt=0"    example:"1"`
	PlacedAt   *time.Time         `json:"placed_at"   validate:"omitempty"        example:"2024-01-15T10:30:00Z"`
	Status     string             `json:"status"      validate:"omitempty,max=32" example:"Pending"`
	Notes      *string            `json:"notes"       validate:"omitempty,max=1024"`
	Items      []OrderLineRequest `json:"items"       validate:"omitempty,dive"`
}

// PostOrderHandler handles POST /orders requests.
type PostOrderHandler struct {
	svc *appsvcs.Services
}

// NewPostOrderHandler returns a PostOrderHandler backed by the given services.
func NewPostOrderHandler(svc *appsvcs.Services) *PostOrderHandler {
	return &PostOrderHandler{svc: svc}
}

// Execute places a new order. The order and all its lines are persisted in
// one transaction; an unknown customer or item rejects the whole request and
// nothing is written.
func (h *PostOrderHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[CreateOrderRequest](w, r)
	if !ok {
		return
	}

	lines := make([]models.LineInput, 0, len(req.Items))
	for _, item := range req.Items {
		lines = append(lines, models.LineInput{ItemID: item.ItemID, Quantity: item.Quantity})
	}

	order, err := h.svc.Orders.Create(r.Context(), req.CustomerID, req.PlacedAt, req.Status, req.Notes, lines)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, newOrderResponse(order))
}
