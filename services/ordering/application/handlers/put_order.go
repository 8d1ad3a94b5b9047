package handlers

import (
	"net/http"
	"time"

	"github.com/ghuser/dosadiner/pkg/errhttp"
	"github.com/ghuser/dosadiner/pkg/httpx"
	pkgvalidator "github.com/ghuser/dosadiner/pkg/validator"
	appsvcs "github.com/ghuser/dosadiner/services/ordering/application/services"
)

// UpdateOrderRequest is the request body for PUT /orders/{id}. It replaces
// the order header only; lines are managed through the /orders/{id}/items
// endpoints so their captured unit prices survive.
type UpdateOrderRequest struct {
	CustomerID int64      `json:"customer_id" validate:"required,gt=0"    example:"1"`
	PlacedAt   *time.Time `json:"placed_at"   validate:"omitempty"        example:"2024-01-15T10:30:00Z"`
	Status     string     `json:"status"      validate:"omitempty,max=32" example:"Completed"`
	Notes      *string    `json:"notes"       validate:"omitempty,max=1024"`
}

// PutOrderHandler handles PUT /orders/{id} requests.
type PutOrderHandler struct {
	svc *appsvcs.Services
}

// NewPutOrderHandler returns a PutOrderHandler backed by the given services.
func NewPutOrderHandler(svc *appsvcs.Services) *PutOrderHandler {
	return &PutOrderHandler{svc: svc}
}

// Execute replaces the header fields of an existing order.
func (h *PutOrderHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, ok := idFromURL(w, r, "id")
	if !ok {
		return
	}

	req, ok := pkgvalidator.ValidateRequest[UpdateOrderRequest](w, r)
	if !ok {
		return
	}

	order, err := h.svc.Orders.Update(r.Context(), id, req.CustomerID, req.PlacedAt, req.Status, req.Notes)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, newOrderResponse(order))
}
