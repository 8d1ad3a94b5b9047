package handlers

import (
	"net/http"

	"github.com/ghuser/dosadiner/pkg/errhttp"
	"github.com/ghuser/dosadiner/pkg/httpx"
	pkgvalidator "github.com/ghuser/dosadiner/pkg/validator"
	appsvcs "github.com/ghuser/dosadiner/services/ordering/application/services"
)

// AddOrderLineRequest is the request body for POST /orders/{id}/items.
type AddOrderLineRequest struct {
	ItemID   int64 `json:"item_id"  validate:"required,gt=0" example:"1"`
	Quantity int32 `json:"quantity" validate:"required,gt=0" example:"2"`
}

// PostOrderLineHandler handles POST /orders/{id}/items requests.
type PostOrderLineHandler struct {
	svc *appsvcs.Services
}

// NewPostOrderLineHandler returns a PostOrderLineHandler backed by the given services.
func NewPostOrderLineHandler(svc *appsvcs.Services) *PostOrderLineHandler {
	return &PostOrderLineHandler{svc: svc}
}

// Execute adds an item to an existing order, capturing the item's current
// price. If the order already has a line for the item, the quantity is
// replaced and the originally captured price kept.
func (h *PostOrderLineHandler) Execute(w http.ResponseWriter, r *http.Request) {
	orderID, ok := idFromURL(w, r, "id")
	if !ok {
		return
	}

	req, ok := pkgvalidator.ValidateRequest[AddOrderLineRequest](w, r)
	if !ok {
		return
	}

	line, err := h.svc.Orders.AddLine(r.Context(), orderID, req.ItemID, req.Quantity)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, newOrderLineResponse(*line))
}
