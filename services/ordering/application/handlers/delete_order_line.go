package handlers

import (
	"net/http"

	"github.com/ghuser/dosadiner/pkg/errhttp"
	appsvcs "github.com/ghuser/dosadiner/services/ordering/application/services"
)

// DeleteOrderLineHandler handles DELETE /orders/{id}/items/{itemID} requests.
type DeleteOrderLineHandler struct {
	svc *appsvcs.Services
}

// NewDeleteOrderLineHandler returns a DeleteOrderLineHandler backed by the given services.
func NewDeleteOrderLineHandler(svc *appsvcs.Services) *DeleteOrderLineHandler {
	return &DeleteOrderLineHandler{svc: svc}
}

// Execute removes one item line from an order.
func (h *DeleteOrderLineHandler) Execute(w http.ResponseWriter, r *http.Request) {
	orderID, ok := idFromURL(w, r, "id")
	if !ok {
		return
	}
	itemID, ok := idFromURL(w, r, "itemID")
	if !ok {
		return
	}

	if err := h.svc.Orders.RemoveLine(r.Context(), orderID, itemID); err != nil {
		errhttp.WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
