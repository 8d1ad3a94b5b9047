package handlers

import (
	"net/http"

	"github.com/ghuser/dosadiner/pkg/errhttp"
	appsvcs "github.com/ghuser/dosadiner/services/ordering/application/services"
)

// DeleteOrderHandler handles DELETE /orders/{id} requests.
type DeleteOrderHandler struct {
	svc *appsvcs.Services
}

// NewDeleteOrderHandler returns a DeleteOrderHandler backed by the given services.
func NewDeleteOrderHandler(svc *appsvcs.Services) *DeleteOrderHandler {
	return &DeleteOrderHandler{svc: svc}
}

// Execute deletes an order together with all its lines. Customers and menu
// items referenced by the order are untouched.
func (h *DeleteOrderHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, ok := idFromURL(w, r, "id")
	if !ok {
		return
	}

	if err := h.svc.Orders.Delete(r.Context(), id); err != nil {
		errhttp.WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
