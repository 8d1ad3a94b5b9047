package handlers

import (
	"net/http"

	"github.com/ghuser/dosadiner/pkg/errhttp"
	appsvcs "github.com/ghuser/dosadiner/services/ordering/application/services"
)

// DeleteCustomerHandler handles DELETE /customers/{id} requests.
type DeleteCustomerHandler struct {
	svc *appsvcs.Services
}

// NewDeleteCustomerHandler returns a DeleteCustomerHandler backed by the given services.
func NewDeleteCustomerHandler(svc *appsvcs.Services) *DeleteCustomerHandler {
	return &DeleteCustomerHandler{svc: svc}
}

// Execute deletes a customer. Customers with existing orders are rejected
// with 409; delete the orders first.
func (h *DeleteCustomerHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, ok := idFromURL(w, r, "id")
	if !ok {
		return
	}

	if err := h.svc.Customers.Delete(r.Context(), id); err != nil {
		errhttp.WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
