package handlers

import (
	"net/http"

	"github.com/ghuser/dosadiner/pkg/errhttp"
	"github.com/ghuser/dosadiner/pkg/httpx"
	appsvcs "github.com/ghuser/dosadiner/services/ordering/application/services"
)

// ListOrdersHandler handles GET /orders requests.
type ListOrdersHandler struct {
	svc *appsvcs.Services
}

// NewListOrdersHandler returns a ListOrdersHandler backed by the given services.
func NewListOrdersHandler(svc *appsvcs.Services) *ListOrdersHandler {
	return &ListOrdersHandler{svc: svc}
}

// Execute lists all orders with their lines in insertion order.
func (h *ListOrdersHandler) Execute(w http.ResponseWriter, r *http.Request) {
	orders, err := h.svc.Orders.List(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, newOrderResponse(o))
	}
	httpx.JSON(w, http.StatusOK, out)
}
