package handlers

import (
	"net/http"

	"github.com/ghuser/dosadiner/pkg/errhttp"
	"github.com/ghuser/dosadiner/pkg/httpx"
	appsvcs "github.com/ghuser/dosadiner/services/ordering/application/services"
)

// GetOrderHandler handles GET /orders/{id} requests.
type GetOrderHandler struct {
	svc *appsvcs.Services
}

// NewGetOrderHandler returns a GetOrderHandler backed by the given services.
func NewGetOrderHandler(svc *appsvcs.Services) *GetOrderHandler {
	return &GetOrderHandler{svc: svc}
}

// Execute fetches one order with its lines.
func (h *GetOrderHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, ok := idFromURL(w, r, "id")
	if !ok {
		return
	}

	order, err := h.svc.Orders.Get(r.Context(), id)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, newOrderResponse(order))
}
