package handlers

import (
	"net/http"

	"github.com/ghuser/dosadiner/pkg/errhttp"
	"github.com/ghuser/dosadiner/pkg/httpx"
	appsvcs "github.com/ghuser/dosadiner/services/ordering/application/services"
)

// GetCustomerHandler handles GET /customers/{id} requests.
type GetCustomerHandler struct {
	svc *appsvcs.Services
}

// NewGetCustomerHandler returns a GetCustomerHandler backed by the given services.
func NewGetCustomerHandler(svc *appsvcs.Services) *GetCustomerHandler {
	return &GetCustomerHandler{svc: svc}
}

// Execute fetches one customer by ID.
func (h *GetCustomerHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, ok := idFromURL(w, r, "id")
	if !ok {
		return
	}

	customer, err := h.svc.Customers.Get(r.Context(), id)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, newCustomerResponse(customer))
}
