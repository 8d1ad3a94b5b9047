package handlers

import (
	"net/http"

	"github.com/ghuser/dosadiner/pkg/errhttp"
	"github.com/ghuser/dosadiner/pkg/httpx"
	appsvcs "github.com/ghuser/dosadiner/services/ordering/application/services"
)

// ListCustomersHandler handles GET /customers requests.
type ListCustomersHandler struct {
	svc *appsvcs.Services
}

// NewListCustomersHandler returns a ListCustomersHandler backed by the given services.
func NewListCustomersHandler(svc *appsvcs.Services) *ListCustomersHandler {
	return &ListCustomersHandler{svc: svc}
}

// Execute lists all customers in insertion order.
func (h *ListCustomersHandler) Execute(w http.ResponseWriter, r *http.Request) {
	customers, err := h.svc.Customers.List(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	out := make([]CustomerResponse, 0, len(customers))
	for _, c := range customers {
		out = append(out, newCustomerResponse(c))
	}
	httpx.JSON(w, http.StatusOK, out)
}
