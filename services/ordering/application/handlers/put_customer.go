package handlers

import (
	"net/http"

	"github.com/ghuser/dosadiner/pkg/errhttp"
	"github.com/ghuser/dosadiner/pkg/httpx"
	pkgvalidator "github.com/ghuser/dosadiner/pkg/validator"
	appsvcs "github.com/ghuser/dosadiner/services/ordering/application/services"
)

// UpdateCustomerRequest is the request body for PUT /customers/{id}. All
// fields are replaced; omitting email or address clears them.
type UpdateCustomerRequest struct {
	Name    string  `json:"name"    validate:"required,min=1,max=255" example:"Asha Rao"`
	Phone   string  `json:"phone"   validate:"required,min=3,max=32"  example:"+1-555-0100"`
	Email   *string `json:"email"   validate:"omitempty,email"        example:"asha@example.com"`
	Address *string `json:"address" validate:"omitempty,max=512"      example:"12 Curry Lane"`
}

// PutCustomerHandler handles PUT /customers/{id} requests.
type PutCustomerHandler struct {
	svc *appsvcs.Services
}

// NewPutCustomerHandler returns a PutCustomerHandler backed by the given services.
func NewPutCustomerHandler(svc *appsvcs.Services) *PutCustomerHandler {
	return &PutCustomerHandler{svc: svc}
}

// Execute replaces all fields of an existing customer.
func (h *PutCustomerHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, ok := idFromURL(w, r, "id")
	if !ok {
		return
	}

	req, ok := pkgvalidator.ValidateRequest[UpdateCustomerRequest](w, r)
	if !ok {
		return
	}

	customer, err := h.svc.Customers.Update(r.Context(), id, req.Name, req.Phone, req.Email, req.Address)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, newCustomerResponse(customer))
}
