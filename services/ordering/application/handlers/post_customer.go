package handlers

import (
	"net/http"

	"github.com/ghuser/dosadiner/pkg/errhttp"
	"github.com/ghuser/dosadiner/pkg/httpx"
	pkgvalidator "github.com/ghuser/dosadiner/pkg/validator"
	appsvcs "github.com/ghuser/dosadiner/services/ordering/application/services"
)

// CreateCustomerRequest is the request body for POST /customers.
type CreateCustomerRequest struct {
	Name    string  `json:"name"    validate:"required,min=1,max=255" example:"Asha Rao"`
	Phone   string  `json:"phone"   validate:"required,min=3,max=32"  example:"+1-555-0100"`
	Email   *string `json:"email"   validate:"omitempty,email"        example:"asha@example.com"`
	Address *string `json:"address" validate:"omitempty,max=512"      example:"12 Curry Lane"`
}

// PostCustomerHandler handles POST /customers requests.
type PostCustomerHandler struct {
	svc *appsvcs.Services
}

// NewPostCustomerHandler returns a PostCustomerHandler backed by the given services.
func NewPostCustomerHandler(svc *appsvcs.Services) *PostCustomerHandler {
	return &PostCustomerHandler{svc: svc}
}

// Execute registers a new customer. A phone or email already held by another
// customer is rejected with 409.
func (h *PostCustomerHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[CreateCustomerRequest](w, r)
	if !ok {
		return
	}

	customer, err := h.svc.Customers.Create(r.Context(), req.Name, req.Phone, req.Email, req.Address)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, newCustomerResponse(customer))
}
