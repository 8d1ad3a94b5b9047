package handlers

import (
	"net/http"

	"github.com/ghuser/dosadiner/pkg/errhttp"
	"github.com/ghuser/dosadiner/pkg/httpx"
	pkgvalidator "github.com/ghuser/dosadiner/pkg/validator"
	appsvcs "github.com/ghuser/dosadiner/services/ordering/application/services"
)

// UpdateMenuItemRequest is the request body for PUT /items/{id}. All fields
// are replaced. Price changes do not touch unit prices already captured on
// order lines.
type UpdateMenuItemRequest struct {
	Name        string  `json:"name"        validate:"required,min=1,max=255" example:"Masala Dosa"`
	Price       float64 `json:"price"       validate:"gte=0"                  example:"9.00"`
	Description *string `json:"description" validate:"omitempty,max=1024"     example:"Crispy crepe with spiced potato"`
	Category    string  `json:"category"    validate:"omitempty,max=64"       example:"Dosas"`
}

// PutMenuItemHandler handles PUT /items/{id} requests.
type PutMenuItemHandler struct {
	svc *appsvcs.Services
}

// NewPutMenuItemHandler returns a PutMenuItemHandler backed by the given services.
func NewPutMenuItemHandler(svc *appsvcs.Services) *PutMenuItemHandler {
	return &PutMenuItemHandler{svc: svc}
}

// Execute replaces all fields of an existing menu item.
func (h *PutMenuItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, ok := idFromURL(w, r, "id")
	if !ok {
		return
	}

	req, ok := pkgvalidator.ValidateRequest[UpdateMenuItemRequest](w, r)
	if !ok {
		return
	}

	item, err := h.svc.Menu.Update(r.Context(), id, req.Name, req.Price, req.Description, req.Category)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, newMenuItemResponse(item))
}
