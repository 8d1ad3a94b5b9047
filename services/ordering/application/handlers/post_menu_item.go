package handlers

import (
	"net/http"

	"github.com/ghuser/dosadiner/pkg/errhttp"
	"github.com/ghuser/dosadiner/pkg/httpx"
	pkgvalidator "github.com/ghuser/dosadiner/pkg/validator"
	appsvcs "github.com/ghuser/dosadiner/services/ordering/application/services"
)

// CreateMenuItemRequest is the request body for POST /items. Price must be
// zero or positive; category defaults to "General" when omitted.
type CreateMenuItemRequest struct {
	Name        string  `json:"name"        validate:"required,min=1,max=255" example:"Masala Dosa"`
	Price       float64 `json:"price"       validate:"gte=0"                  example:"8.50"`
	Description *string `json:"description" validate:"omitempty,max=1024"     example:"Crispy crepe with spiced potato"`
	Category    string  `json:"category"    validate:"omitempty,max=64"       example:"Dosas"`
}

// PostMenuItemHandler handles POST /items requests.
type PostMenuItemHandler struct {
	svc *appsvcs.Services
}

// NewPostMenuItemHandler returns a PostMenuItemHandler backed by the given services.
func NewPostMenuItemHandler(svc *appsvcs.Services) *PostMenuItemHandler {
	return &PostMenuItemHandler{svc: svc}
}

// Execute adds a new menu item.
func (h *PostMenuItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[CreateMenuItemRequest](w, r)
	if !ok {
		return
	}

	item, err := h.svc.Menu.Create(r.Context(), req.Name, req.Price, req.Description, req.Category)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, newMenuItemResponse(item))
}
