package handlers

import (
	"net/http"

	"github.com/ghuser/dosadiner/pkg/errhttp"
	"github.com/ghuser/dosadiner/pkg/httpx"
	appsvcs "github.com/ghuser/dosadiner/services/ordering/application/services"
)

// GetMenuItemHandler handles GET /items/{id} requests.
type GetMenuItemHandler struct {
	svc *appsvcs.Services
}

// NewGetMenuItemHandler returns a GetMenuItemHandler backed by the given services.
func NewGetMenuItemHandler(svc *appsvcs.Services) *GetMenuItemHandler {
	return &GetMenuItemHandler{svc: svc}
}

// Execute fetches one menu item by ID, served from cache when warm.
func (h *GetMenuItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, ok := idFromURL(w, r, "id")
	if !ok {
		return
	}

	item, err := h.svc.Menu.Get(r.Context(), id)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, newMenuItemResponse(item))
}
