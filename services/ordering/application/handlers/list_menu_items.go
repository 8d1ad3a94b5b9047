package handlers

import (
	"net/http"

	"github.com/ghuser/dosadiner/pkg/errhttp"
	"github.com/ghuser/dosadiner/pkg/httpx"
	appsvcs "github.com/ghuser/dosadiner/services/ordering/application/services"
)

// ListMenuItemsHandler handles GET /items requests.
type ListMenuItemsHandler struct {
	svc *appsvcs.Services
}

// NewListMenuItemsHandler returns a ListMenuItemsHandler backed by the given services.
func NewListMenuItemsHandler(svc *appsvcs.Services) *ListMenuItemsHandler {
	return &ListMenuItemsHandler{svc: svc}
}

// Execute lists the full menu in insertion order.
func (h *ListMenuItemsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.Menu.List(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	out := make([]MenuItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, newMenuItemResponse(item))
	}
	httpx.JSON(w, http.StatusOK, out)
}
