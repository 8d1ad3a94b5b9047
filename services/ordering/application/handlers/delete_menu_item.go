package handlers

import (
	"net/http"

	"github.com/ghuser/dosadiner/pkg/errhttp"
	appsvcs "github.com/ghuser/dosadiner/services/ordering/application/services"
)

// DeleteMenuItemHandler handles DELETE /items/{id} requests.
type DeleteMenuItemHandler struct {
	svc *appsvcs.Services
}

// NewDeleteMenuItemHandler returns a DeleteMenuItemHandler backed by the given services.
func NewDeleteMenuItemHandler(svc *appsvcs.Services) *DeleteMenuItemHandler {
	return &DeleteMenuItemHandler{svc: svc}
}

// Execute removes a menu item. Items referenced by any order line are
// rejected with 409 so historical orders keep resolving.
func (h *DeleteMenuItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, ok := idFromURL(w, r, "id")
	if !ok {
		return
	}

	if err := h.svc.Menu.Delete(r.Context(), id); err != nil {
		errhttp.WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
