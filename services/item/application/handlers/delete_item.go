package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/itemregistry/pkg/errhttp"
	"github.com/ghuser/itemregistry/pkg/httpx"
	appsvcs "github.com/ghuser/itemregistry/services/item/application/services"
	"github.com/ghuser/itemregistry/services/item/domain/models"
)

// DeleteItemHandler handles DELETE /items/{id} requests.
type DeleteItemHandler struct {
	svc *appsvcs.Services
}

// NewDeleteItemHandler returns a DeleteItemHandler backed by the given services.
func NewDeleteItemHandler(svc *appsvcs.Services) *DeleteItemHandler {
	return &DeleteItemHandler{svc: svc}
}

// Execute removes an item. Deleted ids are never reassigned.
//
//	@Summary	Delete item
//	@Tags		items
//	@Produce	json
//	@Param		id	path		string	true	"Item id"
//	@Success	200	{object}	MessageResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/items/{id} [delete]
func (h *DeleteItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, err := models.ParseItemID(chi.URLParam(r, "id"))
	if err != nil {
		errhttp.WriteError(w, err, h.svc.IsProduction)
		return
	}

	if err := h.svc.Item.Delete(r.Context(), id); err != nil {
		errhttp.WriteError(w, err, h.svc.IsProduction)
		return
	}

	httpx.JSON(w, http.StatusOK, MessageResponse{Message: "Deleted"})
}
