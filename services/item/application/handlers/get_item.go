package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/itemregistry/pkg/errhttp"
	"github.com/ghuser/itemregistry/pkg/httpx"
	appsvcs "github.com/ghuser/itemregistry/services/item/application/services"
	"github.com/ghuser/itemregistry/services/item/domain/models"
)

// GetItemHandler handles GET /items/{id} requests.
type GetItemHandler struct {
	svc *appsvcs.Services
}

// NewGetItemHandler returns a GetItemHandler backed by the given services.
func NewGetItemHandler(svc *appsvcs.Services) *GetItemHandler {
	return &GetItemHandler{svc: svc}
}

// Execute returns a single item.
//
//	@Summary		Get item
//	@Description	Ids that are not positive integers are reported as not found
//	@Tags			items
//	@Produce		json
//	@Param			id	path		string	true	"Item id"
//	@Success		200	{object}	ItemResponse
//	@Failure		404	{object}	ErrorResponse
//	@Router			/items/{id} [get]
func (h *GetItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, err := models.ParseItemID(chi.URLParam(r, "id"))
	if err != nil {
		errhttp.WriteError(w, err, h.svc.IsProduction)
		return
	}

	item, err := h.svc.Item.GetByID(r.Context(), id)
	if err != nil {
		errhttp.WriteError(w, err, h.svc.IsProduction)
		return
	}

	httpx.JSON(w, http.StatusOK, toItemResponse(item))
}
