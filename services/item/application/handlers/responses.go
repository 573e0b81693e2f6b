package handlers

import (
	"github.com/ghuser/itemregistry/pkg/httpx"
	"github.com/ghuser/itemregistry/services/item/domain/models"
)

// ItemResponse is the wire form of an item.
type ItemResponse struct {
	ID        int64  `json:"id"        example:"1"`
	Name      string `json:"name"      example:"pen"`
	CreatedAt string `json:"createdAt" example:"2024-01-15T10:30:00.000Z"`
} // @name ItemResponse

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"Item not found"`
} // @name ErrorResponse

// MessageResponse acknowledges an operation that has no resource to return.
type MessageResponse struct {
	Message string `json:"message" example:"Deleted"`
} // @name MessageResponse

func toItemResponse(item models.Item) ItemResponse {
	return ItemResponse{
		ID:        item.ID.Int64(),
		Name:      item.Name.String(),
		CreatedAt: httpx.FormatTime(item.CreatedAt),
	}
}
