package repositories

import (
	"context"
	"time"

	"github.com/ghuser/itemregistry/services/item/domain/models"
)

// ItemRepository is the storage interface for the Item aggregate.
// The domain layer owns this interface; infrastructure implements it.
// Items cross this boundary by value; callers never hold references into
// the store.
type ItemRepository interface {
	// Add assigns the next id, stores the item and returns it. The id
	// counter only advances when the item is stored.
	Add(ctx context.Context, name models.ItemName, createdAt time.Time) (models.Item, error)

	// GetByID returns ErrItemNotFound if no item has the id.
	GetByID(ctx context.Context, id models.ItemID) (models.Item, error)

	// List returns every stored item in ascending id (insertion) order.
	List(ctx context.Context) ([]models.Item, error)

	// Delete returns ErrItemNotFound if no item has the id.
	Delete(ctx context.Context, id models.ItemID) error
}
