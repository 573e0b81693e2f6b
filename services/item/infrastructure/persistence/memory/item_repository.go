// Package memory implements the item repository on process memory. State is
// created empty at startup and discarded at shutdown.
package memory

import (
	"cmp"
	"context"
	"fmt"
	"maps"
	"slices"
	"sync"
	"time"

	itemdomain "github.com/ghuser/itemregistry/services/item/domain"
	"github.com/ghuser/itemregistry/services/item/domain/models"
	domainsvcs "github.com/ghuser/itemregistry/services/item/domain/services"
)

// ItemRepository implements repositories.ItemRepository with a map keyed by id
// and a monotonic id counter, both guarded by one mutex.
type ItemRepository struct {
	mu     sync.RWMutex
	items  map[models.ItemID]models.Item
	nextID models.ItemID
}

// NewItemRepository returns an empty repository whose first id is 1.
func NewItemRepository() *ItemRepository {
	return &ItemRepository{
		items:  make(map[models.ItemID]models.Item),
		nextID: 1,
	}
}

// Add assigns the next id and stores the item. Allocation and insert happen
// under one write lock so ids stay unique and strictly increasing; ids freed
// by Delete are never handed out again.
func (r *ItemRepository) Add(_ context.Context, name models.ItemName, createdAt time.Time) (models.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, err := models.NewItem(r.nextID, name, createdAt)
	if err != nil {
		return models.Item{}, fmt.Errorf("build item: %w", err)
	}
	if err := domainsvcs.ValidateItemForCreation(item); err != nil {
		return models.Item{}, fmt.Errorf("validate item: %w", err)
	}

	r.items[item.ID] = item
	r.nextID++
	return item, nil
}

// GetByID returns a copy of the item. Returns ErrItemNotFound if absent.
func (r *ItemRepository) GetByID(_ context.Context, id models.ItemID) (models.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[id]
	if !ok {
		return models.Item{}, itemdomain.ErrItemNotFound
	}
	return item, nil
}

// List returns copies of all items. Ids are assigned in increasing order, so
// sorting by id yields insertion order.
func (r *ItemRepository) List(_ context.Context) ([]models.Item, error) {
	r.mu.RLock()
	items := slices.Collect(maps.Values(r.items))
	r.mu.RUnlock()

	slices.SortFunc(items, func(a, b models.Item) int {
		return cmp.Compare(a.ID, b.ID)
	})
	if items == nil {
		items = []models.Item{}
	}
	return items, nil
}

// Delete removes the item permanently. Returns ErrItemNotFound if absent.
func (r *ItemRepository) Delete(_ context.Context, id models.ItemID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return itemdomain.ErrItemNotFound
	}
	delete(r.items, id)
	return nil
}
