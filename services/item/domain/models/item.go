package models

import (
	"fmt"
	"time"
)

// Item is the core aggregate for this bounded context. It is immutable once
// created and always handled by value.
type Item struct {
	ID        ItemID
	Name      ItemName
	CreatedAt time.Time
}

// NewItem constructs an Item with the registry-assigned id and creation time.
func NewItem(id ItemID, name ItemName, createdAt time.Time) (Item, error) {
	if !id.Valid() {
		return Item{}, fmt.Errorf("item id must be positive, got %d", id)
	}
	return Item{
		ID:        id,
		Name:      name,
		CreatedAt: createdAt.UTC(),
	}, nil
}
