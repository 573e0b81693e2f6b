package events

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/itemregistry/services/item/domain/models"
)

const (
	// TopicItemCreated is the Watermill topic published when an Item is created.
	TopicItemCreated = "item.created"
	// TopicItemDeleted is the Watermill topic published when an Item is deleted.
	TopicItemDeleted = "item.deleted"

	// SchemaVersion is the current payload version of both events.
	SchemaVersion = 1
)

// ItemCreatedEvent is published after a new Item is stored.
// Consumers subscribe via EventBus.Subscribe(ctx, events.TopicItemCreated).
type ItemCreatedEvent struct {
	EventID    uuid.UUID `json:"event_id"` // Unique publish-time identifier for deduplication
	Version    int       `json:"version"`  // Schema version; increment on breaking changes
	ItemID     int64     `json:"item_id"`
	Name       string    `json:"name"`
	OccurredAt time.Time `json:"occurred_at"`
}

// ItemDeletedEvent is published after an Item is removed.
type ItemDeletedEvent struct {
	EventID    uuid.UUID `json:"event_id"`
	Version    int       `json:"version"`
	ItemID     int64     `json:"item_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

// NewItemCreatedEvent builds the created event for item.
func NewItemCreatedEvent(item models.Item) ItemCreatedEvent {
	return ItemCreatedEvent{
		EventID:    uuid.New(),
		Version:    SchemaVersion,
		ItemID:     item.ID.Int64(),
		Name:       item.Name.String(),
		OccurredAt: item.CreatedAt,
	}
}

// NewItemDeletedEvent builds the deleted event for id, removed at at.
func NewItemDeletedEvent(id models.ItemID, at time.Time) ItemDeletedEvent {
	return ItemDeletedEvent{
		EventID:    uuid.New(),
		Version:    SchemaVersion,
		ItemID:     id.Int64(),
		OccurredAt: at.UTC(),
	}
}

// Publisher announces item lifecycle changes. The domain owns this
// interface; infrastructure implements it.
type Publisher interface {
	ItemCreated(ctx context.Context, item models.Item) error
	ItemDeleted(ctx context.Context, id models.ItemID, at time.Time) error
}
