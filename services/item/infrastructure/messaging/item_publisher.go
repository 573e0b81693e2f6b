// Package messaging publishes item domain events on the in-process EventBus.
package messaging

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/ghuser/itemregistry/pkg/events"
	domainevents "github.com/ghuser/itemregistry/services/item/domain/events"
	"github.com/ghuser/itemregistry/services/item/domain/models"
)

// Bus is the subset of *events.EventBus the publisher needs.
type Bus interface {
	Publish(ctx context.Context, topic string, msgs ...*message.Message) error
}

// ItemPublisher implements events.Publisher on a Bus.
type ItemPublisher struct {
	bus Bus
}

// NewItemPublisher returns an ItemPublisher writing to bus.
func NewItemPublisher(bus Bus) *ItemPublisher {
	return &ItemPublisher{bus: bus}
}

// ItemCreated publishes an ItemCreatedEvent for item.
func (p *ItemPublisher) ItemCreated(ctx context.Context, item models.Item) error {
	evt := domainevents.NewItemCreatedEvent(item)
	return p.publish(ctx, domainevents.TopicItemCreated, evt.EventID.String(), evt)
}

// ItemDeleted publishes an ItemDeletedEvent for id.
func (p *ItemPublisher) ItemDeleted(ctx context.Context, id models.ItemID, at time.Time) error {
	evt := domainevents.NewItemDeletedEvent(id, at)
	return p.publish(ctx, domainevents.TopicItemDeleted, evt.EventID.String(), evt)
}

func (p *ItemPublisher) publish(ctx context.Context, topic, eventID string, evt any) error {
	msg, err := events.NewJSONMessage(evt)
	if err != nil {
		return err
	}
	msg.Metadata.Set("event_id", eventID)
	msg.Metadata.Set("event_version", strconv.Itoa(domainevents.SchemaVersion))
	if err := p.bus.Publish(ctx, topic, msg); err != nil {
		return fmt.Errorf("publish %s: %w", topic, err)
	}
	return nil
}
