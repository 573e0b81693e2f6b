// Package subscribers holds in-process consumers of item domain events.
package subscribers

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/ghuser/itemregistry/pkg/logger"
	domainevents "github.com/ghuser/itemregistry/services/item/domain/events"
)

// Subscriber is the part of events.EventBus the audit log consumes.
type Subscriber interface {
	Subscribe(ctx context.Context, topic string, handler func(context.Context, *message.Message) error) (<-chan error, error)
}

// Audit writes one structured log line per item lifecycle event.
type Audit struct {
	log logger.Logger
}

// Register subscribes the audit log to every item topic. Subscriptions end
// when ctx is cancelled or the bus is closed.
func Register(ctx context.Context, bus Subscriber, log logger.Logger) error {
	a := &Audit{log: log.With("component", "audit")}

	topics := []struct {
		name    string
		handler func(context.Context, *message.Message) error
	}{
		{domainevents.TopicItemCreated, a.itemCreated},
		{domainevents.TopicItemDeleted, a.itemDeleted},
	}
	for _, t := range topics {
		errCh, err := bus.Subscribe(ctx, t.name, t.handler)
		if err != nil {
			return fmt.Errorf("audit: %w", err)
		}
		go a.drain(ctx, errCh)
	}
	return nil
}

func (a *Audit) drain(ctx context.Context, errCh <-chan error) {
	for err := range errCh {
		a.log.ErrorContext(ctx, "audit handler failed", "error", err)
	}
}

func (a *Audit) itemCreated(ctx context.Context, msg *message.Message) error {
	var evt domainevents.ItemCreatedEvent
	if err := json.Unmarshal(msg.Payload, &evt); err != nil {
		// Retrying cannot fix a bad payload.
		a.log.ErrorContext(ctx, "audit: undecodable item.created", "message_id", msg.UUID, "error", err)
		return nil
	}
	a.log.InfoContext(ctx, "item created",
		"item_id", evt.ItemID,
		"name", evt.Name,
		"event_id", evt.EventID.String(),
		"occurred_at", evt.OccurredAt,
	)
	return nil
}

func (a *Audit) itemDeleted(ctx context.Context, msg *message.Message) error {
	var evt domainevents.ItemDeletedEvent
	if err := json.Unmarshal(msg.Payload, &evt); err != nil {
		a.log.ErrorContext(ctx, "audit: undecodable item.deleted", "message_id", msg.UUID, "error", err)
		return nil
	}
	a.log.InfoContext(ctx, "item deleted",
		"item_id", evt.ItemID,
		"event_id", evt.EventID.String(),
		"occurred_at", evt.OccurredAt,
	)
	return nil
}
