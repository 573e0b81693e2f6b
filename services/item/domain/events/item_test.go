package events_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/itemregistry/services/item/domain/events"
	"github.com/ghuser/itemregistry/services/item/domain/models"
)

func TestNewItemCreatedEvent(t *testing.T) {
	createdAt := time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC)
	item := models.Item{ID: 4, Name: "Test Widget", CreatedAt: createdAt}

	evt := events.NewItemCreatedEvent(item)

	if evt.EventID == uuid.Nil {
		t.Error("expected non-nil EventID")
	}
	if evt.Version != events.SchemaVersion {
		t.Errorf("Version: got %d, want %d", evt.Version, events.SchemaVersion)
	}
	if evt.ItemID != 4 {
		t.Errorf("ItemID: got %d, want 4", evt.ItemID)
	}
	if evt.Name != "Test Widget" {
		t.Errorf("Name: got %q", evt.Name)
	}
	if !evt.OccurredAt.Equal(createdAt) {
		t.Errorf("OccurredAt: got %v, want %v", evt.OccurredAt, createdAt)
	}
}

func TestNewItemDeletedEvent_UniqueEventIDs(t *testing.T) {
	at := time.Now()
	first := events.NewItemDeletedEvent(9, at)
	second := events.NewItemDeletedEvent(9, at)

	if first.EventID == second.EventID {
		t.Fatal("expected unique event ids")
	}
	if first.ItemID != 9 {
		t.Errorf("ItemID: got %d, want 9", first.ItemID)
	}
}

func TestItemCreatedEvent_JSONFieldNames(t *testing.T) {
	evt := events.NewItemCreatedEvent(models.Item{ID: 1, Name: "Widget", CreatedAt: time.Now().UTC()})

	data, err := json.Marshal(evt)
	if err != nil {
		t.Fatalf("json.Marshal failed: %v", err)
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("unmarshal to map failed: %v", err)
	}

	for _, field := range []string{"event_id", "version", "item_id", "name", "occurred_at"} {
		if _, ok := raw[field]; !ok {
			t.Errorf("expected JSON field %q not found in: %s", field, data)
		}
	}
}

func TestTopics(t *testing.T) {
	if events.TopicItemCreated != "item.created" {
		t.Errorf("expected %q, got %q", "item.created", events.TopicItemCreated)
	}
	if events.TopicItemDeleted != "item.deleted" {
		t.Errorf("expected %q, got %q", "item.deleted", events.TopicItemDeleted)
	}
}
