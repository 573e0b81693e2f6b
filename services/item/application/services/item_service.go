package services

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"

	"github.com/ghuser/itemregistry/pkg/logger"
	domainevents "github.com/ghuser/itemregistry/services/item/domain/events"
	"github.com/ghuser/itemregistry/services/item/domain/models"
	"github.com/ghuser/itemregistry/services/item/domain/repositories"
)

// ItemService orchestrates the item lifecycle: name validation, storage,
// metrics and event publication. Events are published after the repository
// accepted the change; a failed publish is logged and never undoes it.
type ItemService struct {
	repo      repositories.ItemRepository
	publisher domainevents.Publisher
	log       logger.Logger
	metrics   *itemMetrics
	now       func() time.Time
}

// Option configures an ItemService.
type Option func(*ItemService)

// WithClock replaces time.Now as the source of creation and deletion times.
func WithClock(now func() time.Time) Option {
	return func(s *ItemService) {
		s.now = now
	}
}

// WithPublisher enables domain event publication.
func WithPublisher(p domainevents.Publisher) Option {
	return func(s *ItemService) {
		s.publisher = p
	}
}

// WithMeterProvider records metrics on mp instead of the global provider.
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(s *ItemService) {
		s.metrics = mustMetrics(mp, s.log)
	}
}

// NewItemService returns an ItemService wired with the given repository.
func NewItemService(repo repositories.ItemRepository, log logger.Logger, opts ...Option) *ItemService {
	s := &ItemService{repo: repo, log: log, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	if s.metrics == nil {
		s.metrics = mustMetrics(otel.GetMeterProvider(), log)
	}
	return s
}

// mustMetrics falls back to no-op instruments when registration fails so a
// metrics problem never takes the API down.
func mustMetrics(mp metric.MeterProvider, log logger.Logger) *itemMetrics {
	m, err := newItemMetrics(mp)
	if err != nil {
		log.Warn("item metrics disabled", "error", err)
		m, _ = newItemMetrics(noop.NewMeterProvider())
	}
	return m
}

// Create validates name and stores a new Item with the next id.
// Returns an error wrapping ErrInvalidItemName for missing or blank names;
// in that case nothing is stored and no id is consumed.
func (s *ItemService) Create(ctx context.Context, name string) (models.Item, error) {
	itemName, err := models.NewItemName(name)
	if err != nil {
		return models.Item{}, err
	}

	item, err := s.repo.Add(ctx, itemName, s.now())
	if err != nil {
		return models.Item{}, fmt.Errorf("add item: %w", err)
	}

	s.metrics.created.Add(ctx, 1)
	s.metrics.stored.Add(ctx, 1)

	if s.publisher != nil {
		if err := s.publisher.ItemCreated(ctx, item); err != nil {
			s.log.WarnContext(ctx, "publish item.created failed", "item_id", item.ID.Int64(), "error", err)
		}
	}
	return item, nil
}

// GetByID returns the item with id or an error wrapping ErrItemNotFound.
func (s *ItemService) GetByID(ctx context.Context, id models.ItemID) (models.Item, error) {
	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return models.Item{}, fmt.Errorf("get item %d: %w", id, err)
	}
	return item, nil
}

// List returns all items in insertion order; never nil.
func (s *ItemService) List(ctx context.Context) ([]models.Item, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	return items, nil
}

// Delete removes the item with id permanently.
// Returns an error wrapping ErrItemNotFound if no matching item exists.
func (s *ItemService) Delete(ctx context.Context, id models.ItemID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete item %d: %w", id, err)
	}

	s.metrics.deleted.Add(ctx, 1)
	s.metrics.stored.Add(ctx, -1)

	if s.publisher != nil {
		if err := s.publisher.ItemDeleted(ctx, id, s.now()); err != nil {
			s.log.WarnContext(ctx, "publish item.deleted failed", "item_id", id.Int64(), "error", err)
		}
	}
	return nil
}
