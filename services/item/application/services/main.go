package services

import (
	"github.com/ghuser/itemregistry/pkg/app"
	"github.com/ghuser/itemregistry/services/item/infrastructure/messaging"
	"github.com/ghuser/itemregistry/services/item/infrastructure/persistence/memory"
)

// Services is the application-layer service container for this bounded context.
// It wires domain services with their infrastructure implementations.
type Services struct {
	Item         *ItemService
	IsProduction bool
}

// New wires all item application services with infrastructure from the
// Application container. Call it once per process: the registry it creates
// is the only copy of the item state.
func New(a *app.Application) *Services {
	repo := memory.NewItemRepository()

	var opts []Option
	if a.EventBus != nil {
		opts = append(opts, WithPublisher(messaging.NewItemPublisher(a.EventBus)))
	}

	return &Services{
		Item:         NewItemService(repo, a.Logger.With("service", "item"), opts...),
		IsProduction: a.IsProduction,
	}
}
