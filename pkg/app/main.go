package app

import (
	"time"

	"github.com/ghuser/itemregistry/pkg/events"
	"github.com/ghuser/itemregistry/pkg/logger"
)

// Application holds shared infrastructure dependencies for all services.
// Build it once in main and pass it to every service's Routes call.
//
// Logging: app.Logger is backed by a trace-aware handler; use slog's context methods
// and trace_id, span_id, and request_id are injected automatically:
//
//	app.Logger.InfoContext(ctx, "item created", "item_id", id)
//	app.Logger.ErrorContext(ctx, "failed to publish", "error", err)
//
// Use app.Logger.Info/Error (no context) only for startup and shutdown messages.
type Application struct {
	Logger   logger.Logger
	EventBus *events.EventBus // nil disables domain event publishing
	// StartedAt is the process start instant; health uptime is measured from it.
	StartedAt time.Time
	// IsProduction hides internal error details from API responses.
	IsProduction bool
}
