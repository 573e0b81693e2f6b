package services

import (
	"fmt"

	"go.opentelemetry.io/otel/metric"
)

const meterName = "github.com/ghuser/itemregistry/services/item"

// itemMetrics are the registry's OTel instruments, exported on /metrics by
// the Prometheus reader.
type itemMetrics struct {
	created metric.Int64Counter
	deleted metric.Int64Counter
	stored  metric.Int64UpDownCounter
}

func newItemMetrics(mp metric.MeterProvider) (*itemMetrics, error) {
	meter := mp.Meter(meterName)

	created, err := meter.Int64Counter("items.created",
		metric.WithDescription("Items created since process start"),
		metric.WithUnit("{item}"),
	)
	if err != nil {
		return nil, fmt.Errorf("items.created counter: %w", err)
	}
	deleted, err := meter.Int64Counter("items.deleted",
		metric.WithDescription("Items deleted since process start"),
		metric.WithUnit("{item}"),
	)
	if err != nil {
		return nil, fmt.Errorf("items.deleted counter: %w", err)
	}
	stored, err := meter.Int64UpDownCounter("items.stored",
		metric.WithDescription("Items currently held by the registry"),
		metric.WithUnit("{item}"),
	)
	if err != nil {
		return nil, fmt.Errorf("items.stored counter: %w", err)
	}

	return &itemMetrics{created: created, deleted: deleted, stored: stored}, nil
}
