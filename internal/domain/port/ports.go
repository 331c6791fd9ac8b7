package port

import (
	"context"

	"github.com/Kishanjee7/finhealth/internal/domain/event"
	"github.com/Kishanjee7/finhealth/internal/domain/model"
	"github.com/Kishanjee7/finhealth/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// Benchmark source port
// ---------------------------------------------------------------------------

// BenchmarkSource loads the industry reference table once at startup.
type BenchmarkSource interface {
	Load(ctx context.Context) (model.BenchmarkTable, error)
}

// ---------------------------------------------------------------------------
// Event publisher port
// ---------------------------------------------------------------------------

// EventPublisher publishes domain events to external consumers.
type EventPublisher interface {
	Publish(ctx context.Context, events ...event.DomainEvent) error
}

// ---------------------------------------------------------------------------
// Presentation ports
// ---------------------------------------------------------------------------

// LabelCatalog translates stable keys (ratings, bands, categories, metric
// names) into display labels. Unknown keys are returned unchanged.
type LabelCatalog interface {
	Label(lang valueobject.Language, key string) string
}

// Recorder captures per-operation outcome and latency.
type Recorder interface {
	Record(ctx context.Context, operation, outcome string, seconds float64)
}
