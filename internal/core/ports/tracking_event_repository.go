package ports

import (
	"context"

	"citrustrack/internal/core/domain/model/kernel"
	"citrustrack/internal/core/domain/model/tracking"
)

// TrackingEventRepository defines the persistence contract for the
// append-only tracking ledger. Events are never updated or deleted.
type TrackingEventRepository interface {
	// Add appends a tracking event to the shipment's ledger.
	Add(ctx context.Context, event *tracking.Event) error

	// GetAllByShipmentID retrieves a shipment's full event history ordered
	// newest first, with insertion order breaking occurred_at ties.
	GetAllByShipmentID(ctx context.Context, shipmentID kernel.UUID) ([]*tracking.Event, error)
}
