package ports

import (
	"context"

	"citrustrack/internal/core/domain/model/document"
	"citrustrack/internal/core/domain/model/kernel"
)

// DocumentRepository defines the persistence contract for generated trade
// documents. Documents are immutable once stored.
type DocumentRepository interface {
	// Add persists a newly generated document.
	// Returns errs.ErrCodeCollision when the document number is already taken.
	Add(ctx context.Context, aggregate *document.Document) error

	// GetAllByShipmentID retrieves all documents generated for a shipment,
	// newest first.
	GetAllByShipmentID(ctx context.Context, shipmentID kernel.UUID) ([]*document.Document, error)
}
