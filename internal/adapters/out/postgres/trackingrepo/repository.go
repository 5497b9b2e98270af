package trackingrepo

import (
	"context"

	"citrustrack/internal/core/domain/model/kernel"
	"citrustrack/internal/core/domain/model/tracking"

	"gorm.io/gorm"
)

// GormTrackingEventRepository implements TrackingEventRepository using GORM.
type GormTrackingEventRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormTrackingEventRepository creates a new GORM tracking event repository.
func NewGormTrackingEventRepository(db *gorm.DB, tracker aggregateTracker) *GormTrackingEventRepository {
	return &GormTrackingEventRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add appends a tracking event to the ledger.
func (r *GormTrackingEventRepository) Add(ctx context.Context, event *tracking.Event) error {
	if err := event.Validate(); err != nil {
		return err
	}

	dto := fromDomain(event)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(event.ID(), event)
	return nil
}

// GetAllByShipmentID retrieves a shipment's full history, newest first.
// Insertion order breaks occurred_at ties. An unknown shipment id yields an
// empty slice; existence checks belong to the shipment repository.
func (r *GormTrackingEventRepository) GetAllByShipmentID(
	ctx context.Context,
	shipmentID kernel.UUID,
) ([]*tracking.Event, error) {
	if err := shipmentID.Validate(); err != nil {
		return nil, err
	}

	var dtos []TrackingEventDTO
	err := r.db.WithContext(ctx).
		Where("shipment_id = ?", shipmentID.Bytes()).
		Order("occurred_at DESC, seq DESC").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	events := make([]*tracking.Event, 0, len(dtos))
	for _, dto := range dtos {
		event, convErr := toDomain(dto)
		if convErr != nil {
			return nil, convErr
		}
		events = append(events, event)
	}

	return events, nil
}
