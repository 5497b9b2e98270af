// Package trackingrepo provides data transfer objects and mapping functions
// for the append-only tracking ledger. Rows are inserted and read, never
// updated or deleted.
package trackingrepo

import (
	"time"

	"citrustrack/internal/core/domain/model/kernel"
	"citrustrack/internal/core/domain/model/shipment"
	"citrustrack/internal/core/domain/model/tracking"

	"github.com/google/uuid"
)

// TrackingEventDTO represents the database structure for persisting tracking
// events. Seq is a database-assigned insertion counter; the history reads
// order by occurred_at with seq as the tie-breaker, so events recorded in
// the same instant keep a stable order.
type TrackingEventDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Seq         int64     `gorm:"autoIncrement;uniqueIndex"`
	ShipmentID  uuid.UUID `gorm:"type:uuid;index"`
	EventType   int
	Location    string
	Latitude    *float64
	Longitude   *float64
	Temperature *float64
	Description string
	NewStatus   *int
	OccurredAt  time.Time `gorm:"index"`
}

// TableName specifies the database table name for tracking events.
// Overrides GORM's default naming convention to use "tracking_events".
func (TrackingEventDTO) TableName() string {
	return "tracking_events"
}

// fromDomain converts a tracking event to its database representation.
// Seq is left zero so the database assigns it on insert.
func fromDomain(event *tracking.Event) TrackingEventDTO {
	attributes := event.Attributes()

	dto := TrackingEventDTO{
		ID:          event.ID().Bytes(),
		ShipmentID:  event.ShipmentID().Bytes(),
		EventType:   int(event.Type()),
		Location:    attributes.Location,
		Temperature: attributes.Temperature,
		Description: attributes.Description,
		OccurredAt:  event.OccurredAt(),
	}

	if attributes.Geo != nil {
		lat := attributes.Geo.Latitude()
		lng := attributes.Geo.Longitude()
		dto.Latitude = &lat
		dto.Longitude = &lng
	}

	if newStatus, ok := event.ImpliesStatusChange(); ok {
		status := int(newStatus)
		dto.NewStatus = &status
	}

	return dto
}

// toDomain converts a database DTO to a tracking event using RestoreEvent,
// which re-applies the per-type attribute validation.
func toDomain(dto TrackingEventDTO) (*tracking.Event, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	shipmentID, err := kernel.UUIDFromBytes(dto.ShipmentID[:])
	if err != nil {
		return nil, err
	}

	attributes := tracking.Attributes{
		Location:    dto.Location,
		Temperature: dto.Temperature,
		Description: dto.Description,
	}

	if dto.Latitude != nil && dto.Longitude != nil {
		geo, geoErr := kernel.NewGeoPoint(*dto.Latitude, *dto.Longitude)
		if geoErr != nil {
			return nil, geoErr
		}
		attributes.Geo = &geo
	}

	if dto.NewStatus != nil {
		attributes.NewStatus = shipment.Status(*dto.NewStatus)
	}

	return tracking.RestoreEvent(
		id,
		shipmentID,
		tracking.EventType(dto.EventType),
		attributes,
		dto.OccurredAt,
	)
}
