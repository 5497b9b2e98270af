package queries

import (
	"context"
	"database/sql"

	"citrustrack/internal/core/domain/model/kernel"
	"citrustrack/internal/core/domain/model/shipment"
	"citrustrack/internal/core/domain/model/tracking"
	"citrustrack/internal/core/domain/services"
	"citrustrack/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// scanTrackingEventRow maps one tracking_events row into the event read
// model. Expects the column order used by listTrackingEvents.
func scanTrackingEventRow(rows *sql.Rows) (TrackingEventResponse, error) {
	var (
		resp       TrackingEventResponse
		id         uuid.UUID
		shipmentID uuid.UUID
		eventType  int
		newStatus  sql.NullInt64
	)

	if err := rows.Scan(
		&id,
		&shipmentID,
		&eventType,
		&resp.Location,
		&resp.Latitude,
		&resp.Longitude,
		&resp.Temperature,
		&resp.Description,
		&newStatus,
		&resp.OccurredAt,
	); err != nil {
		return TrackingEventResponse{}, err
	}

	eventID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return TrackingEventResponse{}, err
	}
	resp.ID = eventID

	shID, err := kernel.UUIDFromBytes(shipmentID[:])
	if err != nil {
		return TrackingEventResponse{}, err
	}
	resp.ShipmentID = shID

	resp.EventType = tracking.EventType(eventType).String()

	if newStatus.Valid {
		resp.NewStatus = shipment.Status(newStatus.Int64).String()
	}

	return resp, nil
}

// listTrackingEvents reads a shipment's ledger newest first. The seq column
// is assigned on insert and breaks occurred_at ties, so the order is stable
// across reads.
func listTrackingEvents(
	ctx context.Context,
	db *gorm.DB,
	shipmentID kernel.UUID,
) ([]TrackingEventResponse, error) {
	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			id,
			shipment_id,
			event_type,
			location,
			latitude,
			longitude,
			temperature,
			description,
			new_status,
			occurred_at
		FROM tracking_events
		WHERE shipment_id = ?
		ORDER BY occurred_at DESC, seq DESC
	`, shipmentID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := make([]TrackingEventResponse, 0)
	for rows.Next() {
		event, scanErr := scanTrackingEventRow(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		events = append(events, event)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}

// ListTrackingEventsQueryHandler retrieves a shipment's tracking history,
// enforcing the shipment access policy.
type ListTrackingEventsQueryHandler struct {
	db     *gorm.DB
	policy services.AccessPolicy
}

// NewListTrackingEventsQueryHandler creates a handler for history reads.
// Requires a GORM database connection for query execution.
func NewListTrackingEventsQueryHandler(
	db *gorm.DB,
	policy services.AccessPolicy,
) ListTrackingEventsQueryHandler {
	return ListTrackingEventsQueryHandler{db: db, policy: policy}
}

// Handle executes the query. Events come back newest first; a shipment with
// no events yields an empty slice, not an error.
func (h ListTrackingEventsQueryHandler) Handle(
	ctx context.Context,
	query ListTrackingEventsQuery,
) ([]TrackingEventResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	ownerID, err := getShipmentOwner(ctx, h.db, query.ShipmentID())
	if err != nil {
		return nil, err
	}

	if !h.policy.CanRead(query.Caller(), ownerID) {
		return nil, errs.NewAccessForbiddenError("shipmentId", query.ShipmentID().String())
	}

	return listTrackingEvents(ctx, h.db, query.ShipmentID())
}
