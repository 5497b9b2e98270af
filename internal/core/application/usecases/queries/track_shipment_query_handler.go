package queries

import (
	"context"
	"database/sql"
	"errors"

	"citrustrack/internal/core/domain/model/kernel"
	"citrustrack/internal/core/domain/model/shipment"
	"citrustrack/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TrackShipmentQueryHandler serves the public tracking endpoint. No access
// policy applies; the response deliberately omits the owner and the
// commercial details of the shipment.
type TrackShipmentQueryHandler struct {
	db *gorm.DB
}

// NewTrackShipmentQueryHandler creates a handler for public tracking reads.
// Requires a GORM database connection for query execution.
func NewTrackShipmentQueryHandler(db *gorm.DB) TrackShipmentQueryHandler {
	return TrackShipmentQueryHandler{db: db}
}

// Handle executes the query. Returns errs.ErrObjectNotFound when no shipment
// carries the tracking number.
func (h TrackShipmentQueryHandler) Handle(
	ctx context.Context,
	query TrackShipmentQuery,
) (TrackShipmentResponse, error) {
	if err := query.Validate(); err != nil {
		return TrackShipmentResponse{}, err
	}

	var (
		rawShipmentID uuid.UUID
		status        int
	)

	row := h.db.WithContext(ctx).Raw(`
		SELECT id, status
		FROM shipments
		WHERE tracking_number = ?
	`, query.TrackingNumber().String()).Row()

	if err := row.Scan(&rawShipmentID, &status); err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, gorm.ErrRecordNotFound) {
			return TrackShipmentResponse{}, errs.NewObjectNotFoundError(
				"trackingNumber", query.TrackingNumber().String())
		}
		return TrackShipmentResponse{}, err
	}

	shipmentID, err := kernel.UUIDFromBytes(rawShipmentID[:])
	if err != nil {
		return TrackShipmentResponse{}, err
	}

	events, err := listTrackingEvents(ctx, h.db, shipmentID)
	if err != nil {
		return TrackShipmentResponse{}, err
	}

	statusString := shipment.Status(status).String()

	return TrackShipmentResponse{
		TrackingNumber: query.TrackingNumber().String(),
		Status:         statusString,
		CurrentState:   deriveCurrentState(statusString, events),
		History:        events,
	}, nil
}
