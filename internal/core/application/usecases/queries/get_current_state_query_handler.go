package queries

import (
	"context"
	"database/sql"
	"errors"

	"citrustrack/internal/core/domain/model/kernel"
	"citrustrack/internal/core/domain/model/shipment"
	"citrustrack/internal/core/domain/services"
	"citrustrack/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// deriveCurrentState folds a ledger (ordered newest first) into the current
// state read model. The position comes from the newest event carrying any
// location information and the temperature from the newest event carrying a
// reading; the two may be different events.
func deriveCurrentState(status string, events []TrackingEventResponse) CurrentStateResponse {
	state := CurrentStateResponse{Status: status}

	if len(events) > 0 {
		at := events[0].OccurredAt
		state.LastEventAt = &at
	}

	positionFound := false
	for _, event := range events {
		if !positionFound && (event.Location != "" || event.Latitude != nil) {
			state.Location = event.Location
			state.Latitude = event.Latitude
			state.Longitude = event.Longitude
			positionFound = true
		}

		if state.Temperature == nil && event.Temperature != nil {
			state.Temperature = event.Temperature
		}

		if positionFound && state.Temperature != nil {
			break
		}
	}

	return state
}

// GetCurrentStateQueryHandler derives a shipment's current state from its
// ledger, enforcing the shipment access policy.
type GetCurrentStateQueryHandler struct {
	db     *gorm.DB
	policy services.AccessPolicy
}

// NewGetCurrentStateQueryHandler creates a handler for current state reads.
// Requires a GORM database connection for query execution.
func NewGetCurrentStateQueryHandler(
	db *gorm.DB,
	policy services.AccessPolicy,
) GetCurrentStateQueryHandler {
	return GetCurrentStateQueryHandler{db: db, policy: policy}
}

// Handle executes the query. A shipment with an empty ledger yields a state
// holding only the status projection.
func (h GetCurrentStateQueryHandler) Handle(
	ctx context.Context,
	query GetCurrentStateQuery,
) (CurrentStateResponse, error) {
	if err := query.Validate(); err != nil {
		return CurrentStateResponse{}, err
	}

	var (
		rawOwnerID uuid.UUID
		status     int
	)

	row := h.db.WithContext(ctx).Raw(`
		SELECT owner_id, status
		FROM shipments
		WHERE id = ?
	`, query.ShipmentID().Bytes()).Row()

	if err := row.Scan(&rawOwnerID, &status); err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, gorm.ErrRecordNotFound) {
			return CurrentStateResponse{}, errs.NewObjectNotFoundError("shipmentId", query.ShipmentID().String())
		}
		return CurrentStateResponse{}, err
	}

	ownerID, err := kernel.UUIDFromBytes(rawOwnerID[:])
	if err != nil {
		return CurrentStateResponse{}, err
	}

	if !h.policy.CanRead(query.Caller(), ownerID) {
		return CurrentStateResponse{}, errs.NewAccessForbiddenError("shipmentId", query.ShipmentID().String())
	}

	events, err := listTrackingEvents(ctx, h.db, query.ShipmentID())
	if err != nil {
		return CurrentStateResponse{}, err
	}

	return deriveCurrentState(shipment.Status(status).String(), events), nil
}
