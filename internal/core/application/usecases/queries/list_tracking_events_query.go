package queries

import (
	"errors"
	"time"

	"citrustrack/internal/core/domain/model/kernel"
	"citrustrack/internal/core/domain/model/principal"
	"citrustrack/internal/pkg/guard"
)

var ErrListTrackingEventsQueryIsNotConstructed = errors.New(
	"ListTrackingEventsQuery must be created via NewListTrackingEventsQuery constructor",
)

// ListTrackingEventsQuery retrieves a shipment's full tracking history on
// behalf of an authenticated caller.
type ListTrackingEventsQuery struct {
	caller     principal.Principal
	shipmentID kernel.UUID

	guard guard.ConstructorGuard
}

// NewListTrackingEventsQuery creates a query to list a shipment's events.
func NewListTrackingEventsQuery(
	caller principal.Principal,
	shipmentID kernel.UUID,
) (ListTrackingEventsQuery, error) {
	if err := errors.Join(caller.Validate(), shipmentID.Validate()); err != nil {
		return ListTrackingEventsQuery{}, err
	}

	return ListTrackingEventsQuery{
		caller:     caller,
		shipmentID: shipmentID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrListTrackingEventsQueryIsNotConstructed if validation fails.
func (q ListTrackingEventsQuery) Validate() error {
	return q.guard.Validate(ErrListTrackingEventsQueryIsNotConstructed)
}

// Caller returns the authenticated principal reading the history.
func (q ListTrackingEventsQuery) Caller() principal.Principal {
	return q.caller
}

// ShipmentID returns the id of the shipment whose history to list.
func (q ListTrackingEventsQuery) ShipmentID() kernel.UUID {
	return q.shipmentID
}

// TrackingEventResponse is the read model for one tracking ledger entry.
// NewStatus is empty for anything but status_change events.
type TrackingEventResponse struct {
	ID          kernel.UUID
	ShipmentID  kernel.UUID
	EventType   string
	Location    string
	Latitude    *float64
	Longitude   *float64
	Temperature *float64
	Description string
	NewStatus   string
	OccurredAt  time.Time
}
