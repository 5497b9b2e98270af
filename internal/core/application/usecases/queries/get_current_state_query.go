package queries

import (
	"errors"
	"time"

	"citrustrack/internal/core/domain/model/kernel"
	"citrustrack/internal/core/domain/model/principal"
	"citrustrack/internal/pkg/guard"
)

var ErrGetCurrentStateQueryIsNotConstructed = errors.New(
	"GetCurrentStateQuery must be created via NewGetCurrentStateQuery constructor",
)

// GetCurrentStateQuery retrieves the derived current state of a shipment on
// behalf of an authenticated caller.
type GetCurrentStateQuery struct {
	caller     principal.Principal
	shipmentID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCurrentStateQuery creates a query for a shipment's current state.
func NewGetCurrentStateQuery(
	caller principal.Principal,
	shipmentID kernel.UUID,
) (GetCurrentStateQuery, error) {
	if err := errors.Join(caller.Validate(), shipmentID.Validate()); err != nil {
		return GetCurrentStateQuery{}, err
	}

	return GetCurrentStateQuery{
		caller:     caller,
		shipmentID: shipmentID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetCurrentStateQueryIsNotConstructed if validation fails.
func (q GetCurrentStateQuery) Validate() error {
	return q.guard.Validate(ErrGetCurrentStateQueryIsNotConstructed)
}

// Caller returns the authenticated principal reading the state.
func (q GetCurrentStateQuery) Caller() principal.Principal {
	return q.caller
}

// ShipmentID returns the id of the shipment whose state to derive.
func (q GetCurrentStateQuery) ShipmentID() kernel.UUID {
	return q.shipmentID
}

// CurrentStateResponse is the state derived from a shipment's ledger:
// the status projection plus the most recent position and temperature
// readings. Nil fields mean the ledger holds no reading of that kind yet.
type CurrentStateResponse struct {
	Status      string
	Location    string
	Latitude    *float64
	Longitude   *float64
	Temperature *float64
	LastEventAt *time.Time
}
