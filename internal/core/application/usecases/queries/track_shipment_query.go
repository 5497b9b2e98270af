package queries

import (
	"errors"

	"citrustrack/internal/core/domain/model/shipment"
	"citrustrack/internal/pkg/guard"
)

var ErrTrackShipmentQueryIsNotConstructed = errors.New(
	"TrackShipmentQuery must be created via NewTrackShipmentQuery constructor",
)

// TrackShipmentQuery retrieves the public tracking view of a shipment by its
// tracking number. There is no caller: knowing the tracking number is the
// capability, the way carrier tracking pages work.
type TrackShipmentQuery struct {
	trackingNumber shipment.TrackingNumber

	guard guard.ConstructorGuard
}

// NewTrackShipmentQuery creates a public tracking query from a raw tracking
// number. Malformed numbers are rejected here, before any database work.
func NewTrackShipmentQuery(rawTrackingNumber string) (TrackShipmentQuery, error) {
	trackingNumber, err := shipment.TrackingNumberFromString(rawTrackingNumber)
	if err != nil {
		return TrackShipmentQuery{}, err
	}

	return TrackShipmentQuery{
		trackingNumber: trackingNumber,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrTrackShipmentQueryIsNotConstructed if validation fails.
func (q TrackShipmentQuery) Validate() error {
	return q.guard.Validate(ErrTrackShipmentQueryIsNotConstructed)
}

// TrackingNumber returns the tracking number being looked up.
func (q TrackShipmentQuery) TrackingNumber() shipment.TrackingNumber {
	return q.trackingNumber
}

// TrackShipmentResponse is the public tracking view: the status projection,
// the derived current state and the full event history, without owner or
// commercial details.
type TrackShipmentResponse struct {
	TrackingNumber string
	Status         string
	CurrentState   CurrentStateResponse
	History        []TrackingEventResponse
}
