package queries

import (
	"errors"
	"time"

	"citrustrack/internal/core/domain/model/kernel"
	"citrustrack/internal/core/domain/model/principal"
	"citrustrack/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetShipmentQueryIsNotConstructed = errors.New(
	"GetShipmentQuery must be created via NewGetShipmentQuery constructor",
)

// GetShipmentQuery retrieves a single shipment by id on behalf of an
// authenticated caller.
type GetShipmentQuery struct {
	caller     principal.Principal
	shipmentID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetShipmentQuery creates a query to retrieve one shipment.
func NewGetShipmentQuery(caller principal.Principal, shipmentID kernel.UUID) (GetShipmentQuery, error) {
	if err := errors.Join(caller.Validate(), shipmentID.Validate()); err != nil {
		return GetShipmentQuery{}, err
	}

	return GetShipmentQuery{
		caller:     caller,
		shipmentID: shipmentID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetShipmentQueryIsNotConstructed if validation fails.
func (q GetShipmentQuery) Validate() error {
	return q.guard.Validate(ErrGetShipmentQueryIsNotConstructed)
}

// Caller returns the authenticated principal reading the shipment.
func (q GetShipmentQuery) Caller() principal.Principal {
	return q.caller
}

// ShipmentID returns the id of the shipment to retrieve.
func (q GetShipmentQuery) ShipmentID() kernel.UUID {
	return q.shipmentID
}

// ShipmentResponse is the read model for a shipment, including its current
// status projection and all trade attributes.
type ShipmentResponse struct {
	ID                 kernel.UUID
	TrackingNumber     string
	OwnerID            kernel.UUID
	Status             string
	ExporterName       string
	ImporterName       string
	Product            string
	Variety            string
	QuantityCartons    int
	WeightKg           *decimal.Decimal
	DestinationCountry string
	DestinationPort    string
	PortOfLoading      string
	VesselName         string
	ContainerNumber    string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
