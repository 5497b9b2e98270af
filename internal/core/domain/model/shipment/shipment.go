package shipment

import (
	"errors"
	"fmt"
	"time"

	"citrustrack/internal/core/domain/model/kernel"
	"citrustrack/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// DefaultPortOfLoading is assumed when the exporter does not name a port.
// The system serves South African citrus exporters, and Cape Town is the
// default origin port.
const DefaultPortOfLoading = "Cape Town"

// ErrShipmentIsNotConstructed is returned when a Shipment instance was not
// created through NewShipment or RestoreShipment.
var ErrShipmentIsNotConstructed = errors.New("Shipment must be created via NewShipment or RestoreShipment")

// Details carries the trade attributes of a shipment. Required fields are
// ExporterName, ImporterName, Product, QuantityCartons and
// DestinationCountry; the rest are optional and empty values mean "not
// provided". PortOfLoading falls back to DefaultPortOfLoading when empty.
type Details struct {
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
}

// Shipment represents a citrus export shipment. It is the aggregate root
// that manages the shipment lifecycle from creation through delivery.
//
// Shipment follows these invariants:
//   - Must have a valid identifier, owner, and tracking number
//   - ExporterName, ImporterName, Product and DestinationCountry are required
//   - QuantityCartons must be positive
//   - The owner and tracking number never change after creation
//   - Status only advances (see Status), and only via AdvanceStatus, which
//     the tracking ledger's append path invokes transactionally
//
// The struct uses private fields to ensure encapsulation and maintains its
// invariants through validated methods.
type Shipment struct {
	id             kernel.UUID
	trackingNumber TrackingNumber
	ownerID        kernel.UUID
	details        Details
	status         Status
	createdAt      time.Time
	updatedAt      time.Time

	isConstructed bool
}

// NewShipment creates a Shipment in StatusCreated with validation. This is
// the only way to create a new shipment; the caller supplies a fresh id and
// tracking number and the owning principal's id.
//
// Example:
//
//	sh, err := shipment.NewShipment(
//	    kernel.NewUUID(), owner.ID(), shipment.NewTrackingNumber(),
//	    shipment.Details{
//	        ExporterName:       "Cape Citrus Co",
//	        ImporterName:       "Hamburg Fruit GmbH",
//	        Product:            "Lemons",
//	        QuantityCartons:    500,
//	        DestinationCountry: "Germany",
//	    },
//	    time.Now().UTC(),
//	)
func NewShipment(
	id kernel.UUID,
	ownerID kernel.UUID,
	trackingNumber TrackingNumber,
	details Details,
	now time.Time,
) (*Shipment, error) {
	if details.PortOfLoading == "" {
		details.PortOfLoading = DefaultPortOfLoading
	}

	sh := &Shipment{
		status:        StatusCreated,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		sh.setID(id),
		sh.setOwnerID(ownerID),
		sh.setTrackingNumber(trackingNumber),
		sh.setDetails(details),
	); err != nil {
		return nil, err
	}

	return sh, nil
}

// RestoreShipment reconstructs a Shipment from persistence, including its
// stored status and timestamps. Used only by repository implementations.
func RestoreShipment(
	id kernel.UUID,
	ownerID kernel.UUID,
	trackingNumber TrackingNumber,
	details Details,
	status Status,
	createdAt time.Time,
	updatedAt time.Time,
) (*Shipment, error) {
	sh := &Shipment{
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		sh.setID(id),
		sh.setOwnerID(ownerID),
		sh.setTrackingNumber(trackingNumber),
		sh.setDetails(details),
		sh.setStatus(status),
	); err != nil {
		return nil, err
	}

	return sh, nil
}

// Validate ensures the Shipment instance was properly constructed.
// Called when reconstructing shipments from persistence.
func (s *Shipment) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrShipmentIsNotConstructed
	}

	return nil
}

// IsEqual compares two shipments by their unique identifiers.
func (s *Shipment) IsEqual(other *Shipment) bool {
	return other != nil && s.id.IsEqual(other.id)
}

// ID returns the shipment's unique identifier.
func (s *Shipment) ID() kernel.UUID {
	return s.id
}

// TrackingNumber returns the public tracking number.
func (s *Shipment) TrackingNumber() TrackingNumber {
	return s.trackingNumber
}

// OwnerID returns the id of the principal that created the shipment.
func (s *Shipment) OwnerID() kernel.UUID {
	return s.ownerID
}

// IsOwnedBy reports whether the given principal id owns this shipment.
func (s *Shipment) IsOwnedBy(principalID kernel.UUID) bool {
	return s.ownerID.IsEqual(principalID)
}

// Details returns the shipment's trade attributes.
func (s *Shipment) Details() Details {
	return s.details
}

// Status returns the current status projection.
func (s *Shipment) Status() Status {
	return s.status
}

// CreatedAt returns the creation timestamp.
func (s *Shipment) CreatedAt() time.Time {
	return s.createdAt
}

// UpdatedAt returns the last modification timestamp.
func (s *Shipment) UpdatedAt() time.Time {
	return s.updatedAt
}

// AdvanceStatus moves the status projection forward to next.
//
// This is the only mutation a shipment allows after creation, and it is
// reserved for the tracking ledger: a status_change event and the projection
// update it implies are persisted as one atomic step. Regressions are
// rejected; re-asserting the current status succeeds.
func (s *Shipment) AdvanceStatus(next Status, at time.Time) error {
	newStatus, err := s.status.Advance(next)
	if err != nil {
		return err
	}

	s.status = newStatus
	s.updatedAt = at
	return nil
}

func (s *Shipment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Shipment) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}
	s.ownerID = ownerID
	return nil
}

func (s *Shipment) setTrackingNumber(trackingNumber TrackingNumber) error {
	if err := trackingNumber.Validate(); err != nil {
		return err
	}
	s.trackingNumber = trackingNumber
	return nil
}

func (s *Shipment) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	s.status = status
	return nil
}

func (s *Shipment) setDetails(details Details) error {
	var errsList []error

	if details.ExporterName == "" {
		errsList = append(errsList, errs.NewValueIsRequiredError("exporter_name"))
	}
	if details.ImporterName == "" {
		errsList = append(errsList, errs.NewValueIsRequiredError("importer_name"))
	}
	if details.Product == "" {
		errsList = append(errsList, errs.NewValueIsRequiredError("product"))
	}
	if details.DestinationCountry == "" {
		errsList = append(errsList, errs.NewValueIsRequiredError("destination_country"))
	}
	if details.QuantityCartons <= 0 {
		errsList = append(errsList, errs.NewValueIsInvalidErrorWithCause(
			"quantity_cartons",
			fmt.Errorf("%d is not greater than 0", details.QuantityCartons),
		))
	}
	if details.WeightKg != nil && details.WeightKg.IsNegative() {
		errsList = append(errsList, errs.NewValueIsInvalidErrorWithCause(
			"weight_kg",
			fmt.Errorf("%s is negative", details.WeightKg.String()),
		))
	}

	if err := errors.Join(errsList...); err != nil {
		return err
	}

	s.details = details
	return nil
}
