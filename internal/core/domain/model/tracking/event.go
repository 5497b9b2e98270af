package tracking

import (
	"errors"
	"time"

	"citrustrack/internal/core/domain/model/kernel"
	"citrustrack/internal/core/domain/model/shipment"
	"citrustrack/internal/pkg/errs"
)

// ErrEventIsNotConstructed is returned when an Event instance was not
// created through NewEvent or RestoreEvent.
var ErrEventIsNotConstructed = errors.New("Event must be created via NewEvent or RestoreEvent")

// Attributes carries the optional payload of a tracking event. Which fields
// are required depends on the event type; empty strings and nil pointers
// mean "not reported".
type Attributes struct {
	Location    string
	Geo         *kernel.GeoPoint
	Temperature *float64
	Description string
	NewStatus   shipment.Status
}

// Event is one immutable entry in a shipment's tracking ledger. Events are
// created exclusively through the ledger's append path, which assigns the
// server-side timestamp; they are never mutated or deleted afterwards.
type Event struct {
	id         kernel.UUID
	shipmentID kernel.UUID
	eventType  EventType
	attributes Attributes
	occurredAt time.Time

	isConstructed bool
}

// NewEvent creates a tracking event with per-type validation:
//   - location_update requires a location name or a geo point
//   - temperature_alert requires a temperature reading
//   - status_change requires a valid target status
//
// occurredAt is the server-assigned append timestamp.
func NewEvent(
	id kernel.UUID,
	shipmentID kernel.UUID,
	eventType EventType,
	attributes Attributes,
	occurredAt time.Time,
) (*Event, error) {
	event := &Event{
		occurredAt:    occurredAt,
		isConstructed: true,
	}

	if err := errors.Join(
		event.setID(id),
		event.setShipmentID(shipmentID),
		event.setEventType(eventType),
	); err != nil {
		return nil, err
	}

	if err := event.setAttributes(attributes); err != nil {
		return nil, err
	}

	return event, nil
}

// RestoreEvent reconstructs an Event from persistence.
// Used only by repository implementations.
func RestoreEvent(
	id kernel.UUID,
	shipmentID kernel.UUID,
	eventType EventType,
	attributes Attributes,
	occurredAt time.Time,
) (*Event, error) {
	return NewEvent(id, shipmentID, eventType, attributes, occurredAt)
}

// Validate ensures the Event instance was properly constructed.
func (e *Event) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrEventIsNotConstructed
	}

	return nil
}

// IsEqual compares two events by their unique identifiers.
func (e *Event) IsEqual(other *Event) bool {
	return other != nil && e.id.IsEqual(other.id)
}

// ID returns the event's unique identifier.
func (e *Event) ID() kernel.UUID {
	return e.id
}

// ShipmentID returns the id of the shipment this event belongs to.
func (e *Event) ShipmentID() kernel.UUID {
	return e.shipmentID
}

// Type returns the event kind.
func (e *Event) Type() EventType {
	return e.eventType
}

// Attributes returns the event payload.
func (e *Event) Attributes() Attributes {
	return e.attributes
}

// OccurredAt returns the server-assigned append timestamp.
func (e *Event) OccurredAt() time.Time {
	return e.occurredAt
}

// ImpliesStatusChange reports whether appending this event advances the
// owning shipment's status projection, and to which status.
func (e *Event) ImpliesStatusChange() (shipment.Status, bool) {
	if e.eventType != EventTypeStatusChange {
		return shipment.StatusUnknown, false
	}
	return e.attributes.NewStatus, true
}

func (e *Event) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	e.id = id
	return nil
}

func (e *Event) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}
	e.shipmentID = shipmentID
	return nil
}

func (e *Event) setEventType(eventType EventType) error {
	if err := eventType.Validate(); err != nil {
		return err
	}
	e.eventType = eventType
	return nil
}

func (e *Event) setAttributes(attributes Attributes) error {
	if attributes.Geo != nil {
		if err := attributes.Geo.Validate(); err != nil {
			return err
		}
	}

	switch e.eventType {
	case EventTypeLocationUpdate:
		if attributes.Location == "" && attributes.Geo == nil {
			return errs.NewValueIsRequiredError("location")
		}
	case EventTypeTemperatureAlert:
		if attributes.Temperature == nil {
			return errs.NewValueIsRequiredError("temperature")
		}
	case EventTypeStatusChange:
		if err := attributes.NewStatus.Validate(); err != nil {
			return err
		}
	case EventTypeUnknown:
		return errs.NewValueIsInvalidError("event_type")
	}

	if e.eventType != EventTypeStatusChange {
		// only status_change events carry a target status
		attributes.NewStatus = shipment.StatusUnknown
	}

	e.attributes = attributes
	return nil
}
