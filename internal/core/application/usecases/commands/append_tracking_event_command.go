package commands

import (
	"errors"

	"citrustrack/internal/core/domain/model/kernel"
	"citrustrack/internal/core/domain/model/principal"
	"citrustrack/internal/core/domain/model/tracking"
	"citrustrack/internal/pkg/guard"
)

var ErrAppendTrackingEventCommandIsNotConstructed = errors.New(
	"AppendTrackingEventCommand must be created via NewAppendTrackingEventCommand constructor",
)

// AppendTrackingEventCommand represents a request to append an event to a
// shipment's tracking ledger. Attribute validation against the event type
// happens in the tracking aggregate.
//
// Example:
//
//	cmd, err := NewAppendTrackingEventCommand(
//	    caller, shipmentID,
//	    tracking.EventTypeLocationUpdate,
//	    tracking.Attributes{Location: "Durban"},
//	)
//	if err != nil {
//	    return fmt.Errorf("invalid tracking event: %w", err)
//	}
//
//	event, err := handler.Handle(ctx, cmd)
type AppendTrackingEventCommand struct { //nolint:recvcheck //using for validation
	caller     principal.Principal
	shipmentID kernel.UUID
	eventType  tracking.EventType
	attributes tracking.Attributes

	guard guard.ConstructorGuard
}

// NewAppendTrackingEventCommand creates a command to append a tracking event.
func NewAppendTrackingEventCommand(
	caller principal.Principal,
	shipmentID kernel.UUID,
	eventType tracking.EventType,
	attributes tracking.Attributes,
) (AppendTrackingEventCommand, error) {
	cmd := AppendTrackingEventCommand{
		attributes: attributes,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCaller(caller),
		cmd.setShipmentID(shipmentID),
		cmd.setEventType(eventType),
	); err != nil {
		return AppendTrackingEventCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAppendTrackingEventCommandIsNotConstructed if validation fails.
func (c AppendTrackingEventCommand) Validate() error {
	return c.guard.Validate(ErrAppendTrackingEventCommandIsNotConstructed)
}

// Caller returns the authenticated principal appending the event.
func (c AppendTrackingEventCommand) Caller() principal.Principal {
	return c.caller
}

// ShipmentID returns the id of the shipment to append to.
func (c AppendTrackingEventCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// EventType returns the kind of tracking event to append.
func (c AppendTrackingEventCommand) EventType() tracking.EventType {
	return c.eventType
}

// Attributes returns the event payload.
func (c AppendTrackingEventCommand) Attributes() tracking.Attributes {
	return c.attributes
}

func (c *AppendTrackingEventCommand) setCaller(caller principal.Principal) error {
	if err := caller.Validate(); err != nil {
		return err
	}

	c.caller = caller
	return nil
}

func (c *AppendTrackingEventCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}

	c.shipmentID = shipmentID
	return nil
}

func (c *AppendTrackingEventCommand) setEventType(eventType tracking.EventType) error {
	if err := eventType.Validate(); err != nil {
		return err
	}

	c.eventType = eventType
	return nil
}
