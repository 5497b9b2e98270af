package commands

import (
	"errors"

	"citrustrack/internal/core/domain/model/principal"
	"citrustrack/internal/core/domain/model/shipment"
	"citrustrack/internal/pkg/guard"
)

var ErrCreateShipmentCommandIsNotConstructed = errors.New(
	"CreateShipmentCommand must be created via NewCreateShipmentCommand constructor",
)

// CreateShipmentCommand represents a request to register a new citrus export
// shipment. The caller becomes the shipment's owner. Field-level validation
// of the details happens in the shipment aggregate; the command only
// guarantees a valid caller.
//
// Example:
//
//	cmd, err := NewCreateShipmentCommand(caller, shipment.Details{
//	    ExporterName:       "Cape Citrus Co",
//	    ImporterName:       "Hamburg Fruit GmbH",
//	    Product:            "Lemons",
//	    QuantityCartons:    500,
//	    DestinationCountry: "Germany",
//	})
//	if err != nil {
//	    return fmt.Errorf("invalid shipment data: %w", err)
//	}
//
//	sh, err := handler.Handle(ctx, cmd)
type CreateShipmentCommand struct { //nolint:recvcheck //using for validation
	caller  principal.Principal
	details shipment.Details

	guard guard.ConstructorGuard
}

// NewCreateShipmentCommand creates a command to register a new shipment.
func NewCreateShipmentCommand(
	caller principal.Principal,
	details shipment.Details,
) (CreateShipmentCommand, error) {
	cmd := CreateShipmentCommand{
		details: details,
		guard:   guard.NewConstructorGuard(),
	}

	if err := cmd.setCaller(caller); err != nil {
		return CreateShipmentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateShipmentCommandIsNotConstructed if validation fails.
func (c CreateShipmentCommand) Validate() error {
	return c.guard.Validate(ErrCreateShipmentCommandIsNotConstructed)
}

// Caller returns the authenticated principal creating the shipment.
func (c CreateShipmentCommand) Caller() principal.Principal {
	return c.caller
}

// Details returns the trade attributes of the shipment to create.
func (c CreateShipmentCommand) Details() shipment.Details {
	return c.details
}

func (c *CreateShipmentCommand) setCaller(caller principal.Principal) error {
	if err := caller.Validate(); err != nil {
		return err
	}

	c.caller = caller
	return nil
}
