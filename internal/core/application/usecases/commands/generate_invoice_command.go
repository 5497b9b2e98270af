package commands

import (
	"errors"

	"citrustrack/internal/core/domain/model/kernel"
	"citrustrack/internal/core/domain/model/principal"
	"citrustrack/internal/pkg/guard"
)

var ErrGenerateInvoiceCommandIsNotConstructed = errors.New(
	"GenerateInvoiceCommand must be created via NewGenerateInvoiceCommand constructor",
)

// GenerateInvoiceCommand represents a request to generate a commercial
// invoice from a shipment's current state. Each request produces a new
// document; existing invoices are never reused or modified.
type GenerateInvoiceCommand struct { //nolint:recvcheck //using for validation
	caller     principal.Principal
	shipmentID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGenerateInvoiceCommand creates a command to generate a commercial invoice.
func NewGenerateInvoiceCommand(
	caller principal.Principal,
	shipmentID kernel.UUID,
) (GenerateInvoiceCommand, error) {
	cmd := GenerateInvoiceCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCaller(caller),
		cmd.setShipmentID(shipmentID),
	); err != nil {
		return GenerateInvoiceCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrGenerateInvoiceCommandIsNotConstructed if validation fails.
func (c GenerateInvoiceCommand) Validate() error {
	return c.guard.Validate(ErrGenerateInvoiceCommandIsNotConstructed)
}

// Caller returns the authenticated principal requesting the invoice.
func (c GenerateInvoiceCommand) Caller() principal.Principal {
	return c.caller
}

// ShipmentID returns the id of the shipment to invoice.
func (c GenerateInvoiceCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

func (c *GenerateInvoiceCommand) setCaller(caller principal.Principal) error {
	if err := caller.Validate(); err != nil {
		return err
	}

	c.caller = caller
	return nil
}

func (c *GenerateInvoiceCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}

	c.shipmentID = shipmentID
	return nil
}
