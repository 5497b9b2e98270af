package queries

import (
	"errors"
	"time"

	"citrustrack/internal/core/domain/model/document"
	"citrustrack/internal/core/domain/model/kernel"
	"citrustrack/internal/core/domain/model/principal"
	"citrustrack/internal/pkg/guard"
)

var ErrListDocumentsQueryIsNotConstructed = errors.New(
	"ListDocumentsQuery must be created via NewListDocumentsQuery constructor",
)

// ListDocumentsQuery retrieves the documents generated for a shipment on
// behalf of an authenticated caller.
type ListDocumentsQuery struct {
	caller     principal.Principal
	shipmentID kernel.UUID

	guard guard.ConstructorGuard
}

// NewListDocumentsQuery creates a query to list a shipment's documents.
func NewListDocumentsQuery(
	caller principal.Principal,
	shipmentID kernel.UUID,
) (ListDocumentsQuery, error) {
	if err := errors.Join(caller.Validate(), shipmentID.Validate()); err != nil {
		return ListDocumentsQuery{}, err
	}

	return ListDocumentsQuery{
		caller:     caller,
		shipmentID: shipmentID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrListDocumentsQueryIsNotConstructed if validation fails.
func (q ListDocumentsQuery) Validate() error {
	return q.guard.Validate(ErrListDocumentsQueryIsNotConstructed)
}

// Caller returns the authenticated principal listing documents.
func (q ListDocumentsQuery) Caller() principal.Principal {
	return q.caller
}

// ShipmentID returns the id of the shipment whose documents to list.
func (q ListDocumentsQuery) ShipmentID() kernel.UUID {
	return q.shipmentID
}

// DocumentResponse is the read model for one generated trade document,
// including the stored content snapshot.
type DocumentResponse struct {
	ID             kernel.UUID
	ShipmentID     kernel.UUID
	DocType        string
	DocumentNumber string
	Status         string
	Content        document.InvoiceContent
	CreatedAt      time.Time
}
