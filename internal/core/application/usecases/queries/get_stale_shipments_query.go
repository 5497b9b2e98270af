package queries

import (
	"errors"
	"time"

	"citrustrack/internal/core/domain/model/kernel"
	"citrustrack/internal/pkg/errs"
	"citrustrack/internal/pkg/guard"
)

var ErrGetStaleShipmentsQueryIsNotConstructed = errors.New(
	"GetStaleShipmentsQuery must be created via NewGetStaleShipmentsQuery constructor",
)

// GetStaleShipmentsQuery retrieves undelivered shipments whose ledgers have
// been silent for at least the given duration. Used by the stale shipment
// watchdog job; there is no caller because the job runs unattended.
type GetStaleShipmentsQuery struct {
	olderThan time.Duration

	guard guard.ConstructorGuard
}

// NewGetStaleShipmentsQuery creates a query for silent, undelivered shipments.
func NewGetStaleShipmentsQuery(olderThan time.Duration) (GetStaleShipmentsQuery, error) {
	if olderThan <= 0 {
		return GetStaleShipmentsQuery{}, errs.NewValueIsRequiredError("olderThan")
	}

	return GetStaleShipmentsQuery{
		olderThan: olderThan,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetStaleShipmentsQueryIsNotConstructed if validation fails.
func (q GetStaleShipmentsQuery) Validate() error {
	return q.guard.Validate(ErrGetStaleShipmentsQueryIsNotConstructed)
}

// OlderThan returns the silence threshold.
func (q GetStaleShipmentsQuery) OlderThan() time.Duration {
	return q.olderThan
}

// StaleShipmentResponse is the read model for one silent shipment. The last
// activity is the newest ledger entry, or the creation time for shipments
// that somehow have none.
type StaleShipmentResponse struct {
	ID             kernel.UUID
	TrackingNumber string
	Status         string
	OwnerID        kernel.UUID
	LastActivityAt time.Time
}
