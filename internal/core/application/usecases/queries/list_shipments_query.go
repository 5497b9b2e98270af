package queries

import (
	"errors"

	"citrustrack/internal/core/domain/model/principal"
	"citrustrack/internal/pkg/guard"
)

var ErrListShipmentsQueryIsNotConstructed = errors.New(
	"ListShipmentsQuery must be created via NewListShipmentsQuery constructor",
)

// ListShipmentsQuery retrieves the shipments visible to the caller: all
// shipments for admins, only owned shipments for exporters.
type ListShipmentsQuery struct {
	caller principal.Principal

	guard guard.ConstructorGuard
}

// NewListShipmentsQuery creates a query to list the caller's visible shipments.
func NewListShipmentsQuery(caller principal.Principal) (ListShipmentsQuery, error) {
	if err := caller.Validate(); err != nil {
		return ListShipmentsQuery{}, err
	}

	return ListShipmentsQuery{
		caller: caller,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrListShipmentsQueryIsNotConstructed if validation fails.
func (q ListShipmentsQuery) Validate() error {
	return q.guard.Validate(ErrListShipmentsQueryIsNotConstructed)
}

// Caller returns the authenticated principal listing shipments.
func (q ListShipmentsQuery) Caller() principal.Principal {
	return q.caller
}
