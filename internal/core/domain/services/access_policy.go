package services

import (
	"citrustrack/internal/core/domain/model/kernel"
	"citrustrack/internal/core/domain/model/principal"
)

// AccessPolicy is a domain service deciding whether a principal may act on a
// shipment. The rule set is deliberately small:
//
//   - Admins may read and modify any shipment
//   - Exporters may read and modify only shipments they own
//
// Read and write access coincide today; the two methods stay separate so the
// policy can diverge (e.g. read-only clerk roles) without touching callers.
//
// Public tracking by tracking number bypasses this policy entirely and is
// handled by the query layer.
type AccessPolicy struct{}

// NewAccessPolicy creates a new AccessPolicy instance.
func NewAccessPolicy() AccessPolicy {
	return AccessPolicy{}
}

// CanRead reports whether the principal may read a shipment owned by ownerID.
func (p AccessPolicy) CanRead(caller principal.Principal, ownerID kernel.UUID) bool {
	return p.allows(caller, ownerID)
}

// CanModify reports whether the principal may append tracking events to or
// generate documents for a shipment owned by ownerID.
func (p AccessPolicy) CanModify(caller principal.Principal, ownerID kernel.UUID) bool {
	return p.allows(caller, ownerID)
}

func (p AccessPolicy) allows(caller principal.Principal, ownerID kernel.UUID) bool {
	if caller.Validate() != nil {
		return false
	}

	return caller.IsAdmin() || ownerID.IsEqual(caller.ID())
}
