package principal

import (
	"errors"
	"fmt"

	"citrustrack/internal/core/domain/model/kernel"
	"citrustrack/internal/pkg/errs"
)

// ErrPrincipalIsNotConstructed is returned when a Principal instance was not
// created through NewPrincipal.
var ErrPrincipalIsNotConstructed = errors.New("Principal must be created via NewPrincipal")

// Role represents the authorization role of an authenticated caller.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	RoleUnknown Role = iota

	// RoleExporter is a regular exporter user scoped to its own shipments.
	RoleExporter

	// RoleAdmin has unrestricted access to all shipments.
	RoleAdmin
)

// getRoleStrings returns a mapping of all Role values to strings.
func getRoleStrings() map[Role]string {
	roles := getValidRoleStrings()
	roles[RoleUnknown] = "unknown"
	return roles
}

// getValidRoleStrings returns only the valid Role values.
func getValidRoleStrings() map[Role]string {
	//nolint:exhaustive // RoleUnknown is intentionally excluded as it's invalid
	return map[Role]string{
		RoleExporter: "exporter",
		RoleAdmin:    "admin",
	}
}

// RoleFromString converts a wire representation into a Role.
func RoleFromString(s string) (Role, error) {
	for role, str := range getValidRoleStrings() {
		if str == s {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause(
		"role", fmt.Errorf("%q is not a valid role", s))
}

// Validate checks if the Role is a valid authorization role.
func (r Role) Validate() error {
	if _, ok := getValidRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the wire representation of the role.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "unknown"
}

// Principal identifies the authenticated caller of an operation: a user id
// plus an authorization role. It is a value object; the system stores no
// principal records and trusts the identity the transport layer resolved.
type Principal struct {
	id   kernel.UUID
	role Role

	isConstructed bool
}

// NewPrincipal creates a validated Principal.
func NewPrincipal(id kernel.UUID, role Role) (Principal, error) {
	if err := errors.Join(id.Validate(), role.Validate()); err != nil {
		return Principal{}, err
	}

	return Principal{id: id, role: role, isConstructed: true}, nil
}

// Validate ensures the Principal instance was properly constructed.
func (p Principal) Validate() error {
	if !p.isConstructed {
		return ErrPrincipalIsNotConstructed
	}

	return nil
}

// ID returns the caller's unique identifier.
func (p Principal) ID() kernel.UUID {
	return p.id
}

// Role returns the caller's authorization role.
func (p Principal) Role() Role {
	return p.role
}

// IsAdmin reports whether the principal holds the admin role.
func (p Principal) IsAdmin() bool {
	return p.role == RoleAdmin
}
