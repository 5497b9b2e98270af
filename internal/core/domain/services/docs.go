// Package services provides domain services that implement business rules
// spanning more than one aggregate.
//
// The package includes:
//   - AccessPolicy: The ownership and role based access rules for shipments
//
// Domain services keep such cross-aggregate logic out of the entities and out
// of the application layer, following Domain-Driven Design principles.
package services
