// Package shipment provides domain entities and business logic for citrus
// export shipments. It implements the Shipment aggregate root with lifecycle
// management and monotonic status advancement.
//
// The package includes:
//   - Shipment: The aggregate root that manages shipment identity, trade
//     details, and the denormalized status projection
//   - Status: A state machine enforcing forward-only status transitions
//   - TrackingNumber: The public "CIT-XXXXXXXX" code value object
//
// Key business rules:
//   - Shipments must have an owner, exporter, importer, product, a positive
//     carton count, and a destination country
//   - Status follows the ordering created -> in_transit -> arrived -> delivered
//     and never moves backward
//   - The status field is a projection: it is only written through the
//     tracking ledger's append path, never by direct mutation
//   - Tracking numbers and owners are immutable once assigned
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package shipment
