// Package tracking provides the append-only tracking-event ledger entities
// for citrus export shipments.
//
// The package includes:
//   - Event: A single immutable ledger entry (location update, temperature
//     alert, or status change) belonging to exactly one shipment
//   - EventType: The closed set of event kinds with per-kind validation
//
// Key business rules:
//   - Events are append-only: once created they are never mutated or deleted
//   - Timestamps are server-assigned at append time; clients never declare
//     event order
//   - A status_change event carries the status the shipment advances to;
//     the shipment's status projection is updated in the same transaction
//     as the append
//   - History reads order events newest-first by timestamp, with insertion
//     order as the stable tie-break
package tracking
