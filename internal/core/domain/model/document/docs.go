// Package document provides trade-document entities for citrus export
// shipments, currently the commercial invoice.
//
// The package includes:
//   - Document: An immutable generated trade document with a point-in-time
//     content snapshot
//   - InvoiceNumber: The "INV-XXXXXXXX" code value object
//   - InvoiceContent and BuildInvoiceContent: The deterministic derivation
//     of invoice content from a shipment snapshot
//   - HSCodeForProduct: The static HS tariff-code table for citrus products
//
// Key business rules:
//   - Documents are immutable once generated; content is never recomputed
//     from later shipment state
//   - Each generation call produces a new document with a new invoice
//     number, matching real-world invoice semantics (no deduplication)
//   - Unrecognized products fall back to the default citrus HS code rather
//     than failing
package document
