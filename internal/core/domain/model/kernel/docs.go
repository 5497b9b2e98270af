// Package kernel provides core domain primitives for the citrus export
// tracking system. It implements fundamental building blocks following
// Domain-Driven Design principles that are used throughout the domain model.
//
// The package includes:
//   - UUID: A value object for opaque unique identifiers
//   - GeoPoint: A value object for WGS84 coordinates reported by tracking events
//   - NewCode: The generator for human-facing codes (tracking and invoice numbers)
//
// These primitives enforce domain invariants and validation rules, ensuring
// that domain objects are always in a valid state. They are immutable and
// thread-safe, making them suitable for concurrent use.
package kernel
