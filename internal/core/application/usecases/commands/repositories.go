// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, access control,
// transaction management, and persistence.
package commands

import (
	"context"

	"citrustrack/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// ShipmentRepoFactory provides access to the shipment repository within a transaction.
	ShipmentRepoFactory interface {
		ShipmentRepository() ports.ShipmentRepository
	}

	// TrackingEventRepoFactory provides access to the tracking ledger within a transaction.
	TrackingEventRepoFactory interface {
		TrackingEventRepository() ports.TrackingEventRepository
	}

	// DocumentRepoFactory provides access to the document repository within a transaction.
	DocumentRepoFactory interface {
		DocumentRepository() ports.DocumentRepository
	}

	// TrackingUoW manages transactions spanning the shipment registry and the
	// tracking ledger. Creating a shipment writes its first ledger entry, and
	// appending a status_change event updates the shipment projection, so both
	// command paths need the two repositories in one transaction.
	TrackingUoW interface {
		TxManager
		ShipmentRepoFactory
		TrackingEventRepoFactory
	}

	// TrackingUoWFactory creates new tracking unit of work instances.
	TrackingUoWFactory interface {
		Create() TrackingUoW
	}

	// DocumentUoW manages transactions for document generation, which reads
	// the shipment and writes the document in one transaction.
	DocumentUoW interface {
		TxManager
		ShipmentRepoFactory
		DocumentRepoFactory
	}

	// DocumentUoWFactory creates new document unit of work instances.
	DocumentUoWFactory interface {
		Create() DocumentUoW
	}
)
