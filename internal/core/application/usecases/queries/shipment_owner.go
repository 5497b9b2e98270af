// Package queries contains read operations in the CQRS architecture.
// Query handlers bypass the domain repositories and read the database
// directly, returning flat read models shaped for the API.
//
// Handlers that serve owner-scoped data load the shipment first and check
// access afterwards, so a missing shipment is reported as not-found even to
// callers who would have been denied.
package queries

import (
	"context"
	"database/sql"
	"errors"

	"citrustrack/internal/core/domain/model/kernel"
	"citrustrack/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// getShipmentOwner resolves the owner of a shipment, returning
// errs.ErrObjectNotFound when the shipment does not exist.
func getShipmentOwner(ctx context.Context, db *gorm.DB, shipmentID kernel.UUID) (kernel.UUID, error) {
	var ownerID uuid.UUID

	row := db.WithContext(ctx).Raw(`
		SELECT owner_id
		FROM shipments
		WHERE id = ?
	`, shipmentID.Bytes()).Row()

	if err := row.Scan(&ownerID); err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, gorm.ErrRecordNotFound) {
			return kernel.UUID{}, errs.NewObjectNotFoundError("shipmentId", shipmentID.String())
		}
		return kernel.UUID{}, err
	}

	return kernel.UUIDFromBytes(ownerID[:])
}
