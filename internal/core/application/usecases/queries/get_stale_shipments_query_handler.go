package queries

import (
	"context"
	"time"

	"citrustrack/internal/core/domain/model/kernel"
	"citrustrack/internal/core/domain/model/shipment"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetStaleShipmentsQueryHandler finds undelivered shipments without recent
// tracking activity.
type GetStaleShipmentsQueryHandler struct {
	db *gorm.DB
}

// NewGetStaleShipmentsQueryHandler creates a handler for stale shipment scans.
// Requires a GORM database connection for query execution.
func NewGetStaleShipmentsQueryHandler(db *gorm.DB) GetStaleShipmentsQueryHandler {
	return GetStaleShipmentsQueryHandler{db: db}
}

// Handle executes the query. Delivered shipments never count as stale;
// results come back oldest activity first.
func (h GetStaleShipmentsQueryHandler) Handle(
	ctx context.Context,
	query GetStaleShipmentsQuery,
) ([]StaleShipmentResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	cutoff := time.Now().UTC().Add(-query.OlderThan())

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			s.id,
			s.tracking_number,
			s.status,
			s.owner_id,
			COALESCE(MAX(e.occurred_at), s.created_at) AS last_activity_at
		FROM shipments s
		LEFT JOIN tracking_events e ON e.shipment_id = s.id
		WHERE s.status <> ?
		GROUP BY s.id
		HAVING COALESCE(MAX(e.occurred_at), s.created_at) < ?
		ORDER BY last_activity_at
	`, int(shipment.StatusDelivered), cutoff).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	shipments := make([]StaleShipmentResponse, 0)
	for rows.Next() {
		var (
			resp    StaleShipmentResponse
			id      uuid.UUID
			ownerID uuid.UUID
			status  int
		)

		if err = rows.Scan(
			&id,
			&resp.TrackingNumber,
			&status,
			&ownerID,
			&resp.LastActivityAt,
		); err != nil {
			return nil, err
		}

		shipmentID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = shipmentID

		owner, idErr := kernel.UUIDFromBytes(ownerID[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.OwnerID = owner

		resp.Status = shipment.Status(status).String()
		shipments = append(shipments, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return shipments, nil
}
