package queries

import (
	"context"

	"gorm.io/gorm"
)

// ListShipmentsQueryHandler retrieves shipment read models from the database.
// Visibility is decided here rather than in the access policy: exporters are
// filtered to their own shipments instead of being denied.
type ListShipmentsQueryHandler struct {
	db *gorm.DB
}

// NewListShipmentsQueryHandler creates a handler for shipment listing.
// Requires a GORM database connection for query execution.
func NewListShipmentsQueryHandler(db *gorm.DB) ListShipmentsQueryHandler {
	return ListShipmentsQueryHandler{db: db}
}

// Handle executes the query. Results are ordered by creation time, with the
// id breaking ties so pagination-free listings stay stable.
func (h ListShipmentsQueryHandler) Handle(
	ctx context.Context,
	query ListShipmentsQuery,
) ([]ShipmentResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT ` + shipmentColumns + `
		FROM shipments
	`
	args := make([]any, 0, 1)

	if !query.Caller().IsAdmin() {
		sql += ` WHERE owner_id = ?`
		args = append(args, query.Caller().ID().Bytes())
	}

	sql += ` ORDER BY created_at, id`

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	shipments := make([]ShipmentResponse, 0)
	for rows.Next() {
		resp, scanErr := scanShipmentRow(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		shipments = append(shipments, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return shipments, nil
}
