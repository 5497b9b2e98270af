package queries

import (
	"context"
	"database/sql"

	"citrustrack/internal/core/domain/model/kernel"
	"citrustrack/internal/core/domain/model/shipment"
	"citrustrack/internal/core/domain/services"
	"citrustrack/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// shipmentColumns is the column list every shipment read shares, in the
// order scanShipmentRow expects.
const shipmentColumns = `
	id,
	tracking_number,
	owner_id,
	status,
	exporter_name,
	importer_name,
	product,
	variety,
	quantity_cartons,
	weight_kg,
	destination_country,
	destination_port,
	port_of_loading,
	vessel_name,
	container_number,
	created_at,
	updated_at`

// scanShipmentRow maps one row selected with shipmentColumns into the
// shipment read model.
func scanShipmentRow(rows *sql.Rows) (ShipmentResponse, error) {
	var (
		resp    ShipmentResponse
		id      uuid.UUID
		ownerID uuid.UUID
		status  int
		weight  decimal.NullDecimal
	)

	if err := rows.Scan(
		&id,
		&resp.TrackingNumber,
		&ownerID,
		&status,
		&resp.ExporterName,
		&resp.ImporterName,
		&resp.Product,
		&resp.Variety,
		&resp.QuantityCartons,
		&weight,
		&resp.DestinationCountry,
		&resp.DestinationPort,
		&resp.PortOfLoading,
		&resp.VesselName,
		&resp.ContainerNumber,
		&resp.CreatedAt,
		&resp.UpdatedAt,
	); err != nil {
		return ShipmentResponse{}, err
	}

	shipmentID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return ShipmentResponse{}, err
	}
	resp.ID = shipmentID

	owner, err := kernel.UUIDFromBytes(ownerID[:])
	if err != nil {
		return ShipmentResponse{}, err
	}
	resp.OwnerID = owner

	resp.Status = shipment.Status(status).String()

	if weight.Valid {
		w := weight.Decimal
		resp.WeightKg = &w
	}

	return resp, nil
}

// GetShipmentQueryHandler retrieves a single shipment read model from the
// database, enforcing the shipment access policy.
type GetShipmentQueryHandler struct {
	db     *gorm.DB
	policy services.AccessPolicy
}

// NewGetShipmentQueryHandler creates a handler for single shipment reads.
// Requires a GORM database connection for query execution.
func NewGetShipmentQueryHandler(db *gorm.DB, policy services.AccessPolicy) GetShipmentQueryHandler {
	return GetShipmentQueryHandler{db: db, policy: policy}
}

// Handle executes the query. Returns errs.ErrObjectNotFound for a missing
// shipment and errs.ErrAccessForbidden for an existing shipment the caller
// may not read.
func (h GetShipmentQueryHandler) Handle(
	ctx context.Context,
	query GetShipmentQuery,
) (ShipmentResponse, error) {
	if err := query.Validate(); err != nil {
		return ShipmentResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+shipmentColumns+`
		FROM shipments
		WHERE id = ?
	`, query.ShipmentID().Bytes()).Rows()
	if err != nil {
		return ShipmentResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return ShipmentResponse{}, err
		}
		return ShipmentResponse{}, errs.NewObjectNotFoundError("shipmentId", query.ShipmentID().String())
	}

	resp, err := scanShipmentRow(rows)
	if err != nil {
		return ShipmentResponse{}, err
	}

	if !h.policy.CanRead(query.Caller(), resp.OwnerID) {
		return ShipmentResponse{}, errs.NewAccessForbiddenError("shipmentId", query.ShipmentID().String())
	}

	return resp, nil
}
