// Package shipmentrepo provides data transfer objects and mapping functions
// for shipment persistence. This package implements the repository pattern
// for the shipment aggregate, handling the conversion between domain
// entities and database representations.
package shipmentrepo

import (
	"time"

	"citrustrack/internal/core/domain/model/kernel"
	"citrustrack/internal/core/domain/model/shipment"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ShipmentDTO represents the database structure for persisting shipment
// aggregates. The tracking number carries a unique index; the owner id is
// indexed for the exporter-scoped listings.
type ShipmentDTO struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	TrackingNumber     string    `gorm:"size:16;uniqueIndex"`
	OwnerID            uuid.UUID `gorm:"type:uuid;index"`
	ExporterName       string
	ImporterName       string
	Product            string
	Variety            string
	QuantityCartons    int
	WeightKg           *decimal.Decimal `gorm:"type:numeric(12,3)"`
	DestinationCountry string
	DestinationPort    string
	PortOfLoading      string
	VesselName         string
	ContainerNumber    string
	Status             int
	CreatedAt          time.Time `gorm:"autoCreateTime:false"`
	UpdatedAt          time.Time `gorm:"autoUpdateTime:false"`
}

// TableName specifies the database table name for shipment entities.
// Overrides GORM's default naming convention to use "shipments".
func (ShipmentDTO) TableName() string {
	return "shipments"
}

// fromDomain converts a shipment domain aggregate to its database
// representation. Timestamps are taken from the aggregate, not generated
// by the database layer.
func fromDomain(aggregate *shipment.Shipment) ShipmentDTO {
	details := aggregate.Details()

	return ShipmentDTO{
		ID:                 aggregate.ID().Bytes(),
		TrackingNumber:     aggregate.TrackingNumber().String(),
		OwnerID:            aggregate.OwnerID().Bytes(),
		ExporterName:       details.ExporterName,
		ImporterName:       details.ImporterName,
		Product:            details.Product,
		Variety:            details.Variety,
		QuantityCartons:    details.QuantityCartons,
		WeightKg:           details.WeightKg,
		DestinationCountry: details.DestinationCountry,
		DestinationPort:    details.DestinationPort,
		PortOfLoading:      details.PortOfLoading,
		VesselName:         details.VesselName,
		ContainerNumber:    details.ContainerNumber,
		Status:             int(aggregate.Status()),
		CreatedAt:          aggregate.CreatedAt(),
		UpdatedAt:          aggregate.UpdatedAt(),
	}
}

// toDomain converts a database DTO to a shipment domain aggregate.
// Reconstructs the complete aggregate including status and timestamps using
// RestoreShipment.
func toDomain(dto ShipmentDTO) (*shipment.Shipment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	ownerID, err := kernel.UUIDFromBytes(dto.OwnerID[:])
	if err != nil {
		return nil, err
	}

	trackingNumber, err := shipment.TrackingNumberFromString(dto.TrackingNumber)
	if err != nil {
		return nil, err
	}

	return shipment.RestoreShipment(
		id,
		ownerID,
		trackingNumber,
		shipment.Details{
			ExporterName:       dto.ExporterName,
			ImporterName:       dto.ImporterName,
			Product:            dto.Product,
			Variety:            dto.Variety,
			QuantityCartons:    dto.QuantityCartons,
			WeightKg:           dto.WeightKg,
			DestinationCountry: dto.DestinationCountry,
			DestinationPort:    dto.DestinationPort,
			PortOfLoading:      dto.PortOfLoading,
			VesselName:         dto.VesselName,
			ContainerNumber:    dto.ContainerNumber,
		},
		shipment.Status(dto.Status),
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
