// Package documentrepo provides data transfer objects and mapping functions
// for generated trade documents. Documents are write-once: rows are inserted
// and read, never updated.
package documentrepo

import (
	"time"

	"citrustrack/internal/core/domain/model/document"
	"citrustrack/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DocumentDTO represents the database structure for persisting documents.
// The content snapshot is stored as jsonb exactly as derived at generation
// time; the document number carries a unique index.
type DocumentDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	ShipmentID     uuid.UUID `gorm:"type:uuid;index"`
	DocType        int
	DocumentNumber string                  `gorm:"size:16;uniqueIndex"`
	Status         int
	Content        document.InvoiceContent `gorm:"serializer:json;type:jsonb"`
	CreatedAt      time.Time               `gorm:"autoCreateTime:false"`
}

// TableName specifies the database table name for documents.
// Overrides GORM's default naming convention to use "documents".
func (DocumentDTO) TableName() string {
	return "documents"
}

// fromDomain converts a document to its database representation.
func fromDomain(aggregate *document.Document) DocumentDTO {
	return DocumentDTO{
		ID:             aggregate.ID().Bytes(),
		ShipmentID:     aggregate.ShipmentID().Bytes(),
		DocType:        int(aggregate.Type()),
		DocumentNumber: aggregate.DocumentNumber().String(),
		Status:         int(aggregate.Status()),
		Content:        aggregate.Content(),
		CreatedAt:      aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO to a document using RestoreDocument.
func toDomain(dto DocumentDTO) (*document.Document, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	shipmentID, err := kernel.UUIDFromBytes(dto.ShipmentID[:])
	if err != nil {
		return nil, err
	}

	number, err := document.InvoiceNumberFromString(dto.DocumentNumber)
	if err != nil {
		return nil, err
	}

	return document.RestoreDocument(
		id,
		shipmentID,
		document.Type(dto.DocType),
		number,
		document.Status(dto.Status),
		dto.Content,
		dto.CreatedAt,
	)
}
