package documentrepo

import (
	"context"
	"errors"

	"citrustrack/internal/core/domain/model/document"
	"citrustrack/internal/core/domain/model/kernel"
	"citrustrack/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormDocumentRepository implements DocumentRepository using GORM.
type GormDocumentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormDocumentRepository creates a new GORM document repository.
func NewGormDocumentRepository(db *gorm.DB, tracker aggregateTracker) *GormDocumentRepository {
	return &GormDocumentRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a newly generated document. A duplicate document number is
// reported as errs.ErrCodeCollision so the caller can regenerate and retry.
func (r *GormDocumentRepository) Add(ctx context.Context, aggregate *document.Document) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewCodeCollisionErrorWithCause("documentNumber", dto.DocumentNumber, err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// GetAllByShipmentID retrieves all documents for a shipment, newest first.
func (r *GormDocumentRepository) GetAllByShipmentID(
	ctx context.Context,
	shipmentID kernel.UUID,
) ([]*document.Document, error) {
	if err := shipmentID.Validate(); err != nil {
		return nil, err
	}

	var dtos []DocumentDTO
	err := r.db.WithContext(ctx).
		Where("shipment_id = ?", shipmentID.Bytes()).
		Order("created_at DESC, id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	documents := make([]*document.Document, 0, len(dtos))
	for _, dto := range dtos {
		doc, convErr := toDomain(dto)
		if convErr != nil {
			return nil, convErr
		}
		documents = append(documents, doc)
	}

	return documents, nil
}
