package queries

import (
	"context"
	"encoding/json"

	"citrustrack/internal/core/domain/model/document"
	"citrustrack/internal/core/domain/model/kernel"
	"citrustrack/internal/core/domain/services"
	"citrustrack/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListDocumentsQueryHandler retrieves a shipment's generated documents,
// enforcing the shipment access policy.
type ListDocumentsQueryHandler struct {
	db     *gorm.DB
	policy services.AccessPolicy
}

// NewListDocumentsQueryHandler creates a handler for document listing.
// Requires a GORM database connection for query execution.
func NewListDocumentsQueryHandler(
	db *gorm.DB,
	policy services.AccessPolicy,
) ListDocumentsQueryHandler {
	return ListDocumentsQueryHandler{db: db, policy: policy}
}

// Handle executes the query. Documents come back newest first; a shipment
// without documents yields an empty slice, not an error.
func (h ListDocumentsQueryHandler) Handle(
	ctx context.Context,
	query ListDocumentsQuery,
) ([]DocumentResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	ownerID, err := getShipmentOwner(ctx, h.db, query.ShipmentID())
	if err != nil {
		return nil, err
	}

	if !h.policy.CanRead(query.Caller(), ownerID) {
		return nil, errs.NewAccessForbiddenError("shipmentId", query.ShipmentID().String())
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			shipment_id,
			doc_type,
			document_number,
			status,
			content,
			created_at
		FROM documents
		WHERE shipment_id = ?
		ORDER BY created_at DESC, id
	`, query.ShipmentID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	documents := make([]DocumentResponse, 0)
	for rows.Next() {
		var (
			resp       DocumentResponse
			id         uuid.UUID
			shipmentID uuid.UUID
			docType    int
			status     int
			rawContent []byte
		)

		if err = rows.Scan(
			&id,
			&shipmentID,
			&docType,
			&resp.DocumentNumber,
			&status,
			&rawContent,
			&resp.CreatedAt,
		); err != nil {
			return nil, err
		}

		docID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = docID

		shID, idErr := kernel.UUIDFromBytes(shipmentID[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ShipmentID = shID

		resp.DocType = document.Type(docType).String()
		resp.Status = document.Status(status).String()

		if err = json.Unmarshal(rawContent, &resp.Content); err != nil {
			return nil, err
		}

		documents = append(documents, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return documents, nil
}
