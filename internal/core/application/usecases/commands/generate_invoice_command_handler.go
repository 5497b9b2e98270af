package commands

import (
	"context"
	"errors"
	"time"

	"citrustrack/internal/core/domain/model/document"
	"citrustrack/internal/core/domain/model/kernel"
	"citrustrack/internal/core/domain/services"
	"citrustrack/internal/pkg/errs"
)

// GenerateInvoiceCommandHandler handles commercial invoice generation.
// Invoice content is a deterministic snapshot of the shipment at generation
// time; later shipment changes do not touch existing documents.
//
// Invoice numbers are random; on a collision with an existing number the
// handler retries once with a fresh number before giving up.
type GenerateInvoiceCommandHandler struct {
	uowFactory DocumentUoWFactory
	policy     services.AccessPolicy
}

// NewGenerateInvoiceCommandHandler creates a handler for invoice generation.
// Requires a DocumentUoWFactory for transactional persistence.
func NewGenerateInvoiceCommandHandler(
	uowFactory DocumentUoWFactory,
	policy services.AccessPolicy,
) GenerateInvoiceCommandHandler {
	return GenerateInvoiceCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}
}

// Handle processes the invoice generation command and returns the created
// document with its server-generated invoice number.
func (h *GenerateInvoiceCommandHandler) Handle(
	ctx context.Context,
	cmd GenerateInvoiceCommand,
) (*document.Document, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	doc, err := h.generate(ctx, cmd)
	if errors.Is(err, errs.ErrCodeCollision) {
		doc, err = h.generate(ctx, cmd)
	}

	return doc, err
}

// generate runs one generation attempt with a fresh invoice number in its own
// transaction. A duplicate invoice number aborts the transaction, so a retry
// cannot reuse it.
func (h *GenerateInvoiceCommandHandler) generate(
	ctx context.Context,
	cmd GenerateInvoiceCommand,
) (*document.Document, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	sh, err := uow.ShipmentRepository().Get(ctx, cmd.ShipmentID())
	if err != nil {
		return nil, err
	}

	if !h.policy.CanModify(cmd.Caller(), sh.OwnerID()) {
		return nil, errs.NewAccessForbiddenError("shipmentId", cmd.ShipmentID().String())
	}

	doc, err := document.NewCommercialInvoice(
		kernel.NewUUID(),
		sh,
		document.NewInvoiceNumber(),
		time.Now().UTC(),
	)
	if err != nil {
		return nil, err
	}

	if err = uow.DocumentRepository().Add(ctx, doc); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return doc, nil
}
