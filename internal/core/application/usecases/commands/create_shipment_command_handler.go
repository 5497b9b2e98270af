package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"citrustrack/internal/core/domain/model/kernel"
	"citrustrack/internal/core/domain/model/shipment"
	"citrustrack/internal/core/domain/model/tracking"
	"citrustrack/internal/pkg/errs"
)

// CreateShipmentCommandHandler handles the business logic for shipment
// registration. A new shipment starts in "created" status and its first
// tracking event, a status_change recording the creation, is written in the
// same transaction, so the ledger is never empty for an existing shipment.
//
// Tracking numbers are random; on the rare collision with an existing number
// the handler retries once with a fresh number before giving up.
type CreateShipmentCommandHandler struct {
	uowFactory TrackingUoWFactory
}

// NewCreateShipmentCommandHandler creates a handler for shipment registration.
// Requires a TrackingUoWFactory for transactional persistence.
func NewCreateShipmentCommandHandler(uowFactory TrackingUoWFactory) CreateShipmentCommandHandler {
	return CreateShipmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the shipment registration command and returns the created
// shipment, whose id and tracking number were generated server-side.
func (h *CreateShipmentCommandHandler) Handle(
	ctx context.Context,
	cmd CreateShipmentCommand,
) (*shipment.Shipment, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	sh, err := h.register(ctx, cmd)
	if errors.Is(err, errs.ErrCodeCollision) {
		sh, err = h.register(ctx, cmd)
	}

	return sh, err
}

// register runs one registration attempt with a fresh tracking number in its
// own transaction. A duplicate tracking number aborts the transaction, so a
// retry cannot reuse it.
func (h *CreateShipmentCommandHandler) register(
	ctx context.Context,
	cmd CreateShipmentCommand,
) (*shipment.Shipment, error) {
	now := time.Now().UTC()

	sh, err := shipment.NewShipment(
		kernel.NewUUID(),
		cmd.Caller().ID(),
		shipment.NewTrackingNumber(),
		cmd.Details(),
		now,
	)
	if err != nil {
		return nil, err
	}

	event, err := tracking.NewEvent(
		kernel.NewUUID(),
		sh.ID(),
		tracking.EventTypeStatusChange,
		tracking.Attributes{
			Location:    sh.Details().PortOfLoading,
			Description: fmt.Sprintf("created at %s", sh.Details().PortOfLoading),
			NewStatus:   shipment.StatusCreated,
		},
		now,
	)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ShipmentRepository().Add(ctx, sh); err != nil {
		return nil, err
	}

	if err = uow.TrackingEventRepository().Add(ctx, event); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return sh, nil
}
