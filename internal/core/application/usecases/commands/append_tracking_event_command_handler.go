package commands

import (
	"context"
	"time"

	"citrustrack/internal/core/domain/model/kernel"
	"citrustrack/internal/core/domain/model/tracking"
	"citrustrack/internal/core/domain/services"
	"citrustrack/internal/pkg/errs"
)

// AppendTrackingEventCommandHandler handles appending events to a shipment's
// tracking ledger. The ledger is append-only; the only side effect on the
// shipment itself is the status projection update a status_change event
// implies, and that update is persisted in the same transaction as the event.
//
// Access control: the shipment is loaded first, so a missing shipment yields
// not-found even to callers who would have been denied access.
type AppendTrackingEventCommandHandler struct {
	uowFactory TrackingUoWFactory
	policy     services.AccessPolicy
}

// NewAppendTrackingEventCommandHandler creates a handler for tracking event
// appends. Requires a TrackingUoWFactory for transactional persistence.
func NewAppendTrackingEventCommandHandler(
	uowFactory TrackingUoWFactory,
	policy services.AccessPolicy,
) AppendTrackingEventCommandHandler {
	return AppendTrackingEventCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}
}

// Handle processes the append command and returns the recorded event with its
// server-assigned timestamp.
func (h *AppendTrackingEventCommandHandler) Handle(
	ctx context.Context,
	cmd AppendTrackingEventCommand,
) (*tracking.Event, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	shipmentRepo := uow.ShipmentRepository()

	// The locking read serializes appends per shipment for the rest of the
	// transaction. Without it two concurrent status_change appends could both
	// pass the monotonicity check against the same stale status and the later
	// commit would store a regression.
	sh, err := shipmentRepo.GetForUpdate(ctx, cmd.ShipmentID())
	if err != nil {
		return nil, err
	}

	if !h.policy.CanModify(cmd.Caller(), sh.OwnerID()) {
		return nil, errs.NewAccessForbiddenError("shipmentId", cmd.ShipmentID().String())
	}

	now := time.Now().UTC()

	event, err := tracking.NewEvent(
		kernel.NewUUID(),
		sh.ID(),
		cmd.EventType(),
		cmd.Attributes(),
		now,
	)
	if err != nil {
		return nil, err
	}

	if newStatus, ok := event.ImpliesStatusChange(); ok {
		if err = sh.AdvanceStatus(newStatus, now); err != nil {
			return nil, err
		}

		if err = shipmentRepo.Update(ctx, sh); err != nil {
			return nil, err
		}
	}

	if err = uow.TrackingEventRepository().Add(ctx, event); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return event, nil
}
