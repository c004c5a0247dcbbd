package commands

import (
	"context"
	"errors"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/tracking"
	"logistics/internal/core/ports"
)

// ErrParcelBusy is returned when another status change for the same tracking
// number is in flight and the per-parcel lock could not be acquired.
var ErrParcelBusy = errors.New("parcel is busy")

// parcelLockTTL bounds how long a crashed handler can keep a parcel locked.
const parcelLockTTL = 30 * time.Second

// ChangeParcelStatusCommandHandler executes the status state machine and
// appends the resulting tracking event.
//
// The status write and the event append happen in one transaction, so the
// invariant "current status equals the status of the latest event" holds at
// every commit point. A per-tracking-number lock serializes concurrent
// changes to the same parcel across application instances.
type ChangeParcelStatusCommandHandler struct {
	uowFactory UoWFactory
	locker     ports.ParcelLocker
}

// NewChangeParcelStatusCommandHandler creates a handler for status changes.
// Requires a UoWFactory for transactional persistence and a ParcelLocker
// for per-parcel serialization.
func NewChangeParcelStatusCommandHandler(
	uowFactory UoWFactory,
	locker ports.ParcelLocker,
) ChangeParcelStatusCommandHandler {
	return ChangeParcelStatusCommandHandler{
		uowFactory: uowFactory,
		locker:     locker,
	}
}

// Handle processes the status change command.
//
// Flow: acquire the per-parcel lock, load the parcel, let the aggregate
// apply the role gate and transition rules, append the tracking event and
// commit both writes atomically. Returns ErrParcelBusy when the lock is
// held elsewhere.
func (h *ChangeParcelStatusCommandHandler) Handle(ctx context.Context, cmd ChangeParcelStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	acquired, err := h.locker.Acquire(ctx, cmd.TrackingNumber(), parcelLockTTL)
	if err != nil {
		return err
	}
	if !acquired {
		return ErrParcelBusy
	}

	defer func() {
		_ = h.locker.Release(ctx, cmd.TrackingNumber())
	}()

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	parcelRepo := uow.ParcelRepository()

	aggregate, err := parcelRepo.Get(ctx, cmd.TrackingNumber())
	if err != nil {
		return err
	}

	if err = aggregate.ChangeStatus(cmd.Actor(), cmd.NewStatus()); err != nil {
		return err
	}

	event, err := tracking.NewEvent(
		kernel.NewEventID(),
		cmd.TrackingNumber(),
		cmd.NewStatus(),
		cmd.Location(),
		cmd.VehicleID(),
		cmd.WarehouseID(),
		cmd.Actor().Username(),
		cmd.Notes(),
		time.Now().UTC(),
	)
	if err != nil {
		return err
	}

	if err = parcelRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.TrackingEventRepository().Add(ctx, event); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
