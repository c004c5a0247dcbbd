package commands

import (
	"context"
	"errors"
	"time"

	"logistics/internal/core/domain/model/actor"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/parcel"
	"logistics/internal/core/domain/model/tracking"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"
)

// delayedWatchOperator identifies the system actor on tracking events
// produced by the watch job.
const delayedWatchOperator = "system"

// FlagDelayedParcelsCommandHandler sweeps in-transit parcels and marks the
// stale ones as delayed. A parcel counts as stale when its latest tracking
// event is older than the command's threshold. The sweep runs under a
// system actor with administrative rights so the role gate never blocks it.
//
// Each parcel is flagged under its per-tracking-number lock, in its own
// transaction, and the status is re-checked from storage under the lock,
// so the sweep cannot clobber a status committed concurrently by the
// regular status-change path. Parcels whose lock is held elsewhere are
// skipped; the next sweep picks them up.
type FlagDelayedParcelsCommandHandler struct {
	uowFactory UoWFactory
	locker     ports.ParcelLocker
}

// NewFlagDelayedParcelsCommandHandler creates a handler for the delayed-parcel sweep.
// Requires a UoWFactory for transactional persistence and a ParcelLocker
// for per-parcel serialization.
func NewFlagDelayedParcelsCommandHandler(uowFactory UoWFactory, locker ports.ParcelLocker) FlagDelayedParcelsCommandHandler {
	return FlagDelayedParcelsCommandHandler{
		uowFactory: uowFactory,
		locker:     locker,
	}
}

// Handle flags all stale in-transit parcels.
// The candidate list is a read-only snapshot; each candidate is then
// re-validated and flagged inside its own locked transaction.
func (h *FlagDelayedParcelsCommandHandler) Handle(ctx context.Context, cmd FlagDelayedParcelsCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	system, err := actor.NewActor(actor.Admin, delayedWatchOperator)
	if err != nil {
		return err
	}

	listUoW := h.uowFactory.Create()
	if err = listUoW.Begin(ctx); err != nil {
		return err
	}

	inTransit, err := listUoW.ParcelRepository().GetAllInStatus(ctx, parcel.InTransit)
	_ = listUoW.Rollback(ctx)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	cutoff := now.Add(-cmd.OlderThan())

	for _, candidate := range inTransit {
		if err = h.flagIfStale(ctx, system, candidate.TrackingNumber(), cutoff, now); err != nil {
			return err
		}
	}

	return nil
}

// flagIfStale flags one candidate parcel as delayed. Under the parcel's
// lock it re-reads the aggregate and skips it when the status moved on
// since the snapshot, when no tracking event exists to age against, or
// when the latest event is newer than the cutoff.
func (h *FlagDelayedParcelsCommandHandler) flagIfStale(
	ctx context.Context,
	system actor.Actor,
	trackingNumber kernel.TrackingNumber,
	cutoff time.Time,
	now time.Time,
) error {
	acquired, err := h.locker.Acquire(ctx, trackingNumber, parcelLockTTL)
	if err != nil {
		return err
	}
	if !acquired {
		return nil
	}

	defer func() {
		_ = h.locker.Release(ctx, trackingNumber)
	}()

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	parcelRepo := uow.ParcelRepository()
	eventRepo := uow.TrackingEventRepository()

	aggregate, err := parcelRepo.Get(ctx, trackingNumber)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil
		}
		return err
	}

	if aggregate.Status() != parcel.InTransit {
		return nil
	}

	latest, err := eventRepo.GetLatest(ctx, trackingNumber)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil
		}
		return err
	}

	if latest.Timestamp().After(cutoff) {
		return nil
	}

	if err = aggregate.ChangeStatus(system, parcel.Delayed); err != nil {
		return err
	}

	event, err := tracking.NewEvent(
		kernel.NewEventID(),
		trackingNumber,
		parcel.Delayed,
		"", "", "",
		delayedWatchOperator,
		"no movement recorded within the delay threshold",
		now,
	)
	if err != nil {
		return err
	}

	if err = parcelRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = eventRepo.Add(ctx, event); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
