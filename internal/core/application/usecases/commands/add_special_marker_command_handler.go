package commands

import (
	"context"

	"logistics/internal/core/ports"
)

// AddSpecialMarkerCommandHandler attaches special handling markers to parcels.
type AddSpecialMarkerCommandHandler struct {
	uowFactory ParcelUoWFactory
	locker     ports.ParcelLocker
}

// NewAddSpecialMarkerCommandHandler creates a handler for marker additions.
// Requires a ParcelUoWFactory for transactional persistence and a
// ParcelLocker for per-parcel serialization.
func NewAddSpecialMarkerCommandHandler(uowFactory ParcelUoWFactory, locker ports.ParcelLocker) AddSpecialMarkerCommandHandler {
	return AddSpecialMarkerCommandHandler{
		uowFactory: uowFactory,
		locker:     locker,
	}
}

// Handle loads the parcel under its per-parcel lock, adds the marker and
// persists the result inside a single transaction. Adding an
// already-present marker succeeds without changing anything. Returns
// ErrParcelBusy when the lock is held elsewhere.
func (h *AddSpecialMarkerCommandHandler) Handle(ctx context.Context, cmd AddSpecialMarkerCommand) error {
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
	if err := uow.Begin(ctx); err != nil {
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

	if err = aggregate.AddMarker(cmd.Marker()); err != nil {
		return err
	}

	if err = parcelRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
