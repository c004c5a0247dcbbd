package commands

import (
	"context"

	"logistics/internal/core/ports"
)

// UpdateParcelAttributesCommandHandler applies measured physical attributes
// to an existing parcel.
type UpdateParcelAttributesCommandHandler struct {
	uowFactory ParcelUoWFactory
	locker     ports.ParcelLocker
}

// NewUpdateParcelAttributesCommandHandler creates a handler for attribute updates.
// Requires a ParcelUoWFactory for transactional persistence and a
// ParcelLocker for per-parcel serialization.
func NewUpdateParcelAttributesCommandHandler(uowFactory ParcelUoWFactory, locker ports.ParcelLocker) UpdateParcelAttributesCommandHandler {
	return UpdateParcelAttributesCommandHandler{
		uowFactory: uowFactory,
		locker:     locker,
	}
}

// Handle loads the parcel under its per-parcel lock, applies the new
// attributes and persists the result inside a single transaction. Fails
// with an object-not-found error if the tracking number is unknown.
// Returns ErrParcelBusy when the lock is held elsewhere.
func (h *UpdateParcelAttributesCommandHandler) Handle(ctx context.Context, cmd UpdateParcelAttributesCommand) error {
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

	if err = aggregate.UpdateAttributes(
		cmd.WeightKg(), cmd.LengthCm(), cmd.WidthCm(), cmd.HeightCm(),
		cmd.DeclaredValue(), cmd.DistanceKm(),
		cmd.ContentDescription(),
	); err != nil {
		return err
	}

	if err = parcelRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
