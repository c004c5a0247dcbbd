package commands

import (
	"context"

	"logistics/internal/pkg/errs"
)

// DeleteParcelCommandHandler removes parcels together with their event
// trails. The permission check is an application-level rule: staff and
// administrative roles may delete, everyone else is rejected.
type DeleteParcelCommandHandler struct {
	uowFactory UoWFactory
}

// NewDeleteParcelCommandHandler creates a handler for parcel deletion.
// Requires a UoWFactory because the parcel and its events are removed in
// one transaction.
func NewDeleteParcelCommandHandler(uowFactory UoWFactory) DeleteParcelCommandHandler {
	return DeleteParcelCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the deletion command. The event trail is removed first,
// then the parcel itself; both inside one transaction.
func (h *DeleteParcelCommandHandler) Handle(ctx context.Context, cmd DeleteParcelCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if !cmd.Actor().Role().MayDeleteParcels() {
		return errs.NewPermissionDeniedError(cmd.Actor().Role().String(), "delete parcel")
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	// Ensure the parcel exists so an unknown tracking number surfaces as
	// an object-not-found error rather than a silent no-op.
	if _, err := uow.ParcelRepository().Get(ctx, cmd.TrackingNumber()); err != nil {
		return err
	}

	if err := uow.TrackingEventRepository().DeleteByTrackingNumber(ctx, cmd.TrackingNumber()); err != nil {
		return err
	}

	if err := uow.ParcelRepository().Delete(ctx, cmd.TrackingNumber()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
