package commands

import (
	"context"

	"logistics/internal/core/domain/model/parcel"
)

// CreateParcelCommandHandler handles the business logic for parcel creation.
// New parcels start in the "created" status; the event trail starts empty
// and grows with the first status change.
//
// Example:
//
//	handler := NewCreateParcelCommandHandler(uowFactory)
//	cmd, _ := NewCreateParcelCommand(tn, "cust-1", "Jane Doe", "1 Main St", parcel.Standard, time.Now().UTC())
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("parcel creation failed: %w", err)
//	}
type CreateParcelCommandHandler struct {
	uowFactory ParcelUoWFactory
}

// NewCreateParcelCommandHandler creates a handler for parcel creation operations.
// Requires a ParcelUoWFactory for transactional persistence.
func NewCreateParcelCommandHandler(uowFactory ParcelUoWFactory) CreateParcelCommandHandler {
	return CreateParcelCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the parcel creation command.
// Uses a transaction to ensure the parcel is properly persisted or rolled
// back on error. A tracking-number collision surfaces as
// ports.ErrTrackingNumberTaken from the repository; the caller may retry
// with a fresh number.
func (h *CreateParcelCommandHandler) Handle(ctx context.Context, cmd CreateParcelCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	newParcel, err := parcel.NewParcel(
		cmd.TrackingNumber(),
		cmd.SenderID(),
		cmd.RecipientName(),
		cmd.RecipientAddress(),
		cmd.ServiceTier(),
		cmd.CreatedAt(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ParcelRepository().Add(ctx, newParcel); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
