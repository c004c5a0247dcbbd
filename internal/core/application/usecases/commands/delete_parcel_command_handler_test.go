package commands_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/actor"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/parcel"
	"logistics/internal/pkg/errs"
)

func TestDeleteParcelCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	tn := kernel.NewTrackingNumber(time.Now())
	admin := mustActor(t, actor.Admin, "root")
	cmd, err := commands.NewDeleteParcelCommand(tn, admin)
	require.NoError(t, err)

	aggregate, err := parcel.NewParcel(tn, "cust-1", "Jane Doe", "1 Main St", parcel.Standard, time.Now())
	require.NoError(t, err)

	parcelRepo := new(MockParcelRepository)
	eventRepo := new(MockTrackingEventRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ParcelRepository").Return(parcelRepo).Once(),
		parcelRepo.On("Get", mock.Anything, tn).Return(aggregate, nil).Once(),
		uow.On("TrackingEventRepository").Return(eventRepo).Once(),
		eventRepo.On("DeleteByTrackingNumber", mock.Anything, tn).Return(nil).Once(),
		uow.On("ParcelRepository").Return(parcelRepo).Once(),
		parcelRepo.On("Delete", mock.Anything, tn).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeleteParcelCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	parcelRepo.AssertExpectations(t)
	eventRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestDeleteParcelCommandHandler_Handle_StaffAllowed(t *testing.T) {
	ctx := t.Context()
	tn := kernel.NewTrackingNumber(time.Now())
	staff := mustActor(t, actor.Staff, "staff.smith")
	cmd, err := commands.NewDeleteParcelCommand(tn, staff)
	require.NoError(t, err)

	aggregate, err := parcel.NewParcel(tn, "cust-1", "Jane Doe", "1 Main St", parcel.Standard, time.Now())
	require.NoError(t, err)

	parcelRepo := new(MockParcelRepository)
	eventRepo := new(MockTrackingEventRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ParcelRepository").Return(parcelRepo)
	uow.On("TrackingEventRepository").Return(eventRepo)
	parcelRepo.On("Get", mock.Anything, tn).Return(aggregate, nil).Once()
	eventRepo.On("DeleteByTrackingNumber", mock.Anything, tn).Return(nil).Once()
	parcelRepo.On("Delete", mock.Anything, tn).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeleteParcelCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
}

func TestDeleteParcelCommandHandler_Handle_PermissionDenied(t *testing.T) {
	ctx := t.Context()
	tn := kernel.NewTrackingNumber(time.Now())

	for _, role := range []actor.Role{actor.Customer, actor.Warehouse, actor.Driver} {
		t.Run(role.String(), func(t *testing.T) {
			cmd, err := commands.NewDeleteParcelCommand(tn, mustActor(t, role, "someone"))
			require.NoError(t, err)

			factory := new(MockUoWFactory)

			h := commands.NewDeleteParcelCommandHandler(factory)
			err = h.Handle(ctx, cmd)
			require.ErrorIs(t, err, errs.ErrPermissionDenied)
			factory.AssertNotCalled(t, "Create")
		})
	}
}

func TestDeleteParcelCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	tn := kernel.NewTrackingNumber(time.Now())
	admin := mustActor(t, actor.Admin, "root")
	cmd, err := commands.NewDeleteParcelCommand(tn, admin)
	require.NoError(t, err)

	parcelRepo := new(MockParcelRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ParcelRepository").Return(parcelRepo).Once(),
		parcelRepo.On("Get", mock.Anything, tn).Return(nil, errs.NewObjectNotFoundError("trackingNumber", tn.String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeleteParcelCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	parcelRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
