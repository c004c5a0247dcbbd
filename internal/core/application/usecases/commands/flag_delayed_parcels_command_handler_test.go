package commands_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/parcel"
	"logistics/internal/core/domain/model/tracking"
	"logistics/internal/pkg/errs"
)

func eventAt(t *testing.T, tn kernel.TrackingNumber, status parcel.Status, ts time.Time) *tracking.Event {
	t.Helper()

	event, err := tracking.NewEvent(kernel.NewEventID(), tn, status, "", "", "", "driver.jones", "", ts)
	require.NoError(t, err)

	return event
}

func TestNewFlagDelayedParcelsCommand(t *testing.T) {
	cmd, err := commands.NewFlagDelayedParcelsCommand(4 * time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 4*time.Hour, cmd.OlderThan())

	_, err = commands.NewFlagDelayedParcelsCommand(0)
	assert.ErrorIs(t, err, commands.ErrThresholdIsInvalid)
}

func TestFlagDelayedParcelsCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewFlagDelayedParcelsCommand(4 * time.Hour)
	require.NoError(t, err)

	staleTN := kernel.NewTrackingNumber(time.Now())
	freshTN := kernel.NewTrackingNumber(time.Now())
	silentTN := kernel.NewTrackingNumber(time.Now())

	stale := restoredParcel(t, staleTN, parcel.InTransit)
	fresh := restoredParcel(t, freshTN, parcel.InTransit)
	silent := restoredParcel(t, silentTN, parcel.InTransit)

	locker := new(MockParcelLocker)
	for _, tn := range []kernel.TrackingNumber{staleTN, freshTN, silentTN} {
		expectLock(ctx, locker, tn)
	}

	parcelRepo := new(MockParcelRepository)
	eventRepo := new(MockTrackingEventRepository)
	uow := new(MockUoW)

	// One transaction for the snapshot plus one per candidate.
	uow.On("Begin", ctx).Return(nil).Times(4)
	uow.On("ParcelRepository").Return(parcelRepo)
	uow.On("TrackingEventRepository").Return(eventRepo)
	uow.On("Rollback", ctx).Return(nil).Times(4)

	parcelRepo.On("GetAllInStatus", mock.Anything, parcel.InTransit).
		Return([]*parcel.Parcel{stale, fresh, silent}, nil).Once()

	parcelRepo.On("Get", mock.Anything, staleTN).Return(stale, nil).Once()
	parcelRepo.On("Get", mock.Anything, freshTN).Return(fresh, nil).Once()
	parcelRepo.On("Get", mock.Anything, silentTN).Return(silent, nil).Once()

	eventRepo.On("GetLatest", mock.Anything, staleTN).
		Return(eventAt(t, staleTN, parcel.InTransit, time.Now().Add(-8*time.Hour)), nil).Once()
	eventRepo.On("GetLatest", mock.Anything, freshTN).
		Return(eventAt(t, freshTN, parcel.InTransit, time.Now().Add(-time.Hour)), nil).Once()
	eventRepo.On("GetLatest", mock.Anything, silentTN).
		Return(nil, errs.NewObjectNotFoundError("trackingNumber", silentTN.String())).Once()

	parcelRepo.On("Update", mock.Anything, stale).Return(nil).Once()
	eventRepo.On("Add", mock.Anything, mock.AnythingOfType("*tracking.Event")).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Times(4)

	h := commands.NewFlagDelayedParcelsCommandHandler(factory, locker)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.Equal(t, parcel.Delayed, stale.Status())
	assert.Equal(t, parcel.InTransit, fresh.Status())
	assert.Equal(t, parcel.InTransit, silent.Status())
	parcelRepo.AssertExpectations(t)
	eventRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	locker.AssertExpectations(t)
}

func TestFlagDelayedParcelsCommandHandler_Handle_SkipsRestatusedParcel(t *testing.T) {
	// The snapshot saw the parcel in transit, but by the time the sweep
	// holds its lock the parcel was delivered. The sweep must leave it
	// alone instead of overwriting the delivery.
	ctx := t.Context()
	cmd, err := commands.NewFlagDelayedParcelsCommand(4 * time.Hour)
	require.NoError(t, err)

	tn := kernel.NewTrackingNumber(time.Now())
	snapshot := restoredParcel(t, tn, parcel.InTransit)
	current := restoredParcel(t, tn, parcel.Delivered)

	locker := new(MockParcelLocker)
	expectLock(ctx, locker, tn)

	parcelRepo := new(MockParcelRepository)
	eventRepo := new(MockTrackingEventRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Times(2)
	uow.On("ParcelRepository").Return(parcelRepo)
	uow.On("TrackingEventRepository").Return(eventRepo)
	uow.On("Rollback", ctx).Return(nil).Times(2)

	parcelRepo.On("GetAllInStatus", mock.Anything, parcel.InTransit).
		Return([]*parcel.Parcel{snapshot}, nil).Once()
	parcelRepo.On("Get", mock.Anything, tn).Return(current, nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Times(2)

	h := commands.NewFlagDelayedParcelsCommandHandler(factory, locker)
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, parcel.Delivered, current.Status())
	parcelRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	eventRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	locker.AssertExpectations(t)
}

func TestFlagDelayedParcelsCommandHandler_Handle_SkipsLockedParcel(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewFlagDelayedParcelsCommand(4 * time.Hour)
	require.NoError(t, err)

	tn := kernel.NewTrackingNumber(time.Now())
	snapshot := restoredParcel(t, tn, parcel.InTransit)

	locker := new(MockParcelLocker)
	locker.On("Acquire", ctx, tn, mock.AnythingOfType("time.Duration")).Return(false, nil).Once()

	parcelRepo := new(MockParcelRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ParcelRepository").Return(parcelRepo)
	uow.On("Rollback", ctx).Return(nil).Once()
	parcelRepo.On("GetAllInStatus", mock.Anything, parcel.InTransit).
		Return([]*parcel.Parcel{snapshot}, nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewFlagDelayedParcelsCommandHandler(factory, locker)
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, parcel.InTransit, snapshot.Status())
	parcelRepo.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
	locker.AssertNotCalled(t, "Release", mock.Anything, mock.Anything)
	locker.AssertExpectations(t)
}

func TestFlagDelayedParcelsCommandHandler_Handle_NothingInTransit(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewFlagDelayedParcelsCommand(4 * time.Hour)
	require.NoError(t, err)

	locker := new(MockParcelLocker)

	parcelRepo := new(MockParcelRepository)
	eventRepo := new(MockTrackingEventRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ParcelRepository").Return(parcelRepo)
	uow.On("Rollback", ctx).Return(nil).Once()
	parcelRepo.On("GetAllInStatus", mock.Anything, parcel.InTransit).Return([]*parcel.Parcel{}, nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewFlagDelayedParcelsCommandHandler(factory, locker)
	require.NoError(t, h.Handle(ctx, cmd))

	eventRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	locker.AssertNotCalled(t, "Acquire", mock.Anything, mock.Anything, mock.Anything)
}
