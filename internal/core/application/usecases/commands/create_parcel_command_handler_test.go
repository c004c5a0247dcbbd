package commands_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/parcel"
)

func TestCreateParcelCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	tn := kernel.NewTrackingNumber(time.Now())
	createdAt := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
	cmd, _ := commands.NewCreateParcelCommand(tn, "cust-1", "Jane Doe", "1 Main St", parcel.Standard, createdAt)

	var added *parcel.Parcel
	repo := new(MockParcelRepository)
	uow := new(MockParcelUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ParcelRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*parcel.Parcel")).
			Run(func(args mock.Arguments) {
				added = args.Get(1).(*parcel.Parcel)
			}).
			Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockParcelUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateParcelCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.NotNil(t, added)
	require.Equal(t, createdAt, added.CreatedAt())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateParcelCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateParcelCommand{} // not constructed properly
	factory := new(MockParcelUoWFactory)
	h := commands.NewCreateParcelCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestCreateParcelCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	tn := kernel.NewTrackingNumber(time.Now())
	cmd, _ := commands.NewCreateParcelCommand(tn, "cust-1", "Jane Doe", "1 Main St", parcel.Standard, time.Now().UTC())

	uow := new(MockParcelUoW)
	factory := new(MockParcelUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	h := commands.NewCreateParcelCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestCreateParcelCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	tn := kernel.NewTrackingNumber(time.Now())
	cmd, _ := commands.NewCreateParcelCommand(tn, "cust-1", "Jane Doe", "1 Main St", parcel.Standard, time.Now().UTC())

	repo := new(MockParcelRepository)
	uow := new(MockParcelUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ParcelRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*parcel.Parcel")).Return(errors.New("add error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockParcelUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateParcelCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateParcelCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	tn := kernel.NewTrackingNumber(time.Now())
	cmd, _ := commands.NewCreateParcelCommand(tn, "cust-1", "Jane Doe", "1 Main St", parcel.Standard, time.Now().UTC())

	repo := new(MockParcelRepository)
	uow := new(MockParcelUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ParcelRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*parcel.Parcel")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockParcelUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateParcelCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}
