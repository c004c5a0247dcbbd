package commands_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/parcel"
	"logistics/internal/core/domain/model/tracking"
	"logistics/internal/core/ports"
)

type MockParcelRepository struct{ mock.Mock }

func (m *MockParcelRepository) Add(ctx context.Context, p *parcel.Parcel) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockParcelRepository) Update(ctx context.Context, p *parcel.Parcel) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockParcelRepository) Get(ctx context.Context, tn kernel.TrackingNumber) (*parcel.Parcel, error) {
	args := m.Called(ctx, tn)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*parcel.Parcel), args.Error(1)
}

func (m *MockParcelRepository) GetBySender(ctx context.Context, senderID string) ([]*parcel.Parcel, error) {
	args := m.Called(ctx, senderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*parcel.Parcel), args.Error(1)
}

func (m *MockParcelRepository) GetAll(ctx context.Context) ([]*parcel.Parcel, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*parcel.Parcel), args.Error(1)
}

func (m *MockParcelRepository) GetAllInStatus(ctx context.Context, status parcel.Status) ([]*parcel.Parcel, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*parcel.Parcel), args.Error(1)
}

func (m *MockParcelRepository) Delete(ctx context.Context, tn kernel.TrackingNumber) error {
	args := m.Called(ctx, tn)
	return args.Error(0)
}

type MockTrackingEventRepository struct{ mock.Mock }

func (m *MockTrackingEventRepository) Add(ctx context.Context, event *tracking.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockTrackingEventRepository) GetByTrackingNumber(ctx context.Context, tn kernel.TrackingNumber) ([]*tracking.Event, error) {
	args := m.Called(ctx, tn)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*tracking.Event), args.Error(1)
}

func (m *MockTrackingEventRepository) GetLatest(ctx context.Context, tn kernel.TrackingNumber) (*tracking.Event, error) {
	args := m.Called(ctx, tn)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tracking.Event), args.Error(1)
}

func (m *MockTrackingEventRepository) DeleteByTrackingNumber(ctx context.Context, tn kernel.TrackingNumber) error {
	args := m.Called(ctx, tn)
	return args.Error(0)
}

type MockParcelUoW struct{ mock.Mock }

func (m *MockParcelUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockParcelUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockParcelUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockParcelUoW) ParcelRepository() ports.ParcelRepository {
	args := m.Called()
	return args.Get(0).(ports.ParcelRepository)
}

type MockParcelUoWFactory struct{ mock.Mock }

func (m *MockParcelUoWFactory) Create() commands.ParcelUoW {
	args := m.Called()
	return args.Get(0).(commands.ParcelUoW)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) ParcelRepository() ports.ParcelRepository {
	args := m.Called()
	return args.Get(0).(ports.ParcelRepository)
}

func (m *MockUoW) TrackingEventRepository() ports.TrackingEventRepository {
	args := m.Called()
	return args.Get(0).(ports.TrackingEventRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockParcelLocker struct{ mock.Mock }

func (m *MockParcelLocker) Acquire(ctx context.Context, tn kernel.TrackingNumber, ttl time.Duration) (bool, error) {
	args := m.Called(ctx, tn, ttl)
	return args.Bool(0), args.Error(1)
}

func (m *MockParcelLocker) Release(ctx context.Context, tn kernel.TrackingNumber) error {
	args := m.Called(ctx, tn)
	return args.Error(0)
}
