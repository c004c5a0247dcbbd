package eventrepo_test

import (
	"context"
	"testing"
	"time"

	"logistics/internal/adapters/out/postgres/eventrepo"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/parcel"
	"logistics/internal/core/domain/model/tracking"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id string, aggregate interface{}) {
	m.Called(id, aggregate)
}

// TrackingEventRepositoryIntegrationTestSuite provides integration tests for
// TrackingEventRepository using PostgreSQL containers.
type TrackingEventRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *eventrepo.GormTrackingEventRepository
	tracker    *MockAggregateTracker
}

func (suite *TrackingEventRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&eventrepo.EventDTO{}))
}

func (suite *TrackingEventRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE tracking_events").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = eventrepo.NewGormTrackingEventRepository(suite.db, suite.tracker)
}

func (suite *TrackingEventRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *TrackingEventRepositoryIntegrationTestSuite) TestAdd_ValidEvent_Success() {
	ctx := context.Background()

	tn := kernel.NewTrackingNumber(time.Now())
	event := suite.createTestEvent(tn, parcel.Pickup, time.Now().UTC())
	suite.tracker.On("TrackAggregate", event.ID().String(), event).Once()

	err := suite.repository.Add(ctx, event)
	suite.Require().NoError(err)

	suite.assertEventCount(1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *TrackingEventRepositoryIntegrationTestSuite) TestGetByTrackingNumber_MostRecentFirst() {
	ctx := context.Background()

	tn := kernel.NewTrackingNumber(time.Now())
	base := time.Date(2026, 3, 15, 9, 0, 0, 0, time.UTC)

	suite.tracker.On("TrackAggregate", mock.AnythingOfType("string"), mock.Anything).Times(3)

	// Appended out of chronological order to verify the read side sorts.
	middle := suite.createTestEvent(tn, parcel.InTransit, base.Add(1*time.Hour))
	oldest := suite.createTestEvent(tn, parcel.Pickup, base)
	newest := suite.createTestEvent(tn, parcel.OutForDelivery, base.Add(2*time.Hour))

	for _, event := range []*tracking.Event{middle, oldest, newest} {
		suite.Require().NoError(suite.repository.Add(ctx, event))
	}

	events, err := suite.repository.GetByTrackingNumber(ctx, tn)
	suite.Require().NoError(err)
	suite.Require().Len(events, 3)

	suite.Equal(parcel.OutForDelivery, events[0].Status())
	suite.Equal(parcel.InTransit, events[1].Status())
	suite.Equal(parcel.Pickup, events[2].Status())
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *TrackingEventRepositoryIntegrationTestSuite) TestGetByTrackingNumber_NoEvents_ReturnsEmptySlice() {
	ctx := context.Background()

	events, err := suite.repository.GetByTrackingNumber(ctx, kernel.NewTrackingNumber(time.Now()))
	suite.Require().NoError(err)
	suite.NotNil(events)
	suite.Empty(events)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *TrackingEventRepositoryIntegrationTestSuite) TestGetByTrackingNumber_FiltersOtherParcels() {
	ctx := context.Background()

	tn := kernel.NewTrackingNumber(time.Now())
	other := kernel.NewTrackingNumber(time.Now())

	suite.tracker.On("TrackAggregate", mock.AnythingOfType("string"), mock.Anything).Times(2)

	mine := suite.createTestEvent(tn, parcel.Pickup, time.Now().UTC())
	notMine := suite.createTestEvent(other, parcel.Delivered, time.Now().UTC())

	suite.Require().NoError(suite.repository.Add(ctx, mine))
	suite.Require().NoError(suite.repository.Add(ctx, notMine))

	events, err := suite.repository.GetByTrackingNumber(ctx, tn)
	suite.Require().NoError(err)
	suite.Require().Len(events, 1)
	suite.True(mine.ID().IsEqual(events[0].ID()))
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *TrackingEventRepositoryIntegrationTestSuite) TestGetLatest_ReturnsNewestEvent() {
	ctx := context.Background()

	tn := kernel.NewTrackingNumber(time.Now())
	base := time.Date(2026, 3, 15, 9, 0, 0, 0, time.UTC)

	suite.tracker.On("TrackAggregate", mock.AnythingOfType("string"), mock.Anything).Times(2)

	older := suite.createTestEvent(tn, parcel.Pickup, base)
	newer := suite.createTestEvent(tn, parcel.InTransit, base.Add(1*time.Hour))

	suite.Require().NoError(suite.repository.Add(ctx, older))
	suite.Require().NoError(suite.repository.Add(ctx, newer))

	latest, err := suite.repository.GetLatest(ctx, tn)
	suite.Require().NoError(err)
	suite.Equal(parcel.InTransit, latest.Status())
	suite.True(newer.ID().IsEqual(latest.ID()))
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *TrackingEventRepositoryIntegrationTestSuite) TestGetLatest_NoEvents_ReturnsNotFoundError() {
	ctx := context.Background()

	latest, err := suite.repository.GetLatest(ctx, kernel.NewTrackingNumber(time.Now()))
	suite.Nil(latest)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *TrackingEventRepositoryIntegrationTestSuite) TestDeleteByTrackingNumber_RemovesOnlyMatching() {
	ctx := context.Background()

	tn := kernel.NewTrackingNumber(time.Now())
	other := kernel.NewTrackingNumber(time.Now())

	suite.tracker.On("TrackAggregate", mock.AnythingOfType("string"), mock.Anything).Times(3)

	for _, event := range []*tracking.Event{
		suite.createTestEvent(tn, parcel.Pickup, time.Now().UTC()),
		suite.createTestEvent(tn, parcel.InTransit, time.Now().UTC()),
		suite.createTestEvent(other, parcel.Pickup, time.Now().UTC()),
	} {
		suite.Require().NoError(suite.repository.Add(ctx, event))
	}

	suite.Require().NoError(suite.repository.DeleteByTrackingNumber(ctx, tn))
	suite.assertEventCount(1)

	// Deleting an empty trail is not an error.
	suite.Require().NoError(suite.repository.DeleteByTrackingNumber(ctx, tn))
	suite.tracker.AssertExpectations(suite.T())
}

// createTestEvent creates a test tracking event for the given parcel and status.
func (suite *TrackingEventRepositoryIntegrationTestSuite) createTestEvent(
	tn kernel.TrackingNumber, status parcel.Status, timestamp time.Time,
) *tracking.Event {
	event, err := tracking.NewEvent(
		kernel.NewEventID(), tn, status,
		"Hub A", "VAN-12", "WH-1", "operator-1", "scanned", timestamp,
	)
	suite.Require().NoError(err)
	return event
}

// assertEventCount verifies the number of events in the database.
func (suite *TrackingEventRepositoryIntegrationTestSuite) assertEventCount(expected int) {
	var count int64
	err := suite.db.Model(&eventrepo.EventDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

func TestTrackingEventRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(TrackingEventRepositoryIntegrationTestSuite))
}
