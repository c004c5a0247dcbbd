package queries_test

import (
	"context"
	"testing"
	"time"

	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/parcel"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

type GetCurrentStatusQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetCurrentStatusQueryHandler
}

func (suite *GetCurrentStatusQueryHandlerTestSuite) SetupSuite() {
	suite.container, suite.db = startParcelDatabase(&suite.Suite)
	suite.handler = queries.NewGetCurrentStatusQueryHandler(suite.db)
}

func (suite *GetCurrentStatusQueryHandlerTestSuite) TearDownSuite() {
	stopParcelDatabase(&suite.Suite, suite.container)
}

func (suite *GetCurrentStatusQueryHandlerTestSuite) SetupTest() {
	truncateParcelTables(&suite.Suite, suite.db)
}

func (suite *GetCurrentStatusQueryHandlerTestSuite) TestHandle_ReturnsLatestEvent() {
	tn := kernel.NewTrackingNumber(time.Now())
	base := time.Date(2026, 3, 15, 9, 0, 0, 0, time.UTC)

	seedEvent(&suite.Suite, suite.db, tn, parcel.Pickup, base)
	seedEvent(&suite.Suite, suite.db, tn, parcel.InTransit, base.Add(1*time.Hour))

	query, err := queries.NewGetCurrentStatusQuery(tn)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal(parcel.InTransit, result.Status)
	suite.Equal("Hub A", result.Location)
	suite.Equal("scanned", result.Notes)
	suite.True(base.Add(1 * time.Hour).Equal(result.Timestamp.UTC()))
}

func (suite *GetCurrentStatusQueryHandlerTestSuite) TestHandle_NoEvents_ReturnsNotFoundError() {
	query, err := queries.NewGetCurrentStatusQuery(kernel.NewTrackingNumber(time.Now()))
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(context.Background(), query)

	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *GetCurrentStatusQueryHandlerTestSuite) TestHandle_IgnoresOtherParcels() {
	tn := kernel.NewTrackingNumber(time.Now())
	other := kernel.NewTrackingNumber(time.Now())

	seedEvent(&suite.Suite, suite.db, other, parcel.Delivered, time.Now().UTC())

	query, err := queries.NewGetCurrentStatusQuery(tn)
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(context.Background(), query)

	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *GetCurrentStatusQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetCurrentStatusQuery{}

	_, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Contains(err.Error(), "must be created via NewGetCurrentStatusQuery constructor")
}

func TestGetCurrentStatusQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetCurrentStatusQueryHandlerTestSuite))
}
