package queries_test

import (
	"context"
	"testing"
	"time"

	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/actor"
	"logistics/internal/core/domain/model/parcel"
	"logistics/internal/core/domain/services/pricing"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

type GetMonthlyReportQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetMonthlyReportQueryHandler
}

func (suite *GetMonthlyReportQueryHandlerTestSuite) SetupSuite() {
	suite.container, suite.db = startParcelDatabase(&suite.Suite)

	engine, err := pricing.NewPricingEngine(pricing.DefaultRules())
	suite.Require().NoError(err)

	suite.handler = queries.NewGetMonthlyReportQueryHandler(suite.db, engine)
}

func (suite *GetMonthlyReportQueryHandlerTestSuite) TearDownSuite() {
	stopParcelDatabase(&suite.Suite, suite.container)
}

func (suite *GetMonthlyReportQueryHandlerTestSuite) SetupTest() {
	truncateParcelTables(&suite.Suite, suite.db)
}

func (suite *GetMonthlyReportQueryHandlerTestSuite) TestHandle_FiltersByCustomerAndMonth() {
	march := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	april := time.Date(2026, 4, 2, 9, 0, 0, 0, time.UTC)

	inMarch := newStoredParcelAt(&suite.Suite, "cust-1", parcel.Delivered, march)
	alsoInMarch := newStoredParcelAt(&suite.Suite, "cust-1", parcel.InTransit, march.Add(48*time.Hour))
	inApril := newStoredParcelAt(&suite.Suite, "cust-1", parcel.Created, april)
	otherCustomer := newStoredParcelAt(&suite.Suite, "cust-2", parcel.Delivered, march)

	for _, p := range []*parcel.Parcel{inMarch, alsoInMarch, inApril, otherCustomer} {
		seedParcel(&suite.Suite, suite.db, p)
	}

	query := suite.newQuery(actor.Staff, "ops-1", "cust-1", "2026-03")

	report, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal("cust-1", report.CustomerID)
	suite.Equal("2026-03", report.Month)
	suite.Equal(2, report.ParcelCount)
	suite.Require().Len(report.Parcels, 2)
	suite.InDelta(125.0, report.TotalCost, 1e-9)
	for _, cost := range report.Parcels {
		suite.InDelta(62.5, cost.Breakdown.Total, 1e-9)
	}
}

func (suite *GetMonthlyReportQueryHandlerTestSuite) TestHandle_NoParcels_ReturnsEmptyReport() {
	query := suite.newQuery(actor.Staff, "ops-1", "cust-1", "2026-03")

	report, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal(0, report.ParcelCount)
	suite.NotNil(report.Parcels)
	suite.Empty(report.Parcels)
	suite.InDelta(0.0, report.TotalCost, 1e-9)
}

func (suite *GetMonthlyReportQueryHandlerTestSuite) TestHandle_CustomerReadsOwnReport() {
	march := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	seedParcel(&suite.Suite, suite.db, newStoredParcelAt(&suite.Suite, "cust-1", parcel.Delivered, march))

	query := suite.newQuery(actor.Customer, "cust-1", "cust-1", "2026-03")

	report, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal(1, report.ParcelCount)
}

func (suite *GetMonthlyReportQueryHandlerTestSuite) TestHandle_CustomerReadsAnotherCustomersReport_Denied() {
	query := suite.newQuery(actor.Customer, "cust-1", "cust-2", "2026-03")

	_, err := suite.handler.Handle(context.Background(), query)

	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrPermissionDenied)
}

func (suite *GetMonthlyReportQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetMonthlyReportQuery{}

	_, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Contains(err.Error(), "must be created via NewGetMonthlyReportQuery constructor")
}

func (suite *GetMonthlyReportQueryHandlerTestSuite) newQuery(
	role actor.Role, username, customerID, yearMonth string,
) queries.GetMonthlyReportQuery {
	a, err := actor.NewActor(role, username)
	suite.Require().NoError(err)

	query, err := queries.NewGetMonthlyReportQuery(a, customerID, yearMonth)
	suite.Require().NoError(err)
	return query
}

func TestGetMonthlyReportQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetMonthlyReportQueryHandlerTestSuite))
}
