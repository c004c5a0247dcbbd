package queries

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/actor"
	"logistics/internal/pkg/guard"
)

var (
	ErrGetMonthlyReportQueryIsNotConstructed = errors.New(
		"GetMonthlyReportQuery must be created via NewGetMonthlyReportQuery constructor",
	)
	ErrCustomerIDIsRequired = errors.New("customer id is required")
)

// GetMonthlyReportQuery retrieves a customer's shipping cost report for one
// calendar month. Customer actors may only request their own report.
//
// Example:
//
//	a, _ := actor.NewActor(actor.Staff, "staff.smith")
//	query, _ := NewGetMonthlyReportQuery(a, "cust-1", "2024-03")
//	handler := NewGetMonthlyReportQueryHandler(db, engine)
//
//	report, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to build report: %w", err)
//	}
//	fmt.Printf("%d parcels, %.2f total\n", report.ParcelCount, report.TotalCost)
type GetMonthlyReportQuery struct {
	actor      actor.Actor
	customerID string
	yearMonth  string

	guard guard.ConstructorGuard
}

// NewGetMonthlyReportQuery creates a query for a monthly cost report.
// yearMonth uses the "2006-01" layout.
func NewGetMonthlyReportQuery(a actor.Actor, customerID string, yearMonth string) (GetMonthlyReportQuery, error) {
	if err := a.Validate(); err != nil {
		return GetMonthlyReportQuery{}, err
	}
	if customerID == "" {
		return GetMonthlyReportQuery{}, ErrCustomerIDIsRequired
	}
	if _, err := time.Parse("2006-01", yearMonth); err != nil {
		return GetMonthlyReportQuery{}, err
	}

	return GetMonthlyReportQuery{
		actor:      a,
		customerID: customerID,
		yearMonth:  yearMonth,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetMonthlyReportQuery) Validate() error {
	return q.guard.Validate(ErrGetMonthlyReportQueryIsNotConstructed)
}

// Actor returns the identity requesting the report.
func (q GetMonthlyReportQuery) Actor() actor.Actor {
	return q.actor
}

// CustomerID returns the customer the report is about.
func (q GetMonthlyReportQuery) CustomerID() string {
	return q.customerID
}

// YearMonth returns the requested month in "2006-01" layout.
func (q GetMonthlyReportQuery) YearMonth() string {
	return q.yearMonth
}
