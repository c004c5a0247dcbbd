// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrCalculateCostQueryIsNotConstructed = errors.New(
	"CalculateCostQuery must be created via NewCalculateCostQuery constructor",
)

// CalculateCostQuery retrieves the shipping cost breakdown for a parcel.
// The calculation itself is deterministic; the query merely loads the
// parcel snapshot and delegates to the pricing engine.
//
// Example:
//
//	query, _ := NewCalculateCostQuery(tn)
//	handler := NewCalculateCostQueryHandler(db, engine)
//
//	breakdown, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to price parcel: %w", err)
//	}
//	fmt.Printf("total: %.2f\n", breakdown.Total)
type CalculateCostQuery struct {
	trackingNumber kernel.TrackingNumber

	guard guard.ConstructorGuard
}

// NewCalculateCostQuery creates a query to price the parcel with the given
// tracking number.
func NewCalculateCostQuery(trackingNumber kernel.TrackingNumber) (CalculateCostQuery, error) {
	if err := trackingNumber.Validate(); err != nil {
		return CalculateCostQuery{}, err
	}

	return CalculateCostQuery{
		trackingNumber: trackingNumber,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q CalculateCostQuery) Validate() error {
	return q.guard.Validate(ErrCalculateCostQueryIsNotConstructed)
}

// TrackingNumber returns the tracking number of the parcel to price.
func (q CalculateCostQuery) TrackingNumber() kernel.TrackingNumber {
	return q.trackingNumber
}
