package queries

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/parcel"
	"logistics/internal/pkg/guard"
)

var ErrGetCurrentStatusQueryIsNotConstructed = errors.New(
	"GetCurrentStatusQuery must be created via NewGetCurrentStatusQuery constructor",
)

// GetCurrentStatusQuery retrieves the latest tracking event of a parcel.
// Fails with an object-not-found error when the parcel has no events yet.
type GetCurrentStatusQuery struct {
	trackingNumber kernel.TrackingNumber

	guard guard.ConstructorGuard
}

// NewGetCurrentStatusQuery creates a query for a parcel's latest event.
func NewGetCurrentStatusQuery(trackingNumber kernel.TrackingNumber) (GetCurrentStatusQuery, error) {
	if err := trackingNumber.Validate(); err != nil {
		return GetCurrentStatusQuery{}, err
	}

	return GetCurrentStatusQuery{
		trackingNumber: trackingNumber,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCurrentStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetCurrentStatusQueryIsNotConstructed)
}

// TrackingNumber returns the tracking number whose status is requested.
func (q GetCurrentStatusQuery) TrackingNumber() kernel.TrackingNumber {
	return q.trackingNumber
}

// GetCurrentStatusQueryResponse represents the latest recorded position of
// a parcel: the status, where it was seen, accompanying notes and when.
type GetCurrentStatusQueryResponse struct {
	Status    parcel.Status
	Location  string
	Notes     string
	Timestamp time.Time
}
