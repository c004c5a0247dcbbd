package queries

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/parcel"
	"logistics/internal/pkg/guard"
)

var ErrGetTrackingHistoryQueryIsNotConstructed = errors.New(
	"GetTrackingHistoryQuery must be created via NewGetTrackingHistoryQuery constructor",
)

// GetTrackingHistoryQuery retrieves the full event trail of a parcel,
// most recent first. A parcel without recorded events yields an empty
// list, not an error.
//
// Example:
//
//	query, _ := NewGetTrackingHistoryQuery(tn)
//	handler := NewGetTrackingHistoryQueryHandler(db)
//
//	events, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get history: %w", err)
//	}
//	fmt.Printf("%d events recorded\n", len(events))
type GetTrackingHistoryQuery struct {
	trackingNumber kernel.TrackingNumber

	guard guard.ConstructorGuard
}

// NewGetTrackingHistoryQuery creates a query for a parcel's event trail.
func NewGetTrackingHistoryQuery(trackingNumber kernel.TrackingNumber) (GetTrackingHistoryQuery, error) {
	if err := trackingNumber.Validate(); err != nil {
		return GetTrackingHistoryQuery{}, err
	}

	return GetTrackingHistoryQuery{
		trackingNumber: trackingNumber,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetTrackingHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetTrackingHistoryQueryIsNotConstructed)
}

// TrackingNumber returns the tracking number whose trail is requested.
func (q GetTrackingHistoryQuery) TrackingNumber() kernel.TrackingNumber {
	return q.trackingNumber
}

// GetTrackingHistoryQueryResponse represents one tracking event in the trail.
type GetTrackingHistoryQueryResponse struct {
	ID          kernel.EventID
	Status      parcel.Status
	Location    string
	VehicleID   string
	WarehouseID string
	Operator    string
	Notes       string
	Timestamp   time.Time
}
