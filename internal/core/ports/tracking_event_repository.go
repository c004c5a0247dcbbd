package ports

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/tracking"
)

// TrackingEventRepository defines the persistence contract for the
// append-only tracking-event trail. Events are only ever added and read.
type TrackingEventRepository interface {
	// Add appends a new tracking event to storage.
	Add(ctx context.Context, event *tracking.Event) error

	// GetByTrackingNumber retrieves the full event trail of a parcel,
	// most recent first. An empty slice is returned when the parcel has
	// no events.
	GetByTrackingNumber(ctx context.Context, trackingNumber kernel.TrackingNumber) ([]*tracking.Event, error)

	// GetLatest retrieves the most recent event of a parcel.
	GetLatest(ctx context.Context, trackingNumber kernel.TrackingNumber) (*tracking.Event, error)

	// DeleteByTrackingNumber removes the full event trail of a parcel.
	// Used only when the parcel itself is deleted.
	DeleteByTrackingNumber(ctx context.Context, trackingNumber kernel.TrackingNumber) error
}
