package ports

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/parcel"
)

// ErrTrackingNumberTaken marks an Add that failed because the tracking
// number already exists. Callers may generate a fresh number and retry.
var ErrTrackingNumberTaken = errors.New("tracking number is already taken")

// ParcelRepository defines the persistence contract for parcel aggregates.
// Provides methods for storing, retrieving, and querying parcels by
// tracking number, sender and status.
type ParcelRepository interface {
	// Add persists a new parcel aggregate to storage.
	// The parcel must be valid and its tracking number must not already
	// exist in the repository.
	Add(ctx context.Context, aggregate *parcel.Parcel) error

	// Update persists changes to an existing parcel aggregate.
	// The parcel must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *parcel.Parcel) error

	// Get retrieves a parcel aggregate by its tracking number.
	Get(ctx context.Context, trackingNumber kernel.TrackingNumber) (*parcel.Parcel, error)

	// GetBySender retrieves all parcels sent by the given customer.
	GetBySender(ctx context.Context, senderID string) ([]*parcel.Parcel, error)

	// GetAll retrieves every parcel in the repository.
	GetAll(ctx context.Context) ([]*parcel.Parcel, error)

	// GetAllInStatus retrieves all parcels currently in the given status.
	// Used by the delayed-parcel watch job to find in-transit parcels.
	GetAllInStatus(ctx context.Context, status parcel.Status) ([]*parcel.Parcel, error)

	// Delete removes a parcel aggregate from storage.
	Delete(ctx context.Context, trackingNumber kernel.TrackingNumber) error
}
