package ports

import (
	"context"
	"time"

	"logistics/internal/core/domain/model/kernel"
)

// ParcelLocker serializes status mutations per tracking number across
// application instances. The lock is advisory and expires after the given
// TTL so that a crashed holder cannot block a parcel forever.
type ParcelLocker interface {
	// Acquire attempts to take the lock for the given tracking number.
	// Returns false when the lock is already held by someone else.
	Acquire(ctx context.Context, trackingNumber kernel.TrackingNumber, ttl time.Duration) (bool, error)

	// Release frees the lock for the given tracking number.
	Release(ctx context.Context, trackingNumber kernel.TrackingNumber) error
}
