// Package redislock implements the ParcelLocker port on top of Redis.
// A lock is a SETNX key with a TTL, so a crashed holder releases the
// parcel automatically once the TTL expires.
package redislock

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/ports"
)

// RedisParcelLocker serializes status mutations per tracking number
// across application instances.
type RedisParcelLocker struct {
	client *redis.Client
}

var _ ports.ParcelLocker = &RedisParcelLocker{}

// NewRedisParcelLocker creates a locker backed by the given Redis client.
func NewRedisParcelLocker(client *redis.Client) *RedisParcelLocker {
	return &RedisParcelLocker{client: client}
}

// Acquire attempts to take the lock for the given tracking number.
// Returns true if the lock was acquired, false if already held.
func (l *RedisParcelLocker) Acquire(
	ctx context.Context,
	trackingNumber kernel.TrackingNumber,
	ttl time.Duration,
) (bool, error) {
	ok, err := l.client.SetNX(ctx, lockKey(trackingNumber), "1", ttl).Result()
	if err != nil {
		return false, err
	}

	return ok, nil
}

// Release frees the lock for the given tracking number.
func (l *RedisParcelLocker) Release(ctx context.Context, trackingNumber kernel.TrackingNumber) error {
	return l.client.Del(ctx, lockKey(trackingNumber)).Err()
}

func lockKey(trackingNumber kernel.TrackingNumber) string {
	return fmt.Sprintf("lock:parcel:%s", trackingNumber.String())
}
