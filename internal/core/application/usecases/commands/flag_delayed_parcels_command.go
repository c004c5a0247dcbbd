package commands

import (
	"errors"
	"time"

	"logistics/internal/pkg/guard"
)

var (
	ErrFlagDelayedParcelsCommandIsNotConstructed = errors.New(
		"FlagDelayedParcelsCommand must be created via NewFlagDelayedParcelsCommand constructor",
	)
	ErrThresholdIsInvalid = errors.New("threshold must be greater than 0")
)

// FlagDelayedParcelsCommand represents a request to mark in-transit parcels
// as delayed when their latest tracking event is older than a threshold.
// Issued periodically by the delayed-parcel watch job.
type FlagDelayedParcelsCommand struct { //nolint:recvcheck //using for validation
	olderThan time.Duration

	guard guard.ConstructorGuard
}

// NewFlagDelayedParcelsCommand creates a command to flag stale in-transit
// parcels. olderThan is the silence threshold after which a parcel counts
// as delayed.
func NewFlagDelayedParcelsCommand(olderThan time.Duration) (FlagDelayedParcelsCommand, error) {
	if olderThan <= 0 {
		return FlagDelayedParcelsCommand{}, ErrThresholdIsInvalid
	}

	return FlagDelayedParcelsCommand{
		olderThan: olderThan,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c FlagDelayedParcelsCommand) Validate() error {
	return c.guard.Validate(ErrFlagDelayedParcelsCommandIsNotConstructed)
}

// OlderThan returns the silence threshold.
func (c FlagDelayedParcelsCommand) OlderThan() time.Duration {
	return c.olderThan
}
