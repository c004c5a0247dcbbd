package kernel

import (
	"fmt"

	"logistics/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrEventIDIsNotConstructed indicates that an EventID was not created
// through NewEventID, EventIDFromString or EventIDFromBytes.
var ErrEventIDIsNotConstructed = errs.NewValueIsRequiredError(
	"EventID must be created via NewEventID, EventIDFromString, or EventIDFromBytes",
)

// EventID is a value object identifying a tracking event. It wraps a
// random UUID; event ids are unique and never reused, and the ordering of
// events comes from their timestamps, not from the id.
//
// The zero value of EventID is invalid and must be constructed using one of
// the factory functions.
type EventID struct {
	id uuid.UUID
}

// NewEventID generates a new random event id.
func NewEventID() EventID {
	return EventID{id: uuid.New()}
}

// EventIDFromString parses an event id from its string representation.
// Used when reconstructing events from persistence.
func EventIDFromString(s string) (EventID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return EventID{}, errs.NewValueIsInvalidErrorWithCause("eventID", fmt.Errorf("invalid UUID format: %w", err))
	}
	newID := EventID{id: id}
	if err = newID.Validate(); err != nil {
		return EventID{}, err
	}
	return newID, nil
}

// EventIDFromBytes creates an event id from a 16-byte slice.
// Used when events are stored with binary ids.
func EventIDFromBytes(b []byte) (EventID, error) {
	id, err := uuid.FromBytes(b)
	if err != nil {
		return EventID{}, errs.NewValueIsInvalidErrorWithCause("eventID", fmt.Errorf("invalid UUID format: %w", err))
	}
	newID := EventID{id: id}
	if err = newID.Validate(); err != nil {
		return EventID{}, err
	}
	return newID, nil
}

// String returns the standard UUID string representation of the event id.
func (e EventID) String() string {
	return e.id.String()
}

// Bytes returns the underlying UUID value.
func (e EventID) Bytes() uuid.UUID {
	return e.id
}

// IsEqual compares two event ids for equality.
func (e EventID) IsEqual(other EventID) bool {
	return e.id == other.id
}

// Validate checks that the event id was properly constructed.
// Returns ErrEventIDIsNotConstructed for the zero value.
func (e EventID) Validate() error {
	if e.id == uuid.Nil {
		return ErrEventIDIsNotConstructed
	}
	return nil
}
