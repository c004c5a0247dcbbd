// Package tracking provides the immutable tracking-event entity recording
// each status change of a parcel. Events are append-only: they are created,
// persisted and read, never updated or deleted, and the parcel's current
// status always equals the status of its most recent event.
package tracking

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/parcel"
	"logistics/internal/pkg/errs"
)

var (
	// ErrEventIsNotConstructed is returned when an Event instance was not
	// created through the NewEvent or RestoreEvent factory methods.
	ErrEventIsNotConstructed = errors.New("Event must be created via NewEvent constructor")
)

// Event records one status change of a parcel: the status value at the time
// of the event, where it happened, which vehicle or warehouse was involved,
// who performed it and when. Events are immutable once constructed.
type Event struct {
	id             kernel.EventID
	trackingNumber kernel.TrackingNumber
	status         parcel.Status

	location    string
	vehicleID   string
	warehouseID string
	operator    string
	notes       string
	timestamp   time.Time

	isConstructed bool
}

// NewEvent creates a tracking event for a status change.
// Location, vehicleID, warehouseID and notes are optional free text;
// operator is the username of the acting identity and is required.
func NewEvent(
	id kernel.EventID,
	trackingNumber kernel.TrackingNumber,
	status parcel.Status,
	location string,
	vehicleID string,
	warehouseID string,
	operator string,
	notes string,
	timestamp time.Time,
) (*Event, error) {
	if err := errors.Join(
		id.Validate(),
		trackingNumber.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}
	if operator == "" {
		return nil, errs.NewValueIsRequiredError("operator")
	}
	if timestamp.IsZero() {
		return nil, errs.NewValueIsRequiredError("timestamp")
	}

	return &Event{
		id:             id,
		trackingNumber: trackingNumber,
		status:         status,
		location:       location,
		vehicleID:      vehicleID,
		warehouseID:    warehouseID,
		operator:       operator,
		notes:          notes,
		timestamp:      timestamp,
		isConstructed:  true,
	}, nil
}

// RestoreEvent reconstructs an event from persistence.
func RestoreEvent(
	id kernel.EventID,
	trackingNumber kernel.TrackingNumber,
	status parcel.Status,
	location string,
	vehicleID string,
	warehouseID string,
	operator string,
	notes string,
	timestamp time.Time,
) (*Event, error) {
	return NewEvent(id, trackingNumber, status, location, vehicleID, warehouseID, operator, notes, timestamp)
}

// Validate ensures the Event instance was properly constructed.
func (e *Event) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrEventIsNotConstructed
	}
	return nil
}

// ID returns the event's unique identifier.
func (e *Event) ID() kernel.EventID {
	return e.id
}

// TrackingNumber returns the tracking number of the parcel the event
// belongs to.
func (e *Event) TrackingNumber() kernel.TrackingNumber {
	return e.trackingNumber
}

// Status returns the parcel status recorded by the event.
func (e *Event) Status() parcel.Status {
	return e.status
}

// Location returns the free-text location of the event.
func (e *Event) Location() string {
	return e.location
}

// VehicleID returns the optional vehicle identifier.
func (e *Event) VehicleID() string {
	return e.vehicleID
}

// WarehouseID returns the optional warehouse identifier.
func (e *Event) WarehouseID() string {
	return e.warehouseID
}

// Operator returns the username of the actor who produced the event.
func (e *Event) Operator() string {
	return e.operator
}

// Notes returns the free-text notes of the event.
func (e *Event) Notes() string {
	return e.notes
}

// Timestamp returns when the event happened. Event ordering is defined by
// this timestamp.
func (e *Event) Timestamp() time.Time {
	return e.timestamp
}
