// Package eventrepo provides data transfer objects and mapping functions for
// tracking-event persistence. The event trail is append-only, so the
// repository exposes no update operation.
package eventrepo

import (
	"time"

	"github.com/google/uuid"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/parcel"
	"logistics/internal/core/domain/model/tracking"
)

// EventDTO represents the database structure for persisting tracking events.
// Tracking number and timestamp are indexed because the trail is always read
// per parcel in timestamp order.
type EventDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	TrackingNumber string    `gorm:"index;size:19"`
	Status         int
	Location       string
	VehicleID      string
	WarehouseID    string
	Operator       string
	Notes          string
	Timestamp      time.Time `gorm:"index"`
}

// TableName specifies the database table name for tracking events.
// Overrides GORM's default naming convention to use "tracking_events".
func (EventDTO) TableName() string {
	return "tracking_events"
}

// fromDomain converts a tracking event to its database representation.
func fromDomain(event *tracking.Event) EventDTO {
	return EventDTO{
		ID:             event.ID().Bytes(),
		TrackingNumber: event.TrackingNumber().String(),
		Status:         int(event.Status()),
		Location:       event.Location(),
		VehicleID:      event.VehicleID(),
		WarehouseID:    event.WarehouseID(),
		Operator:       event.Operator(),
		Notes:          event.Notes(),
		Timestamp:      event.Timestamp(),
	}
}

// toDomain converts a database DTO to a tracking event using RestoreEvent.
func toDomain(dto EventDTO) (*tracking.Event, error) {
	id, err := kernel.EventIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	trackingNumber, err := kernel.TrackingNumberFromString(dto.TrackingNumber)
	if err != nil {
		return nil, err
	}

	return tracking.RestoreEvent(
		id,
		trackingNumber,
		parcel.Status(dto.Status),
		dto.Location,
		dto.VehicleID,
		dto.WarehouseID,
		dto.Operator,
		dto.Notes,
		dto.Timestamp,
	)
}
