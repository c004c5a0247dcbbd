package commands

import (
	"errors"

	"logistics/internal/core/domain/model/actor"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/parcel"
	"logistics/internal/pkg/guard"
)

var ErrChangeParcelStatusCommandIsNotConstructed = errors.New(
	"ChangeParcelStatusCommand must be created via NewChangeParcelStatusCommand constructor",
)

// ChangeParcelStatusCommand represents a request to move a parcel to a new
// status on behalf of an actor. Location, vehicle, warehouse and notes are
// optional metadata recorded on the resulting tracking event.
//
// Example:
//
//	a, _ := actor.NewActor(actor.Driver, "driver.jones")
//	cmd, err := NewChangeParcelStatusCommand(tn, a, parcel.InTransit, "Hub Berlin", "VH-42", "", "left the hub")
//	if err != nil {
//	    return err
//	}
//
//	handler := NewChangeParcelStatusCommandHandler(uowFactory, locker)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    // PermissionDenied, InvalidTransition, ErrParcelBusy or persistence failure
//	    return err
//	}
type ChangeParcelStatusCommand struct { //nolint:recvcheck //using for validation
	trackingNumber kernel.TrackingNumber
	actor          actor.Actor
	newStatus      parcel.Status

	location    string
	vehicleID   string
	warehouseID string
	notes       string

	guard guard.ConstructorGuard
}

// NewChangeParcelStatusCommand creates a command to change a parcel's status.
// Validates the tracking number, the actor and the target status. The role
// gate and state-machine rules are enforced later by the aggregate, not here.
func NewChangeParcelStatusCommand(
	trackingNumber kernel.TrackingNumber,
	a actor.Actor,
	newStatus parcel.Status,
	location string,
	vehicleID string,
	warehouseID string,
	notes string,
) (ChangeParcelStatusCommand, error) {
	cmd := ChangeParcelStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setTrackingNumber(trackingNumber),
		cmd.setActor(a),
		cmd.setNewStatus(newStatus),
	); err != nil {
		return ChangeParcelStatusCommand{}, err
	}

	cmd.location = location
	cmd.vehicleID = vehicleID
	cmd.warehouseID = warehouseID
	cmd.notes = notes

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeParcelStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeParcelStatusCommandIsNotConstructed)
}

// TrackingNumber returns the tracking number of the parcel.
func (c ChangeParcelStatusCommand) TrackingNumber() kernel.TrackingNumber {
	return c.trackingNumber
}

// Actor returns the identity performing the status change.
func (c ChangeParcelStatusCommand) Actor() actor.Actor {
	return c.actor
}

// NewStatus returns the target status.
func (c ChangeParcelStatusCommand) NewStatus() parcel.Status {
	return c.newStatus
}

// Location returns the optional free-text location of the change.
func (c ChangeParcelStatusCommand) Location() string {
	return c.location
}

// VehicleID returns the optional vehicle identifier.
func (c ChangeParcelStatusCommand) VehicleID() string {
	return c.vehicleID
}

// WarehouseID returns the optional warehouse identifier.
func (c ChangeParcelStatusCommand) WarehouseID() string {
	return c.warehouseID
}

// Notes returns the optional free-text notes.
func (c ChangeParcelStatusCommand) Notes() string {
	return c.notes
}

func (c *ChangeParcelStatusCommand) setTrackingNumber(trackingNumber kernel.TrackingNumber) error {
	if err := trackingNumber.Validate(); err != nil {
		return err
	}

	c.trackingNumber = trackingNumber
	return nil
}

func (c *ChangeParcelStatusCommand) setActor(a actor.Actor) error {
	if err := a.Validate(); err != nil {
		return err
	}

	c.actor = a
	return nil
}

func (c *ChangeParcelStatusCommand) setNewStatus(newStatus parcel.Status) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}

	c.newStatus = newStatus
	return nil
}
