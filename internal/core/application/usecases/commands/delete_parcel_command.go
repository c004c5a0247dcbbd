package commands

import (
	"errors"

	"logistics/internal/core/domain/model/actor"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrDeleteParcelCommandIsNotConstructed = errors.New(
	"DeleteParcelCommand must be created via NewDeleteParcelCommand constructor",
)

// DeleteParcelCommand represents a request to remove a parcel and its event
// trail. Only administrative and staff actors may delete parcels.
type DeleteParcelCommand struct { //nolint:recvcheck //using for validation
	trackingNumber kernel.TrackingNumber
	actor          actor.Actor

	guard guard.ConstructorGuard
}

// NewDeleteParcelCommand creates a command to delete a parcel.
func NewDeleteParcelCommand(
	trackingNumber kernel.TrackingNumber,
	a actor.Actor,
) (DeleteParcelCommand, error) {
	cmd := DeleteParcelCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setTrackingNumber(trackingNumber),
		cmd.setActor(a),
	); err != nil {
		return DeleteParcelCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteParcelCommand) Validate() error {
	return c.guard.Validate(ErrDeleteParcelCommandIsNotConstructed)
}

// TrackingNumber returns the tracking number of the parcel to delete.
func (c DeleteParcelCommand) TrackingNumber() kernel.TrackingNumber {
	return c.trackingNumber
}

// Actor returns the identity requesting the deletion.
func (c DeleteParcelCommand) Actor() actor.Actor {
	return c.actor
}

func (c *DeleteParcelCommand) setTrackingNumber(trackingNumber kernel.TrackingNumber) error {
	if err := trackingNumber.Validate(); err != nil {
		return err
	}

	c.trackingNumber = trackingNumber
	return nil
}

func (c *DeleteParcelCommand) setActor(a actor.Actor) error {
	if err := a.Validate(); err != nil {
		return err
	}

	c.actor = a
	return nil
}
