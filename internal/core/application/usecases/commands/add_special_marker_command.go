package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/parcel"
	"logistics/internal/pkg/guard"
)

var ErrAddSpecialMarkerCommandIsNotConstructed = errors.New(
	"AddSpecialMarkerCommand must be created via NewAddSpecialMarkerCommand constructor",
)

// AddSpecialMarkerCommand represents a request to attach a special handling
// marker to a parcel. Markers have set semantics: adding one twice is a no-op.
type AddSpecialMarkerCommand struct { //nolint:recvcheck //using for validation
	trackingNumber kernel.TrackingNumber
	marker         parcel.SpecialMarker

	guard guard.ConstructorGuard
}

// NewAddSpecialMarkerCommand creates a command to add a marker to a parcel.
func NewAddSpecialMarkerCommand(
	trackingNumber kernel.TrackingNumber,
	marker parcel.SpecialMarker,
) (AddSpecialMarkerCommand, error) {
	cmd := AddSpecialMarkerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setTrackingNumber(trackingNumber),
		cmd.setMarker(marker),
	); err != nil {
		return AddSpecialMarkerCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddSpecialMarkerCommand) Validate() error {
	return c.guard.Validate(ErrAddSpecialMarkerCommandIsNotConstructed)
}

// TrackingNumber returns the tracking number of the parcel.
func (c AddSpecialMarkerCommand) TrackingNumber() kernel.TrackingNumber {
	return c.trackingNumber
}

// Marker returns the special marker to add.
func (c AddSpecialMarkerCommand) Marker() parcel.SpecialMarker {
	return c.marker
}

func (c *AddSpecialMarkerCommand) setTrackingNumber(trackingNumber kernel.TrackingNumber) error {
	if err := trackingNumber.Validate(); err != nil {
		return err
	}

	c.trackingNumber = trackingNumber
	return nil
}

func (c *AddSpecialMarkerCommand) setMarker(marker parcel.SpecialMarker) error {
	if err := marker.Validate(); err != nil {
		return err
	}

	c.marker = marker
	return nil
}
