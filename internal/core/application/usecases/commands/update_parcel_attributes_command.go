package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var (
	ErrUpdateParcelAttributesCommandIsNotConstructed = errors.New(
		"UpdateParcelAttributesCommand must be created via NewUpdateParcelAttributesCommand constructor",
	)
	ErrNegativeQuantity = errors.New("physical quantities must not be negative")
)

// UpdateParcelAttributesCommand represents a request to record the measured
// physical attributes of a parcel: weight, dimensions, declared value,
// delivery distance and content description.
type UpdateParcelAttributesCommand struct { //nolint:recvcheck //using for validation
	trackingNumber     kernel.TrackingNumber
	weightKg           float64
	lengthCm           float64
	widthCm            float64
	heightCm           float64
	declaredValue      float64
	distanceKm         float64
	contentDescription string

	guard guard.ConstructorGuard
}

// NewUpdateParcelAttributesCommand creates a command to update a parcel's
// physical attributes. All quantities must be non-negative.
func NewUpdateParcelAttributesCommand(
	trackingNumber kernel.TrackingNumber,
	weightKg, lengthCm, widthCm, heightCm float64,
	declaredValue, distanceKm float64,
	contentDescription string,
) (UpdateParcelAttributesCommand, error) {
	cmd := UpdateParcelAttributesCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setTrackingNumber(trackingNumber); err != nil {
		return UpdateParcelAttributesCommand{}, err
	}

	for _, v := range []float64{weightKg, lengthCm, widthCm, heightCm, declaredValue, distanceKm} {
		if v < 0 {
			return UpdateParcelAttributesCommand{}, ErrNegativeQuantity
		}
	}

	cmd.weightKg = weightKg
	cmd.lengthCm = lengthCm
	cmd.widthCm = widthCm
	cmd.heightCm = heightCm
	cmd.declaredValue = declaredValue
	cmd.distanceKm = distanceKm
	cmd.contentDescription = contentDescription

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateParcelAttributesCommand) Validate() error {
	return c.guard.Validate(ErrUpdateParcelAttributesCommandIsNotConstructed)
}

// TrackingNumber returns the tracking number of the parcel to update.
func (c UpdateParcelAttributesCommand) TrackingNumber() kernel.TrackingNumber {
	return c.trackingNumber
}

// WeightKg returns the measured weight in kilograms.
func (c UpdateParcelAttributesCommand) WeightKg() float64 {
	return c.weightKg
}

// LengthCm returns the measured length in centimeters.
func (c UpdateParcelAttributesCommand) LengthCm() float64 {
	return c.lengthCm
}

// WidthCm returns the measured width in centimeters.
func (c UpdateParcelAttributesCommand) WidthCm() float64 {
	return c.widthCm
}

// HeightCm returns the measured height in centimeters.
func (c UpdateParcelAttributesCommand) HeightCm() float64 {
	return c.heightCm
}

// DeclaredValue returns the declared value of the contents.
func (c UpdateParcelAttributesCommand) DeclaredValue() float64 {
	return c.declaredValue
}

// DistanceKm returns the delivery distance in kilometers.
func (c UpdateParcelAttributesCommand) DistanceKm() float64 {
	return c.distanceKm
}

// ContentDescription returns the free-text content description.
func (c UpdateParcelAttributesCommand) ContentDescription() string {
	return c.contentDescription
}

func (c *UpdateParcelAttributesCommand) setTrackingNumber(trackingNumber kernel.TrackingNumber) error {
	if err := trackingNumber.Validate(); err != nil {
		return err
	}

	c.trackingNumber = trackingNumber
	return nil
}
