package commands_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/kernel"
)

func TestNewUpdateParcelAttributesCommand_ValidInput(t *testing.T) {
	tn := kernel.NewTrackingNumber(time.Now())
	cmd, err := commands.NewUpdateParcelAttributesCommand(tn, 2.5, 30, 20, 10, 120, 14.5, "books")
	require.NoError(t, err)
	assert.NoError(t, cmd.Validate())
	assert.True(t, cmd.TrackingNumber().IsEqual(tn))
	assert.InDelta(t, 2.5, cmd.WeightKg(), 0.0001)
	assert.InDelta(t, 30, cmd.LengthCm(), 0.0001)
	assert.InDelta(t, 20, cmd.WidthCm(), 0.0001)
	assert.InDelta(t, 10, cmd.HeightCm(), 0.0001)
	assert.InDelta(t, 120, cmd.DeclaredValue(), 0.0001)
	assert.InDelta(t, 14.5, cmd.DistanceKm(), 0.0001)
	assert.Equal(t, "books", cmd.ContentDescription())
}

func TestNewUpdateParcelAttributesCommand_ZeroQuantitiesAllowed(t *testing.T) {
	tn := kernel.NewTrackingNumber(time.Now())
	_, err := commands.NewUpdateParcelAttributesCommand(tn, 0, 0, 0, 0, 0, 0, "")
	require.NoError(t, err)
}

func TestNewUpdateParcelAttributesCommand_NegativeQuantity(t *testing.T) {
	tn := kernel.NewTrackingNumber(time.Now())

	_, err := commands.NewUpdateParcelAttributesCommand(tn, -1, 30, 20, 10, 120, 14.5, "books")
	assert.ErrorIs(t, err, commands.ErrNegativeQuantity)

	_, err = commands.NewUpdateParcelAttributesCommand(tn, 2.5, 30, 20, 10, 120, -3, "books")
	assert.ErrorIs(t, err, commands.ErrNegativeQuantity)
}

func TestNewUpdateParcelAttributesCommand_InvalidTrackingNumber(t *testing.T) {
	_, err := commands.NewUpdateParcelAttributesCommand(kernel.TrackingNumber{}, 2.5, 30, 20, 10, 120, 14.5, "books")
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrTrackingNumberIsNotConstructed)
}

func TestUpdateParcelAttributesCommand_NotConstructed(t *testing.T) {
	var cmd commands.UpdateParcelAttributesCommand
	err := cmd.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrUpdateParcelAttributesCommandIsNotConstructed)
}
