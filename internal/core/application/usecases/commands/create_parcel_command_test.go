package commands_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/parcel"
)

func TestNewCreateParcelCommand_ValidInput(t *testing.T) {
	tn := kernel.NewTrackingNumber(time.Now())
	createdAt := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
	cmd, err := commands.NewCreateParcelCommand(tn, "cust-1", "Jane Doe", "1 Main St", parcel.Express, createdAt)
	require.NoError(t, err)
	assert.Equal(t, tn, cmd.TrackingNumber())
	assert.Equal(t, "cust-1", cmd.SenderID())
	assert.Equal(t, "Jane Doe", cmd.RecipientName())
	assert.Equal(t, "1 Main St", cmd.RecipientAddress())
	assert.Equal(t, parcel.Express, cmd.ServiceTier())
	assert.Equal(t, createdAt, cmd.CreatedAt())
}

func TestNewCreateParcelCommand_InvalidTrackingNumber(t *testing.T) {
	_, err := commands.NewCreateParcelCommand(kernel.TrackingNumber{}, "cust-1", "Jane Doe", "1 Main St", parcel.Standard, time.Now().UTC())
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrTrackingNumberIsNotConstructed)
}

func TestNewCreateParcelCommand_EmptySender(t *testing.T) {
	tn := kernel.NewTrackingNumber(time.Now())
	_, err := commands.NewCreateParcelCommand(tn, "", "Jane Doe", "1 Main St", parcel.Standard, time.Now().UTC())
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrSenderIDIsRequired)
}

func TestNewCreateParcelCommand_EmptyRecipient(t *testing.T) {
	tn := kernel.NewTrackingNumber(time.Now())

	_, err := commands.NewCreateParcelCommand(tn, "cust-1", "", "1 Main St", parcel.Standard, time.Now().UTC())
	assert.ErrorIs(t, err, commands.ErrRecipientNameIsRequired)

	_, err = commands.NewCreateParcelCommand(tn, "cust-1", "Jane Doe", "", parcel.Standard, time.Now().UTC())
	assert.ErrorIs(t, err, commands.ErrRecipientAddressIsRequired)
}

func TestNewCreateParcelCommand_UnknownTier(t *testing.T) {
	tn := kernel.NewTrackingNumber(time.Now())
	_, err := commands.NewCreateParcelCommand(tn, "cust-1", "Jane Doe", "1 Main St", parcel.UnknownTier, time.Now().UTC())
	require.Error(t, err)
}

func TestNewCreateParcelCommand_ZeroCreatedAt(t *testing.T) {
	tn := kernel.NewTrackingNumber(time.Now())
	_, err := commands.NewCreateParcelCommand(tn, "cust-1", "Jane Doe", "1 Main St", parcel.Standard, time.Time{})
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrCreatedAtIsRequired)
}
