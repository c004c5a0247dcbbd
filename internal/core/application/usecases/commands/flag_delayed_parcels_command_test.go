package commands_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"logistics/internal/core/application/usecases/commands"
)

func TestNewFlagDelayedParcelsCommand_ValidInput(t *testing.T) {
	cmd, err := commands.NewFlagDelayedParcelsCommand(24 * time.Hour)
	require.NoError(t, err)
	assert.NoError(t, cmd.Validate())
	assert.Equal(t, 24*time.Hour, cmd.OlderThan())
}

func TestNewFlagDelayedParcelsCommand_NonPositiveThreshold(t *testing.T) {
	_, err := commands.NewFlagDelayedParcelsCommand(0)
	assert.ErrorIs(t, err, commands.ErrThresholdIsInvalid)

	_, err = commands.NewFlagDelayedParcelsCommand(-time.Hour)
	assert.ErrorIs(t, err, commands.ErrThresholdIsInvalid)
}

func TestFlagDelayedParcelsCommand_NotConstructed(t *testing.T) {
	var cmd commands.FlagDelayedParcelsCommand
	err := cmd.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrFlagDelayedParcelsCommandIsNotConstructed)
}
