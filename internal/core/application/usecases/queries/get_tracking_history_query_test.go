package queries_test

import (
	"testing"
	"time"

	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetTrackingHistoryQuery_Valid(t *testing.T) {
	tn := kernel.NewTrackingNumber(time.Now())

	query, err := queries.NewGetTrackingHistoryQuery(tn)

	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.True(t, tn.IsEqual(query.TrackingNumber()))
}

func TestNewGetTrackingHistoryQuery_ZeroTrackingNumber(t *testing.T) {
	_, err := queries.NewGetTrackingHistoryQuery(kernel.TrackingNumber{})

	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrTrackingNumberIsNotConstructed)
}

func TestGetTrackingHistoryQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetTrackingHistoryQuery{}

	err := query.Validate()

	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetTrackingHistoryQueryIsNotConstructed)
}
