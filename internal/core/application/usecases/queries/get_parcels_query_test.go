package queries_test

import (
	"testing"

	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/actor"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetParcelsQuery_Valid(t *testing.T) {
	staff, err := actor.NewActor(actor.Staff, "ops-1")
	require.NoError(t, err)

	query, err := queries.NewGetParcelsQuery(staff)

	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, actor.Staff, query.Actor().Role())
	assert.Equal(t, "ops-1", query.Actor().Username())
}

func TestNewGetParcelsQuery_InvalidActor(t *testing.T) {
	_, err := queries.NewGetParcelsQuery(actor.Actor{})

	require.Error(t, err)
}

func TestGetParcelsQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetParcelsQuery{}

	err := query.Validate()

	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetParcelsQueryIsNotConstructed)
}
