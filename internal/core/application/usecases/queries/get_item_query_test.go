package queries_test

import (
	"testing"

	"valuekit/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetItemQuery_Valid(t *testing.T) {
	query := queries.NewGetItemQuery(42)

	require.NoError(t, query.Validate())
	assert.Equal(t, 42, query.ItemID())

	_, hasQ := query.Q()
	assert.False(t, hasQ)
}

func TestNewGetItemQueryWithQ_Valid(t *testing.T) {
	query := queries.NewGetItemQueryWithQ(42, "test")

	require.NoError(t, query.Validate())
	assert.Equal(t, 42, query.ItemID())

	q, hasQ := query.Q()
	assert.True(t, hasQ)
	assert.Equal(t, "test", q)
}

func TestGetItemQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetItemQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetItemQueryIsNotConstructed)
}
