package queries_test

import (
	"context"
	"testing"

	"valuekit/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetItemQueryHandler_Handle(t *testing.T) {
	handler := queries.NewGetItemQueryHandler()

	t.Run("echoes the item ID without a query string", func(t *testing.T) {
		response, err := handler.Handle(context.Background(), queries.NewGetItemQuery(42))

		require.NoError(t, err)
		assert.Equal(t, 42, response.ItemID)
		assert.Nil(t, response.Q)
	})

	t.Run("echoes the query string when supplied", func(t *testing.T) {
		response, err := handler.Handle(context.Background(),
			queries.NewGetItemQueryWithQ(42, "test"))

		require.NoError(t, err)
		assert.Equal(t, 42, response.ItemID)
		require.NotNil(t, response.Q)
		assert.Equal(t, "test", *response.Q)
	})

	t.Run("empty query string is still a query string", func(t *testing.T) {
		response, err := handler.Handle(context.Background(),
			queries.NewGetItemQueryWithQ(7, ""))

		require.NoError(t, err)
		require.NotNil(t, response.Q)
		assert.Empty(t, *response.Q)
	})

	t.Run("rejects a query that bypassed the constructor", func(t *testing.T) {
		_, err := handler.Handle(context.Background(), queries.GetItemQuery{})

		require.Error(t, err)
		assert.ErrorIs(t, err, queries.ErrGetItemQueryIsNotConstructed)
	})
}
