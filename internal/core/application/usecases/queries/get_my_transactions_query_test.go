package queries_test

import (
	"testing"

	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetMyTransactionsQuery_Valid(t *testing.T) {
	deliveryPersonID := kernel.NewUUID()

	query, err := queries.NewGetMyTransactionsQuery(deliveryPersonID)

	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.True(t, deliveryPersonID.IsEqual(query.DeliveryPersonID()))
}

func TestNewGetMyTransactionsQuery_EmptyID(t *testing.T) {
	_, err := queries.NewGetMyTransactionsQuery(kernel.UUID{})

	require.Error(t, err)
}

func TestGetMyTransactionsQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetMyTransactionsQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetMyTransactionsQueryIsNotConstructed)
}
