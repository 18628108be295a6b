package queries_test

import (
	"testing"

	"storefront/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetPendingWithdrawalsQuery_Valid(t *testing.T) {
	query := queries.NewGetPendingWithdrawalsQuery()
	err := query.Validate()
	require.NoError(t, err)
}

func TestGetPendingWithdrawalsQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetPendingWithdrawalsQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetPendingWithdrawalsQueryIsNotConstructed)
}
