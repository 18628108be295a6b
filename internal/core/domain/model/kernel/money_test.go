package kernel_test

import (
	"testing"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	t.Run("accepts_zero_and_positive_amounts", func(t *testing.T) {
		zero, err := kernel.NewMoney(0)
		require.NoError(t, err)
		assert.True(t, zero.IsZero())
		assert.False(t, zero.IsPositive())

		hundred, err := kernel.NewMoney(100)
		require.NoError(t, err)
		assert.Equal(t, int64(100), hundred.Amount())
		assert.True(t, hundred.IsPositive())
	})

	t.Run("rejects_negative_amounts", func(t *testing.T) {
		_, err := kernel.NewMoney(-1)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestMoney_Arithmetic(t *testing.T) {
	fifty, _ := kernel.NewMoney(50)
	hundred, _ := kernel.NewMoney(100)

	t.Run("add", func(t *testing.T) {
		sum := fifty.Add(hundred)

		assert.Equal(t, int64(150), sum.Amount())
		// operands are untouched
		assert.Equal(t, int64(50), fifty.Amount())
	})

	t.Run("sub", func(t *testing.T) {
		diff, err := hundred.Sub(fifty)

		require.NoError(t, err)
		assert.Equal(t, int64(50), diff.Amount())
	})

	t.Run("sub_to_zero", func(t *testing.T) {
		diff, err := fifty.Sub(fifty)

		require.NoError(t, err)
		assert.True(t, diff.IsZero())
	})

	t.Run("sub_below_zero_fails", func(t *testing.T) {
		_, err := fifty.Sub(hundred)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestMoney_Comparisons(t *testing.T) {
	fifty, _ := kernel.NewMoney(50)
	otherFifty, _ := kernel.NewMoney(50)
	hundred, _ := kernel.NewMoney(100)

	assert.True(t, fifty.IsEqual(otherFifty))
	assert.False(t, fifty.IsEqual(hundred))
	assert.True(t, fifty.IsLess(hundred))
	assert.False(t, hundred.IsLess(fifty))
	assert.Equal(t, "50", fifty.String())
}
