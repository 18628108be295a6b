package errs_test

import (
	"errors"
	"testing"

	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("without cause", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("orderId", "123")

		assert.Equal(t, "orderId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("with cause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("orderId", "123", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: orderId, ID is: 123 (cause: database connection failed)",
			err.Error())
	})
}

func TestValueValidationErrors(t *testing.T) {
	t.Run("value is invalid", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("amount")
		assert.Equal(t, "value is invalid: amount", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())

		cause := errors.New("must be positive")
		withCause := errs.NewValueIsInvalidErrorWithCause("amount", cause)
		assert.Equal(t, "value is invalid: amount (cause: must be positive)", withCause.Error())
	})

	t.Run("value is required", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("returnReason")
		assert.Equal(t, "value is required: returnReason", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("value is out of range", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("amount", -5, 1, 1000)

		assert.Equal(t, -5, err.Value)
		assert.Equal(t, "value is invalid: -5 is amount, min value is 1, max value is 1000", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("messages are single line", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("text", "hello\nworld", 0, 10)
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestVersionIsInvalidError(t *testing.T) {
	cause := errors.New("expected version 3")
	err := errs.NewVersionIsInvalidErrorWithCause("order", cause)

	assert.Equal(t, "order", err.ParamName)
	assert.Equal(t, cause, err.Cause)
	assert.Equal(t, "version is invalid: order (cause: expected version 3)", err.Error())
	assert.Equal(t, errs.ErrVersionIsInvalid, err.Unwrap())

	bare := errs.NewVersionIsInvalidError("order")
	require.NoError(t, bare.Cause)
	assert.Equal(t, "version is invalid: order", bare.Error())
}

func TestInvalidTransitionError(t *testing.T) {
	err := errs.NewInvalidTransitionError("accept", "Created")

	assert.Equal(t, "accept", err.Operation)
	assert.Equal(t, "Created", err.Status)
	assert.Equal(t, "invalid transition: accept is not allowed in status Created", err.Error())
	assert.Equal(t, errs.ErrInvalidTransition, err.Unwrap())

	cause := errors.New("already accepted")
	withCause := errs.NewInvalidTransitionErrorWithCause("accept", "Shipped", cause)
	assert.Equal(t,
		"invalid transition: accept is not allowed in status Shipped (cause: already accepted)",
		withCause.Error())
}

func TestNotAuthorizedError(t *testing.T) {
	err := errs.NewNotAuthorizedError("dp-42", "deposit for order")

	assert.Equal(t, "dp-42", err.ActorID)
	assert.Equal(t, "not authorized: actor is: dp-42, action is: deposit for order", err.Error())
	assert.Equal(t, errs.ErrNotAuthorized, err.Unwrap())
}

func TestInsufficientBalanceError(t *testing.T) {
	err := errs.NewInsufficientBalanceError(50, 100)

	assert.Equal(t, int64(50), err.Balance)
	assert.Equal(t, int64(100), err.Amount)
	assert.Equal(t, "insufficient balance: balance is 50, requested amount is 100", err.Error())
	assert.Equal(t, errs.ErrInsufficientBalance, err.Unwrap())
}

func TestStorageUnavailableError(t *testing.T) {
	t.Run("without cause", func(t *testing.T) {
		err := errs.NewStorageUnavailableError(nil)
		assert.Equal(t, "storage unavailable", err.Error())
		assert.Equal(t, errs.ErrStorageUnavailable, err.Unwrap())
	})

	t.Run("with cause", func(t *testing.T) {
		err := errs.NewStorageUnavailableError(errors.New("connection refused"))
		assert.Equal(t, "storage unavailable (cause: connection refused)", err.Error())
	})
}

func TestSentinelClassification(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"not found", errs.NewObjectNotFoundError("orderId", "x"), errs.ErrObjectNotFound},
		{"invalid", errs.NewValueIsInvalidError("amount"), errs.ErrValueIsInvalid},
		{"required", errs.NewValueIsRequiredError("reason"), errs.ErrValueIsRequired},
		{"out of range", errs.NewValueIsOutOfRangeError("amount", 0, 1, 2), errs.ErrValueIsOutOfRange},
		{"version", errs.NewVersionIsInvalidError("order"), errs.ErrVersionIsInvalid},
		{"transition", errs.NewInvalidTransitionError("complete", "Packed"), errs.ErrInvalidTransition},
		{"authorization", errs.NewNotAuthorizedError("dp-1", "withdraw"), errs.ErrNotAuthorized},
		{"balance", errs.NewInsufficientBalanceError(0, 10), errs.ErrInsufficientBalance},
		{"storage", errs.NewStorageUnavailableError(nil), errs.ErrStorageUnavailable},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.ErrorIs(t, tc.err, tc.sentinel)
		})
	}
}
