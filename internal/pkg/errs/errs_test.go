package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"backoffice/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("should format id only when no cause", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("order", "0b6c")

		assert.Equal(t, "order", err.ParamName)
		assert.Equal(t, "0b6c", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 0b6c", err.Error())
	})

	t.Run("should include param and cause", func(t *testing.T) {
		cause := errors.New("connection reset")
		err := errs.NewObjectNotFoundErrorWithCause("purchase", "42", cause)

		assert.Equal(t,
			"object not found: param is: purchase, ID is: 42 (cause: connection reset)",
			err.Error())
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("should format non-string ids", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("order", 456)
		assert.Equal(t, "object not found: 456", err.Error())
	})
}

func TestValueErrors(t *testing.T) {
	t.Run("invalid", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("status")
		assert.Equal(t, "value is invalid: status", err.Error())

		err = errs.NewValueIsInvalidErrorWithCause("status", errors.New("unknown status: LOST"))
		assert.Equal(t, "value is invalid: status (cause: unknown status: LOST)", err.Error())
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("out of range", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("limit", 150, 1, 100)
		assert.Equal(t, "value is invalid: 150 is limit, min value is 1, max value is 100", err.Error())
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

		err = errs.NewValueIsOutOfRangeErrorWithCause("quantity", -5, 1, 1000, errors.New("negative"))
		assert.Equal(t,
			"value is invalid: -5 is quantity, min value is 1, max value is 1000 (cause: negative)",
			err.Error())
	})

	t.Run("out of range should strip newlines", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("sku", "ab\ncd", 0, 10)
		assert.Contains(t, err.Error(), "ab cd")
		assert.NotContains(t, err.Error(), "\n")
	})

	t.Run("required", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("actor")
		assert.Equal(t, "value is required: actor", err.Error())

		err = errs.NewValueIsRequiredErrorWithCause("actor", errors.New("blank"))
		assert.Equal(t, "value is required: actor (cause: blank)", err.Error())
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestVersionIsInvalidError(t *testing.T) {
	err := errs.NewVersionIsInvalidError("order")
	assert.Equal(t, "version is invalid: order", err.Error())

	err = errs.NewVersionIsInvalidErrorWithCause("order", errors.New("expected 3"))
	assert.Equal(t, "version is invalid: order (cause: expected 3)", err.Error())
	require.ErrorIs(t, err, errs.ErrVersionIsInvalid)
}

func TestInvalidTransitionError(t *testing.T) {
	t.Run("should name both statuses", func(t *testing.T) {
		err := errs.NewInvalidTransitionError("PENDING", "SHIPPED")

		assert.Equal(t, "PENDING", err.From)
		assert.Equal(t, "SHIPPED", err.To)
		assert.Equal(t, "invalid transition: PENDING -> SHIPPED", err.Error())
	})

	t.Run("should be matchable through wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("change status: %w", errs.NewInvalidTransitionError("DELIVERED", "PENDING"))

		require.ErrorIs(t, wrapped, errs.ErrInvalidTransition)

		var target *errs.InvalidTransitionError
		require.ErrorAs(t, wrapped, &target)
		assert.Equal(t, "DELIVERED", target.From)
	})
}

func TestSentinelMessages(t *testing.T) {
	assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
	assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
	assert.Equal(t, "value is out of range", errs.ErrValueIsOutOfRange.Error())
	assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
	assert.Equal(t, "version is invalid", errs.ErrVersionIsInvalid.Error())
	assert.Equal(t, "invalid transition", errs.ErrInvalidTransition.Error())
}
