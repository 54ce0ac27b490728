package commands_test

import (
	"testing"

	"backoffice/internal/core/application/usecases/commands"
	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var validLines = []commands.LineInput{{SKU: "SKU-1", Quantity: 2, UnitPrice: 999}}

func TestNewCreateOrderCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(id, "Acme Ltd", "alice", validLines)

	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, id, cmd.OrderID())
	assert.Equal(t, "Acme Ltd", cmd.Customer())
	assert.Equal(t, kernel.Actor("alice"), cmd.Actor())
	require.Len(t, cmd.Lines(), 1)
	assert.Equal(t, "SKU-1", cmd.Lines()[0].SKU())
}

func TestNewCreateOrderCommand_InvalidInput(t *testing.T) {
	t.Run("should report every problem", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(kernel.UUID{}, "", "", nil)

		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "customer")
		assert.Contains(t, err.Error(), "actor")
		assert.Contains(t, err.Error(), "lines")
	})

	t.Run("should point at the bad line", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), "Acme", "alice", []commands.LineInput{
			{SKU: "OK", Quantity: 1, UnitPrice: 1},
			{SKU: "BAD", Quantity: 0, UnitPrice: -5},
		})

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.Contains(t, err.Error(), "line 1")
		assert.NotContains(t, err.Error(), "line 0")
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		assert.Equal(t, commands.ErrCreateOrderCommandIsNotConstructed, commands.CreateOrderCommand{}.Validate())
	})
}
