package commands_test

import (
	"testing"

	"backoffice/internal/core/application/usecases/commands"
	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"
	"backoffice/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewChangeOrderTrackingStatusCommand(t *testing.T) {
	id := kernel.NewUUID()

	t.Run("should keep both statuses", func(t *testing.T) {
		cmd, err := commands.NewChangeOrderTrackingStatusCommand(id, "PAID", "PREPARING", "carol")

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, id, cmd.OrderID())
		assert.Equal(t, order.Paid, cmd.PaymentStatus())
		assert.Equal(t, order.Preparing, cmd.ShippingStatus())
		assert.Equal(t, kernel.Actor("carol"), cmd.Actor())
	})

	t.Run("should leave an omitted status empty", func(t *testing.T) {
		cmd, err := commands.NewChangeOrderTrackingStatusCommand(id, "", "PREPARING", "carol")

		require.NoError(t, err)
		assert.Empty(t, cmd.PaymentStatus())
		assert.Equal(t, order.Preparing, cmd.ShippingStatus())
	})

	t.Run("should require at least one status", func(t *testing.T) {
		_, err := commands.NewChangeOrderTrackingStatusCommand(id, "", "", "carol")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject unknown statuses", func(t *testing.T) {
		_, err := commands.NewChangeOrderTrackingStatusCommand(id, "BARTERED", "TELEPORTED", "carol")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "paymentStatus")
		assert.Contains(t, err.Error(), "shippingStatus")
	})

	t.Run("should refuse a zero value command", func(t *testing.T) {
		assert.ErrorIs(t, commands.ChangeOrderTrackingStatusCommand{}.Validate(),
			commands.ErrChangeOrderTrackingStatusCommandIsNotConstructed)
	})
}
