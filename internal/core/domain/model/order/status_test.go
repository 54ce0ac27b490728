package order_test

import (
	"testing"
	"time"

	"backoffice/internal/core/domain/model/order"
	"backoffice/internal/core/domain/model/transition"
	"backoffice/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var orderTable = map[order.Status][]order.Status{
	order.Pending:   {order.Shipping, order.Cancelled},
	order.Shipping:  {order.Shipped, order.PickedUp, order.Cancelled},
	order.Shipped:   {order.Failed},
	order.PickedUp:  {order.Failed},
	order.Cancelled: nil,
	order.Failed:    nil,
}

func TestStatus_Validate(t *testing.T) {
	for _, s := range order.Statuses() {
		require.NoError(t, s.Validate(), s)
	}

	for _, bad := range []order.Status{"", "pending", "COMPLETED", "LOST"} {
		err := bad.Validate()
		require.ErrorIs(t, err, errs.ErrValueIsInvalid, bad)
	}

	parsed, err := order.ParseStatus("PICKED_UP")
	require.NoError(t, err)
	assert.Equal(t, order.PickedUp, parsed)
}

func TestAllowedNextStates(t *testing.T) {
	t.Run("should match the table in table order", func(t *testing.T) {
		assert.Len(t, order.Statuses(), len(orderTable))
		for from, to := range orderTable {
			assert.Equal(t, len(to), len(order.AllowedNextStates(from)), from)
			if len(to) > 0 {
				assert.Equal(t, to, order.AllowedNextStates(from), from)
			}
		}
	})

	t.Run("terminal states allow nothing", func(t *testing.T) {
		for _, s := range []order.Status{order.Cancelled, order.Failed} {
			assert.Empty(t, order.AllowedNextStates(s))
			assert.True(t, s.IsTerminal())
		}
		assert.False(t, order.Pending.IsTerminal())
	})

	t.Run("callers cannot mutate the table", func(t *testing.T) {
		next := order.AllowedNextStates(order.Pending)
		next[0] = order.Failed

		assert.Equal(t, []order.Status{order.Shipping, order.Cancelled}, order.AllowedNextStates(order.Pending))
	})
}

func TestTransition_AllPairs(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	for _, from := range order.Statuses() {
		for _, to := range order.Statuses() {
			allowed := false
			for _, candidate := range orderTable[from] {
				allowed = allowed || candidate == to
			}

			next, entry, err := order.Transition(from, to, "tester", now)
			if allowed {
				require.NoError(t, err, "%s -> %s", from, to)
				assert.Equal(t, to, next)
				assert.Equal(t, string(from), entry.OldStatus)
				assert.Equal(t, string(to), entry.NewStatus)
				continue
			}

			var invalid *errs.InvalidTransitionError
			require.ErrorAs(t, err, &invalid, "%s -> %s", from, to)
			assert.Equal(t, string(from), invalid.From)
			assert.Equal(t, string(to), invalid.To)
		}
	}
}

func TestTransition_IsNotIdempotent(t *testing.T) {
	now := time.Now()

	next, _, err := order.Transition(order.Pending, order.Shipping, "alice", now)
	require.NoError(t, err)

	_, _, err = order.Transition(next, order.Shipping, "alice", now)
	require.ErrorIs(t, err, errs.ErrInvalidTransition)
}

func TestTransition_Scenarios(t *testing.T) {
	t1 := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)

	t.Run("alice ships a pending order", func(t *testing.T) {
		next, entry, err := order.Transition(order.Pending, order.Shipping, "alice", t1)

		require.NoError(t, err)
		assert.Equal(t, order.Shipping, next)
		assert.Equal(t, transition.Entry{
			Timestamp:  t1,
			Actor:      "alice",
			StatusType: transition.StatusTypeOrder,
			OldStatus:  "PENDING",
			NewStatus:  "SHIPPING",
		}, entry)
	})

	t.Run("bob cannot pick up a shipped order", func(t *testing.T) {
		_, _, err := order.Transition(order.Shipped, order.PickedUp, "bob", t1.Add(time.Hour))
		require.ErrorIs(t, err, errs.ErrInvalidTransition)
	})

	t.Run("carol cannot reopen a cancelled order", func(t *testing.T) {
		_, _, err := order.Transition(order.Cancelled, order.Pending, "carol", t1.Add(2*time.Hour))
		require.ErrorIs(t, err, errs.ErrInvalidTransition)
	})
}

func TestTrackingStatuses_Validate(t *testing.T) {
	for _, s := range order.PaymentStatuses() {
		require.NoError(t, s.Validate())
	}
	for _, s := range order.ShippingStatuses() {
		require.NoError(t, s.Validate())
	}

	require.ErrorIs(t, order.PaymentStatus("FREE").Validate(), errs.ErrValueIsInvalid)
	require.ErrorIs(t, order.ShippingStatus("LOST").Validate(), errs.ErrValueIsInvalid)
}
