package queries

import (
	"errors"
	"time"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"
	"backoffice/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersQuery pages through orders, newest first, optionally filtered by status.
type ListOrdersQuery struct {
	page  pageRequest
	guard guard.ConstructorGuard
}

// NewListOrdersQuery accepts an empty status (no filter), a limit of 0 (default)
// or 1..MaxPageLimit, and an empty or previously returned cursor.
func NewListOrdersQuery(status string, limit int, cursor string) (ListOrdersQuery, error) {
	var statusErr error
	if status != "" {
		_, statusErr = order.ParseStatus(status)
	}
	page, pageErr := newPageRequest(status, limit, cursor)

	if err := errors.Join(statusErr, pageErr); err != nil {
		return ListOrdersQuery{}, err
	}
	return ListOrdersQuery{page: page, guard: guard.NewConstructorGuard()}, nil
}

func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

func (q ListOrdersQuery) Limit() int { return q.page.limit }

// OrderSummary is an order without lines and history.
type OrderSummary struct {
	ID             kernel.UUID
	Customer       string
	Total          int64
	Status         order.Status
	PaymentStatus  order.PaymentStatus
	ShippingStatus order.ShippingStatus
	CreatedAt      time.Time
	UpdatedAt      time.Time
	Version        int64
}

type ListOrdersQueryResponse = Page[OrderSummary]
