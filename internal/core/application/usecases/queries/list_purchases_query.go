package queries

import (
	"errors"
	"time"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/purchase"
	"backoffice/internal/pkg/guard"
)

var ErrListPurchasesQueryIsNotConstructed = errors.New(
	"ListPurchasesQuery must be created via NewListPurchasesQuery constructor",
)

type ListPurchasesQuery struct {
	page  pageRequest
	guard guard.ConstructorGuard
}

func NewListPurchasesQuery(status string, limit int, cursor string) (ListPurchasesQuery, error) {
	var statusErr error
	if status != "" {
		_, statusErr = purchase.ParseStatus(status)
	}
	page, pageErr := newPageRequest(status, limit, cursor)

	if err := errors.Join(statusErr, pageErr); err != nil {
		return ListPurchasesQuery{}, err
	}
	return ListPurchasesQuery{page: page, guard: guard.NewConstructorGuard()}, nil
}

func (q ListPurchasesQuery) Validate() error {
	return q.guard.Validate(ErrListPurchasesQueryIsNotConstructed)
}

func (q ListPurchasesQuery) Limit() int { return q.page.limit }

type PurchaseSummary struct {
	ID        kernel.UUID
	Supplier  string
	Total     int64
	Status    purchase.Status
	CreatedAt time.Time
	UpdatedAt time.Time
	Version   int64
}

type ListPurchasesQueryResponse = Page[PurchaseSummary]
