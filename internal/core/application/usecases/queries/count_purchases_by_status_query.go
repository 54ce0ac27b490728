package queries

import (
	"context"
	"errors"

	"backoffice/internal/core/domain/model/purchase"
	"backoffice/internal/pkg/guard"

	"gorm.io/gorm"
)

var ErrCountPurchasesByStatusQueryIsNotConstructed = errors.New(
	"CountPurchasesByStatusQuery must be created via NewCountPurchasesByStatusQuery constructor",
)

type CountPurchasesByStatusQuery struct {
	guard guard.ConstructorGuard
}

func NewCountPurchasesByStatusQuery() CountPurchasesByStatusQuery {
	return CountPurchasesByStatusQuery{guard: guard.NewConstructorGuard()}
}

func (q CountPurchasesByStatusQuery) Validate() error {
	return q.guard.Validate(ErrCountPurchasesByStatusQueryIsNotConstructed)
}

type CountPurchasesByStatusQueryHandler struct {
	db *gorm.DB
}

func NewCountPurchasesByStatusQueryHandler(db *gorm.DB) CountPurchasesByStatusQueryHandler {
	return CountPurchasesByStatusQueryHandler{db: db}
}

func (h CountPurchasesByStatusQueryHandler) Handle(
	ctx context.Context,
	query CountPurchasesByStatusQuery,
) (map[purchase.Status]int64, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	raw, err := countByStatus(ctx, h.db, "purchases")
	if err != nil {
		return nil, err
	}

	counts := make(map[purchase.Status]int64, len(purchase.Statuses()))
	for _, s := range purchase.Statuses() {
		counts[s] = raw[s.String()]
	}
	return counts, nil
}
