package queries

import (
	"context"
	"errors"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/purchase"
	"backoffice/internal/pkg/errs"
	"backoffice/internal/pkg/guard"

	"gorm.io/gorm"
)

var ErrGetPurchaseQueryIsNotConstructed = errors.New(
	"GetPurchaseQuery must be created via NewGetPurchaseQuery constructor",
)

type GetPurchaseQuery struct {
	id    kernel.UUID
	guard guard.ConstructorGuard
}

func NewGetPurchaseQuery(id kernel.UUID) (GetPurchaseQuery, error) {
	if err := id.Validate(); err != nil {
		return GetPurchaseQuery{}, err
	}
	return GetPurchaseQuery{id: id, guard: guard.NewConstructorGuard()}, nil
}

func (q GetPurchaseQuery) Validate() error {
	return q.guard.Validate(ErrGetPurchaseQueryIsNotConstructed)
}

func (q GetPurchaseQuery) ID() kernel.UUID { return q.id }

type GetPurchaseQueryResponse struct {
	PurchaseSummary
	Lines               []LineView
	History             []HistoryView
	AllowedNextStatuses []purchase.Status
}

type GetPurchaseQueryHandler struct {
	db *gorm.DB
}

func NewGetPurchaseQueryHandler(db *gorm.DB) GetPurchaseQueryHandler {
	return GetPurchaseQueryHandler{db: db}
}

func (h GetPurchaseQueryHandler) Handle(ctx context.Context, query GetPurchaseQuery) (GetPurchaseQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetPurchaseQueryResponse{}, err
	}

	var rows []purchaseSummaryRow
	err := h.db.WithContext(ctx).Table("purchases").
		Select(purchaseSummaryColumns).
		Where("id = ?", query.ID().Bytes()).
		Limit(1).
		Scan(&rows).Error
	if err != nil {
		return GetPurchaseQueryResponse{}, err
	}
	if len(rows) == 0 {
		return GetPurchaseQueryResponse{}, errs.NewObjectNotFoundError("purchase", query.ID().String())
	}

	lines, err := loadLines(ctx, h.db, "purchase_lines", "purchase_id", rows[0].ID)
	if err != nil {
		return GetPurchaseQueryResponse{}, err
	}
	history, err := loadHistory(ctx, h.db, purchase.EntityType, query.ID())
	if err != nil {
		return GetPurchaseQueryResponse{}, err
	}

	summary := rows[0].toSummary()
	return GetPurchaseQueryResponse{
		PurchaseSummary:     summary,
		Lines:               lines,
		History:             history,
		AllowedNextStatuses: purchase.AllowedNextStates(summary.Status),
	}, nil
}
