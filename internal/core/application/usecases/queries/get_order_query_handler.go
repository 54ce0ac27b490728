package queries

import (
	"context"

	"backoffice/internal/core/domain/model/order"
	"backoffice/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetOrderQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	var rows []orderSummaryRow
	err := h.db.WithContext(ctx).Table("orders").
		Select(orderSummaryColumns).
		Where("id = ?", query.ID().Bytes()).
		Limit(1).
		Scan(&rows).Error
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	if len(rows) == 0 {
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("order", query.ID().String())
	}

	lines, err := loadLines(ctx, h.db, "order_lines", "order_id", rows[0].ID)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	history, err := loadHistory(ctx, h.db, order.EntityType, query.ID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	summary := rows[0].toSummary()
	return GetOrderQueryResponse{
		OrderSummary:        summary,
		Lines:               lines,
		History:             history,
		AllowedNextStatuses: order.AllowedNextStates(summary.Status),
	}, nil
}
