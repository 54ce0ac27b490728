package queries

import (
	"context"
	"time"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const orderSummaryColumns = "id, customer, total, status, payment_status, shipping_status, created_at, updated_at, version"

type orderSummaryRow struct {
	ID             uuid.UUID
	Customer       string
	Total          int64
	Status         string
	PaymentStatus  string
	ShippingStatus string
	CreatedAt      time.Time
	UpdatedAt      time.Time
	Version        int64
}

func (r orderSummaryRow) key() (time.Time, uuid.UUID) { return r.CreatedAt, r.ID }

func (r orderSummaryRow) toSummary() OrderSummary {
	return OrderSummary{
		ID:             kernel.UUIDFromGoogle(r.ID),
		Customer:       r.Customer,
		Total:          r.Total,
		Status:         order.Status(r.Status),
		PaymentStatus:  order.PaymentStatus(r.PaymentStatus),
		ShippingStatus: order.ShippingStatus(r.ShippingStatus),
		CreatedAt:      r.CreatedAt.UTC(),
		UpdatedAt:      r.UpdatedAt.UTC(),
		Version:        r.Version,
	}
}

type ListOrdersQueryHandler struct {
	db *gorm.DB
}

func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) (ListOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListOrdersQueryResponse{}, err
	}

	rows, next, err := fetchPage[orderSummaryRow](ctx, h.db, "orders", orderSummaryColumns, query.page)
	if err != nil {
		return ListOrdersQueryResponse{}, err
	}

	items := make([]OrderSummary, 0, len(rows))
	for _, r := range rows {
		items = append(items, r.toSummary())
	}
	return ListOrdersQueryResponse{Items: items, NextCursor: next}, nil
}
