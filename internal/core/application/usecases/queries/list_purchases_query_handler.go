package queries

import (
	"context"
	"time"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/purchase"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const purchaseSummaryColumns = "id, supplier, total, status, created_at, updated_at, version"

type purchaseSummaryRow struct {
	ID        uuid.UUID
	Supplier  string
	Total     int64
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
	Version   int64
}

func (r purchaseSummaryRow) key() (time.Time, uuid.UUID) { return r.CreatedAt, r.ID }

func (r purchaseSummaryRow) toSummary() PurchaseSummary {
	return PurchaseSummary{
		ID:        kernel.UUIDFromGoogle(r.ID),
		Supplier:  r.Supplier,
		Total:     r.Total,
		Status:    purchase.Status(r.Status),
		CreatedAt: r.CreatedAt.UTC(),
		UpdatedAt: r.UpdatedAt.UTC(),
		Version:   r.Version,
	}
}

type ListPurchasesQueryHandler struct {
	db *gorm.DB
}

func NewListPurchasesQueryHandler(db *gorm.DB) ListPurchasesQueryHandler {
	return ListPurchasesQueryHandler{db: db}
}

func (h ListPurchasesQueryHandler) Handle(
	ctx context.Context,
	query ListPurchasesQuery,
) (ListPurchasesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListPurchasesQueryResponse{}, err
	}

	rows, next, err := fetchPage[purchaseSummaryRow](ctx, h.db, "purchases", purchaseSummaryColumns, query.page)
	if err != nil {
		return ListPurchasesQueryResponse{}, err
	}

	items := make([]PurchaseSummary, 0, len(rows))
	for _, r := range rows {
		items = append(items, r.toSummary())
	}
	return ListPurchasesQueryResponse{Items: items, NextCursor: next}, nil
}
