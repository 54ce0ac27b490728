package ports

import (
	"context"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/purchase"
)

// PurchaseRepository mirrors OrderRepository for purchase orders.
type PurchaseRepository interface {
	Add(ctx context.Context, aggregate *purchase.Purchase) error
	Update(ctx context.Context, aggregate *purchase.Purchase) error
	Get(ctx context.Context, id kernel.UUID) (*purchase.Purchase, error)
}
