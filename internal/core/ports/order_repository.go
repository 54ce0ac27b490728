// Package ports defines the contracts between the use cases and the adapters.
package ports

import (
	"context"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"
)

// OrderRepository persists order aggregates with their status history.
type OrderRepository interface {
	// Add stores a new order together with its line items and any history it carries.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update writes the status fields and appends unpersisted history. It fails with
	// errs.VersionIsInvalidError when the stored version differs from aggregate.Version().
	Update(ctx context.Context, aggregate *order.Order) error

	// Get loads an order with its lines and full history.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
