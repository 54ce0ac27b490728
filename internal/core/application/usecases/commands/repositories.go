// Package commands contains the write-side use cases. Every handler validates its
// command, opens a unit of work, loads or creates aggregates, persists them together
// with an activity record and commits.
package commands

import (
	"context"

	"backoffice/internal/core/ports"
)

type (
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	PurchaseRepoFactory interface {
		PurchaseRepository() ports.PurchaseRepository
	}

	ActivityLogRepoFactory interface {
		ActivityLogRepository() ports.ActivityLogRepository
	}

	// OrderUoW covers commands that touch one order and write its activity record.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		ActivityLogRepoFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	PurchaseUoW interface {
		TxManager
		PurchaseRepoFactory
		ActivityLogRepoFactory
	}

	PurchaseUoWFactory interface {
		Create() PurchaseUoW
	}

	// ActivityLogUoW is used by retention; one instance per deleted batch.
	ActivityLogUoW interface {
		TxManager
		ActivityLogRepoFactory
	}

	ActivityLogUoWFactory interface {
		Create() ActivityLogUoW
	}
)
