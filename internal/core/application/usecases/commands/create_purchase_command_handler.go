package commands

import (
	"context"
	"time"

	"backoffice/internal/core/domain/model/activity"
	"backoffice/internal/core/domain/model/purchase"
)

type CreatePurchaseCommandHandler struct {
	uowFactory PurchaseUoWFactory
}

func NewCreatePurchaseCommandHandler(uowFactory PurchaseUoWFactory) CreatePurchaseCommandHandler {
	return CreatePurchaseCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h CreatePurchaseCommandHandler) Handle(ctx context.Context, cmd CreatePurchaseCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	now := time.Now().UTC()
	aggregate, err := purchase.NewPurchase(cmd.PurchaseID(), cmd.Supplier(), cmd.Lines(), now)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.PurchaseRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	if err = recordActivity(ctx, uow.ActivityLogRepository(), cmd.Actor().String(), activity.ActionCreated,
		purchase.EntityType, aggregate.ID(), "purchase created from "+aggregate.Supplier(), now); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
