package commands

import (
	"context"
	"errors"
	"time"

	"backoffice/internal/core/domain/model/activity"
	"backoffice/internal/core/domain/model/purchase"
	"backoffice/internal/core/ports"
	"backoffice/internal/pkg/errs"
)

type ChangePurchaseStatusCommandHandler struct {
	uowFactory PurchaseUoWFactory
	observer   ports.TransitionObserver
}

func NewChangePurchaseStatusCommandHandler(
	uowFactory PurchaseUoWFactory,
	observer ports.TransitionObserver,
) ChangePurchaseStatusCommandHandler {
	return ChangePurchaseStatusCommandHandler{
		uowFactory: uowFactory,
		observer:   observer,
	}
}

func (h ChangePurchaseStatusCommandHandler) Handle(ctx context.Context, cmd ChangePurchaseStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	purchaseRepo := uow.PurchaseRepository()
	aggregate, err := purchaseRepo.Get(ctx, cmd.PurchaseID())
	if err != nil {
		return err
	}

	from := aggregate.Status()
	now := time.Now().UTC()
	if err = aggregate.ChangeStatus(cmd.Status(), cmd.Actor().String(), now); err != nil {
		if errors.Is(err, errs.ErrInvalidTransition) {
			h.observer.TransitionRejected(purchase.EntityType, from.String(), cmd.Status().String())
		}
		return err
	}

	if err = purchaseRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	history := aggregate.History()
	if err = recordActivity(ctx, uow.ActivityLogRepository(), cmd.Actor().String(), activity.ActionStatusChanged,
		purchase.EntityType, aggregate.ID(), describe(history[len(history)-1]), now); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.observer.TransitionAccepted(purchase.EntityType, from.String(), cmd.Status().String())
	return nil
}
