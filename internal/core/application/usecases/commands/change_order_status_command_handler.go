package commands

import (
	"context"
	"errors"
	"time"

	"backoffice/internal/core/domain/model/order"
	"backoffice/internal/core/ports"
	"backoffice/internal/pkg/errs"
)

// ChangeOrderStatusCommandHandler applies one primary status transition.
//
// A transition rejected by the table is returned as *errs.InvalidTransitionError
// before anything is written.
type ChangeOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	observer   ports.TransitionObserver
}

func NewChangeOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	observer ports.TransitionObserver,
) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
		observer:   observer,
	}
}

func (h ChangeOrderStatusCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStatusCommand) error {
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

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	from := aggregate.Status()
	now := time.Now().UTC()
	if err = aggregate.ChangeStatus(cmd.Status(), cmd.Actor().String(), now); err != nil {
		if errors.Is(err, errs.ErrInvalidTransition) {
			h.observer.TransitionRejected(order.EntityType, from.String(), cmd.Status().String())
		}
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	history := aggregate.History()
	last := history[len(history)-1]
	if err = recordActivity(ctx, uow.ActivityLogRepository(), cmd.Actor().String(), actionFor(last.StatusType),
		order.EntityType, aggregate.ID(), describe(last), now); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.observer.TransitionAccepted(order.EntityType, from.String(), cmd.Status().String())
	return nil
}
