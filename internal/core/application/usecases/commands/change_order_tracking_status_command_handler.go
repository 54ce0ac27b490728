package commands

import (
	"context"
	"time"

	"backoffice/internal/core/domain/model/order"
)

type ChangeOrderTrackingStatusCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewChangeOrderTrackingStatusCommandHandler(uowFactory OrderUoWFactory) ChangeOrderTrackingStatusCommandHandler {
	return ChangeOrderTrackingStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle applies the requested tracking statuses. When both already hold their
// requested values nothing is written.
func (h ChangeOrderTrackingStatusCommandHandler) Handle(ctx context.Context, cmd ChangeOrderTrackingStatusCommand) error {
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

	now := time.Now().UTC()
	actor := cmd.Actor().String()
	before := len(aggregate.History())

	if cmd.PaymentStatus() != "" {
		if _, err = aggregate.ChangePaymentStatus(cmd.PaymentStatus(), actor, now); err != nil {
			return err
		}
	}
	if cmd.ShippingStatus() != "" {
		if _, err = aggregate.ChangeShippingStatus(cmd.ShippingStatus(), actor, now); err != nil {
			return err
		}
	}

	recorded := aggregate.History()[before:]
	if len(recorded) == 0 {
		return nil
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	activityRepo := uow.ActivityLogRepository()
	for _, entry := range recorded {
		if err = recordActivity(ctx, activityRepo, actor, actionFor(entry.StatusType),
			order.EntityType, aggregate.ID(), describe(entry), now); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
