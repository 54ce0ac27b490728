package commands

import (
	"context"
	"time"

	"backoffice/internal/core/domain/model/activity"
	"backoffice/internal/core/domain/model/order"
)

// CreateOrderCommandHandler stores a new PENDING order and its "created" activity record.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	now := time.Now().UTC()
	aggregate, err := order.NewOrder(cmd.OrderID(), cmd.Customer(), cmd.Lines(), now)
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

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	if err = recordActivity(ctx, uow.ActivityLogRepository(), cmd.Actor().String(), activity.ActionCreated,
		order.EntityType, aggregate.ID(), "order created for "+aggregate.Customer(), now); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
