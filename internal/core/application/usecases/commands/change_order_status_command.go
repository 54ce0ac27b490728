package commands

import (
	"errors"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"
	"backoffice/internal/pkg/guard"
)

var ErrChangeOrderStatusCommandIsNotConstructed = errors.New(
	"ChangeOrderStatusCommand must be created via NewChangeOrderStatusCommand constructor",
)

type ChangeOrderStatusCommand struct {
	orderID kernel.UUID
	status  order.Status
	actor   kernel.Actor

	guard guard.ConstructorGuard
}

// NewChangeOrderStatusCommand checks that status is a known order status. Whether the
// change is allowed from the current status is decided by the aggregate.
func NewChangeOrderStatusCommand(orderID kernel.UUID, status string, actor string) (ChangeOrderStatusCommand, error) {
	requested, statusErr := order.ParseStatus(status)
	who, actorErr := kernel.NewActor(actor)

	if err := errors.Join(orderID.Validate(), statusErr, actorErr); err != nil {
		return ChangeOrderStatusCommand{}, err
	}

	return ChangeOrderStatusCommand{
		orderID: orderID,
		status:  requested,
		actor:   who,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c ChangeOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderStatusCommandIsNotConstructed)
}

func (c ChangeOrderStatusCommand) OrderID() kernel.UUID { return c.orderID }

func (c ChangeOrderStatusCommand) Status() order.Status { return c.status }

func (c ChangeOrderStatusCommand) Actor() kernel.Actor { return c.actor }
