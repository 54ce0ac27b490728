package commands

import (
	"errors"
	"strings"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/pkg/errs"
	"backoffice/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand submits a sales order. The caller chooses the id so that the
// HTTP layer can answer with it without a read-back.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	customer string
	actor    kernel.Actor
	lines    []kernel.LineItem

	guard guard.ConstructorGuard
}

func NewCreateOrderCommand(orderID kernel.UUID, customer, actor string, lines []LineInput) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{guard: guard.NewConstructorGuard()}

	var actorErr, linesErr error
	cmd.actor, actorErr = kernel.NewActor(actor)
	cmd.lines, linesErr = toLineItems(lines)

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomer(customer),
		actorErr,
		linesErr,
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) OrderID() kernel.UUID { return c.orderID }

func (c CreateOrderCommand) Customer() string { return c.customer }

func (c CreateOrderCommand) Actor() kernel.Actor { return c.actor }

func (c CreateOrderCommand) Lines() []kernel.LineItem { return c.lines }

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setCustomer(customer string) error {
	if strings.TrimSpace(customer) == "" {
		return errs.NewValueIsRequiredError("customer")
	}
	c.customer = customer
	return nil
}
