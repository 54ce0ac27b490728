package commands

import (
	"errors"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"
	"backoffice/internal/pkg/errs"
	"backoffice/internal/pkg/guard"
)

var ErrChangeOrderTrackingStatusCommandIsNotConstructed = errors.New(
	"ChangeOrderTrackingStatusCommand must be created via NewChangeOrderTrackingStatusCommand constructor",
)

// ChangeOrderTrackingStatusCommand sets the payment and/or shipping status. Empty
// strings leave the corresponding field alone; at least one must be given.
type ChangeOrderTrackingStatusCommand struct {
	orderID        kernel.UUID
	paymentStatus  order.PaymentStatus
	shippingStatus order.ShippingStatus
	actor          kernel.Actor

	guard guard.ConstructorGuard
}

func NewChangeOrderTrackingStatusCommand(
	orderID kernel.UUID,
	paymentStatus string,
	shippingStatus string,
	actor string,
) (ChangeOrderTrackingStatusCommand, error) {
	cmd := ChangeOrderTrackingStatusCommand{
		paymentStatus:  order.PaymentStatus(paymentStatus),
		shippingStatus: order.ShippingStatus(shippingStatus),
		orderID:        orderID,
		guard:          guard.NewConstructorGuard(),
	}

	var problems []error
	problems = append(problems, orderID.Validate())
	if paymentStatus == "" && shippingStatus == "" {
		problems = append(problems, errs.NewValueIsRequiredError("paymentStatus or shippingStatus"))
	}
	if paymentStatus != "" {
		problems = append(problems, cmd.paymentStatus.Validate())
	}
	if shippingStatus != "" {
		problems = append(problems, cmd.shippingStatus.Validate())
	}
	var actorErr error
	cmd.actor, actorErr = kernel.NewActor(actor)
	problems = append(problems, actorErr)

	if err := errors.Join(problems...); err != nil {
		return ChangeOrderTrackingStatusCommand{}, err
	}
	return cmd, nil
}

func (c ChangeOrderTrackingStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderTrackingStatusCommandIsNotConstructed)
}

func (c ChangeOrderTrackingStatusCommand) OrderID() kernel.UUID { return c.orderID }

// PaymentStatus is empty when the payment status should not change.
func (c ChangeOrderTrackingStatusCommand) PaymentStatus() order.PaymentStatus {
	return c.paymentStatus
}

// ShippingStatus is empty when the shipping status should not change.
func (c ChangeOrderTrackingStatusCommand) ShippingStatus() order.ShippingStatus {
	return c.shippingStatus
}

func (c ChangeOrderTrackingStatusCommand) Actor() kernel.Actor { return c.actor }
