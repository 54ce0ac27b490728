package commands

import (
	"errors"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/purchase"
	"backoffice/internal/pkg/guard"
)

var ErrChangePurchaseStatusCommandIsNotConstructed = errors.New(
	"ChangePurchaseStatusCommand must be created via NewChangePurchaseStatusCommand constructor",
)

type ChangePurchaseStatusCommand struct {
	purchaseID kernel.UUID
	status     purchase.Status
	actor      kernel.Actor

	guard guard.ConstructorGuard
}

func NewChangePurchaseStatusCommand(purchaseID kernel.UUID, status, actor string) (ChangePurchaseStatusCommand, error) {
	requested, statusErr := purchase.ParseStatus(status)
	who, actorErr := kernel.NewActor(actor)

	if err := errors.Join(purchaseID.Validate(), statusErr, actorErr); err != nil {
		return ChangePurchaseStatusCommand{}, err
	}

	return ChangePurchaseStatusCommand{
		purchaseID: purchaseID,
		status:     requested,
		actor:      who,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c ChangePurchaseStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangePurchaseStatusCommandIsNotConstructed)
}

func (c ChangePurchaseStatusCommand) PurchaseID() kernel.UUID { return c.purchaseID }

func (c ChangePurchaseStatusCommand) Status() purchase.Status { return c.status }

func (c ChangePurchaseStatusCommand) Actor() kernel.Actor { return c.actor }
