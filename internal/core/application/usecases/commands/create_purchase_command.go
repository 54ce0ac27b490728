package commands

import (
	"errors"
	"strings"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/pkg/errs"
	"backoffice/internal/pkg/guard"
)

var ErrCreatePurchaseCommandIsNotConstructed = errors.New(
	"CreatePurchaseCommand must be created via NewCreatePurchaseCommand constructor",
)

type CreatePurchaseCommand struct {
	purchaseID kernel.UUID
	supplier   string
	actor      kernel.Actor
	lines      []kernel.LineItem

	guard guard.ConstructorGuard
}

func NewCreatePurchaseCommand(
	purchaseID kernel.UUID,
	supplier, actor string,
	lines []LineInput,
) (CreatePurchaseCommand, error) {
	who, actorErr := kernel.NewActor(actor)
	items, linesErr := toLineItems(lines)

	var supplierErr error
	if strings.TrimSpace(supplier) == "" {
		supplierErr = errs.NewValueIsRequiredError("supplier")
	}

	if err := errors.Join(purchaseID.Validate(), supplierErr, actorErr, linesErr); err != nil {
		return CreatePurchaseCommand{}, err
	}

	return CreatePurchaseCommand{
		purchaseID: purchaseID,
		supplier:   supplier,
		actor:      who,
		lines:      items,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c CreatePurchaseCommand) Validate() error {
	return c.guard.Validate(ErrCreatePurchaseCommandIsNotConstructed)
}

func (c CreatePurchaseCommand) PurchaseID() kernel.UUID { return c.purchaseID }

func (c CreatePurchaseCommand) Supplier() string { return c.supplier }

func (c CreatePurchaseCommand) Actor() kernel.Actor { return c.actor }

func (c CreatePurchaseCommand) Lines() []kernel.LineItem { return c.lines }
