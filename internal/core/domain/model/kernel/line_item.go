package kernel

import (
	"errors"
	"strings"

	"backoffice/internal/pkg/errs"
	"backoffice/internal/pkg/guard"
)

const (
	LineItemMinQuantity = 1
	LineItemMaxQuantity = 100_000
	LineItemMaxSKU      = 64
)

var ErrLineItemIsNotConstructed = errs.NewValueIsRequiredError("line item must be created via NewLineItem")

// LineItem is one product line of an order or purchase.
type LineItem struct { //nolint:recvcheck // pointer receivers only on setters
	sku       string
	quantity  int
	unitPrice Money
	guard     guard.ConstructorGuard
}

func NewLineItem(sku string, quantity int, unitPrice Money) (LineItem, error) {
	li := LineItem{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		li.setSKU(sku),
		li.setQuantity(quantity),
		li.setUnitPrice(unitPrice),
	); err != nil {
		return LineItem{}, err
	}

	return li, nil
}

func (li LineItem) Validate() error {
	return li.guard.Validate(ErrLineItemIsNotConstructed)
}

func (li LineItem) SKU() string {
	return li.sku
}

func (li LineItem) Quantity() int {
	return li.quantity
}

func (li LineItem) UnitPrice() Money {
	return li.unitPrice
}

// Subtotal is quantity times unit price.
func (li LineItem) Subtotal() (Money, error) {
	if err := li.Validate(); err != nil {
		return Money{}, err
	}
	return li.unitPrice.Multiply(int64(li.quantity))
}

func (li *LineItem) setSKU(sku string) error {
	sku = strings.TrimSpace(sku)
	if sku == "" {
		return errs.NewValueIsRequiredError("sku")
	}
	if len(sku) > LineItemMaxSKU {
		return errs.NewValueIsOutOfRangeError("sku length", len(sku), 1, LineItemMaxSKU)
	}
	li.sku = sku
	return nil
}

func (li *LineItem) setQuantity(quantity int) error {
	if quantity < LineItemMinQuantity || quantity > LineItemMaxQuantity {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, LineItemMinQuantity, LineItemMaxQuantity)
	}
	li.quantity = quantity
	return nil
}

func (li *LineItem) setUnitPrice(price Money) error {
	if err := price.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("unitPrice", err)
	}
	li.unitPrice = price
	return nil
}

// SumLineItems totals the subtotals of items.
func SumLineItems(items []LineItem) (Money, error) {
	total := ZeroMoney()
	for _, item := range items {
		subtotal, err := item.Subtotal()
		if err != nil {
			return Money{}, err
		}
		if total, err = total.Add(subtotal); err != nil {
			return Money{}, err
		}
	}
	return total, nil
}
