package commands

import (
	"errors"
	"fmt"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/pkg/errs"
)

const MaxLinesPerDocument = 200

// LineInput is a raw order or purchase line as received from a client.
type LineInput struct {
	SKU       string
	Quantity  int
	UnitPrice int64
}

func toLineItems(inputs []LineInput) ([]kernel.LineItem, error) {
	if len(inputs) == 0 {
		return nil, errs.NewValueIsRequiredError("lines")
	}
	if len(inputs) > MaxLinesPerDocument {
		return nil, errs.NewValueIsOutOfRangeError("lines", len(inputs), 1, MaxLinesPerDocument)
	}

	items := make([]kernel.LineItem, 0, len(inputs))
	var problems []error
	for i, in := range inputs {
		price, err := kernel.NewMoney(in.UnitPrice)
		if err != nil {
			problems = append(problems, fmt.Errorf("line %d: %w", i, err))
			continue
		}
		item, err := kernel.NewLineItem(in.SKU, in.Quantity, price)
		if err != nil {
			problems = append(problems, fmt.Errorf("line %d: %w", i, err))
			continue
		}
		items = append(items, item)
	}
	if err := errors.Join(problems...); err != nil {
		return nil, err
	}
	return items, nil
}
