package kernel

import (
	"errors"
	"fmt"
	"math"

	"backoffice/internal/pkg/errs"
	"backoffice/internal/pkg/guard"
)

var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError("money must be created via NewMoney")

// Money is an amount in minor currency units (cents). It is never negative.
type Money struct { //nolint:recvcheck // pointer receiver only on the setter
	amount int64
	guard  guard.ConstructorGuard
}

func NewMoney(amount int64) (Money, error) {
	m := Money{guard: guard.NewConstructorGuard()}
	if err := m.setAmount(amount); err != nil {
		return Money{}, err
	}
	return m, nil
}

// ZeroMoney is a constructed zero amount.
func ZeroMoney() Money {
	return Money{guard: guard.NewConstructorGuard()}
}

func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}

func (m Money) Amount() int64 {
	return m.amount
}

// Add sums two amounts, failing on overflow.
func (m Money) Add(other Money) (Money, error) {
	if err := errors.Join(m.Validate(), other.Validate()); err != nil {
		return Money{}, err
	}
	if other.amount > math.MaxInt64-m.amount {
		return Money{}, errs.NewValueIsOutOfRangeError("amount", "overflow", 0, int64(math.MaxInt64))
	}
	return NewMoney(m.amount + other.amount)
}

// Multiply scales the amount by a non-negative factor, failing on overflow.
func (m Money) Multiply(factor int64) (Money, error) {
	if err := m.Validate(); err != nil {
		return Money{}, err
	}
	if factor < 0 {
		return Money{}, errs.NewValueIsOutOfRangeError("factor", factor, 0, int64(math.MaxInt64))
	}
	if factor != 0 && m.amount > math.MaxInt64/factor {
		return Money{}, errs.NewValueIsOutOfRangeError("amount", "overflow", 0, int64(math.MaxInt64))
	}
	return NewMoney(m.amount * factor)
}

func (m Money) String() string {
	return fmt.Sprintf("%d.%02d", m.amount/100, m.amount%100)
}

func (m *Money) setAmount(amount int64) error {
	if amount < 0 {
		return errs.NewValueIsOutOfRangeError("amount", amount, 0, int64(math.MaxInt64))
	}
	m.amount = amount
	return nil
}
