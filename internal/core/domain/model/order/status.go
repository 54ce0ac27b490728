package order

import (
	"fmt"
	"time"

	"backoffice/internal/core/domain/model/transition"
	"backoffice/internal/pkg/errs"
)

// Status is the primary lifecycle state of a sales order.
//
//	PENDING ──> SHIPPING ──┬──> SHIPPED ───┐
//	   │           │       └──> PICKED_UP ─┴──> FAILED
//	   └───────────┴──> CANCELLED
type Status string

const (
	Pending   Status = "PENDING"
	Shipping  Status = "SHIPPING"
	Shipped   Status = "SHIPPED"
	PickedUp  Status = "PICKED_UP"
	Cancelled Status = "CANCELLED"
	Failed    Status = "FAILED"
)

var machine = transition.MustNewMachine(transition.StatusTypeOrder, []transition.Rule[Status]{
	{From: Pending, To: []Status{Shipping, Cancelled}},
	{From: Shipping, To: []Status{Shipped, PickedUp, Cancelled}},
	{From: Shipped, To: []Status{Failed}},
	{From: PickedUp, To: []Status{Failed}},
	{From: Cancelled},
	{From: Failed},
})

// StatusMachine returns the sales order transition table.
func StatusMachine() *transition.Machine[Status] {
	return machine
}

// AllowedNextStates lists the statuses current may change to; empty for terminal statuses.
func AllowedNextStates(current Status) []Status {
	return machine.AllowedNextStates(current)
}

// Transition validates current -> requested and returns the history entry to append.
func Transition(current, requested Status, actor string, now time.Time) (Status, transition.Entry, error) {
	return machine.Transition(current, requested, actor, now)
}

// Statuses returns every order status in lifecycle order.
func Statuses() []Status {
	return machine.States()
}

func ParseStatus(s string) (Status, error) {
	status := Status(s)
	if err := status.Validate(); err != nil {
		return "", err
	}
	return status, nil
}

func (s Status) Validate() error {
	if !machine.Knows(s) {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not an order status", string(s)))
	}
	return nil
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsTerminal() bool {
	return machine.IsTerminal(s)
}
