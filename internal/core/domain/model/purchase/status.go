package purchase

import (
	"fmt"
	"time"

	"backoffice/internal/core/domain/model/transition"
	"backoffice/internal/pkg/errs"
)

// Status is the lifecycle state of a purchase order. FAILED is declared for records
// written by other systems; no transition leads to it.
//
//	PENDING ──┬──> COMPLETED
//	          └──> CANCELLED
type Status string

const (
	Pending   Status = "PENDING"
	Completed Status = "COMPLETED"
	Cancelled Status = "CANCELLED"
	Failed    Status = "FAILED"
)

var machine = transition.MustNewMachine(transition.StatusTypeOrder, []transition.Rule[Status]{
	{From: Pending, To: []Status{Completed, Cancelled}},
	{From: Completed},
	{From: Cancelled},
	{From: Failed},
})

// StatusMachine returns the purchase transition table.
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

// Statuses returns every purchase status in table order.
func Statuses() []Status {
	return machine.States()
}

// ParseStatus accepts only the upper-case names above.
func ParseStatus(s string) (Status, error) {
	status := Status(s)
	if err := status.Validate(); err != nil {
		return "", err
	}
	return status, nil
}

func (s Status) Validate() error {
	if !machine.Knows(s) {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a purchase status", string(s)))
	}
	return nil
}

func (s Status) String() string {
	return string(s)
}

// IsTerminal reports whether s has no outgoing transitions.
func (s Status) IsTerminal() bool {
	return machine.IsTerminal(s)
}
