package transition

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"backoffice/internal/pkg/errs"
)

// Rule lists the statuses From may change to. An empty To marks a terminal status.
type Rule[S ~string] struct {
	From S
	To   []S
}

// Machine validates status changes against an immutable transition table.
type Machine[S ~string] struct {
	statusType StatusType
	states     []S
	next       map[S][]S
}

// NewMachine copies rules into a new Machine. Every target must itself be declared
// as a From, and neither sources nor targets may repeat.
func NewMachine[S ~string](statusType StatusType, rules []Rule[S]) (*Machine[S], error) {
	if statusType == "" {
		return nil, errs.NewValueIsRequiredError("statusType")
	}
	if len(rules) == 0 {
		return nil, errs.NewValueIsRequiredError("rules")
	}

	m := &Machine[S]{
		statusType: statusType,
		states:     make([]S, 0, len(rules)),
		next:       make(map[S][]S, len(rules)),
	}

	for _, r := range rules {
		if r.From == "" {
			return nil, errs.NewValueIsRequiredError("rule source")
		}
		if _, dup := m.next[r.From]; dup {
			return nil, errs.NewValueIsInvalidErrorWithCause("rules", fmt.Errorf("%s declared twice", r.From))
		}
		m.states = append(m.states, r.From)
		m.next[r.From] = slices.Clone(r.To)
	}

	var problems []error
	for _, from := range m.states {
		targets := m.next[from]
		for i, to := range targets {
			if _, known := m.next[to]; !known {
				problems = append(problems,
					errs.NewValueIsInvalidErrorWithCause("rules", fmt.Errorf("%s -> %s targets an undeclared status", from, to)))
			}
			if slices.Index(targets, to) != i {
				problems = append(problems,
					errs.NewValueIsInvalidErrorWithCause("rules", fmt.Errorf("%s -> %s listed twice", from, to)))
			}
		}
	}
	if err := errors.Join(problems...); err != nil {
		return nil, err
	}

	return m, nil
}

// MustNewMachine is NewMachine for package-level tables; it panics on a bad table.
func MustNewMachine[S ~string](statusType StatusType, rules []Rule[S]) *Machine[S] {
	m, err := NewMachine(statusType, rules)
	if err != nil {
		panic(err)
	}
	return m
}

func (m *Machine[S]) StatusType() StatusType {
	return m.statusType
}

// States returns every declared status in table order.
func (m *Machine[S]) States() []S {
	return slices.Clone(m.states)
}

// Knows reports whether s is declared in the table.
func (m *Machine[S]) Knows(s S) bool {
	_, ok := m.next[s]
	return ok
}

// AllowedNextStates returns the statuses current may change to, in table order.
// The result is empty for terminal and unknown statuses and is always a fresh slice.
func (m *Machine[S]) AllowedNextStates(current S) []S {
	targets := m.next[current]
	out := make([]S, len(targets))
	copy(out, targets)
	return out
}

func (m *Machine[S]) CanTransition(current, requested S) bool {
	return slices.Contains(m.next[current], requested)
}

// IsTerminal reports whether s is declared and has no outgoing transitions.
func (m *Machine[S]) IsTerminal(s S) bool {
	targets, ok := m.next[s]
	return ok && len(targets) == 0
}

// TerminalStates returns the terminal statuses in table order.
func (m *Machine[S]) TerminalStates() []S {
	var out []S
	for _, s := range m.states {
		if len(m.next[s]) == 0 {
			out = append(out, s)
		}
	}
	return out
}

// Transition checks requested against the table. On success it returns requested
// and the history entry to append. On failure it returns *errs.InvalidTransitionError
// and the zero status.
func (m *Machine[S]) Transition(current, requested S, actor string, now time.Time) (S, Entry, error) {
	if !m.CanTransition(current, requested) {
		var zero S
		return zero, Entry{}, errs.NewInvalidTransitionError(string(current), string(requested))
	}
	return requested, NewEntry(m.statusType, current, requested, actor, now), nil
}
