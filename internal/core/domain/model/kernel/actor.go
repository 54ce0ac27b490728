package kernel

import (
	"strings"

	"backoffice/internal/pkg/errs"
)

const ActorMaxLength = 128

// Actor names whoever requested a change (an operator login or a job name).
type Actor string

// NewActor trims name and rejects blanks.
func NewActor(name string) (Actor, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", errs.NewValueIsRequiredError("actor")
	}
	if len(name) > ActorMaxLength {
		return "", errs.NewValueIsOutOfRangeError("actor length", len(name), 1, ActorMaxLength)
	}
	return Actor(name), nil
}

func (a Actor) String() string {
	return string(a)
}
