package transition

import "time"

// StatusType tells which status field of an aggregate an Entry refers to.
type StatusType string

const (
	StatusTypeOrder    StatusType = "order"
	StatusTypePayment  StatusType = "payment"
	StatusTypeShipping StatusType = "shipping"
)

func (t StatusType) String() string {
	return string(t)
}

// Entry is one immutable audit record of a status change.
type Entry struct {
	Timestamp  time.Time
	Actor      string
	StatusType StatusType
	OldStatus  string
	NewStatus  string
}

// NewEntry builds an Entry from typed statuses.
func NewEntry[S ~string](statusType StatusType, from, to S, actor string, now time.Time) Entry {
	return Entry{
		Timestamp:  now,
		Actor:      actor,
		StatusType: statusType,
		OldStatus:  string(from),
		NewStatus:  string(to),
	}
}
