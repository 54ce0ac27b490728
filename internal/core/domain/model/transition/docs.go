// Package transition implements table-driven status machines.
//
// A Machine is built once from an ordered list of rules (status -> allowed next
// statuses) and never changes afterwards, so it is safe for concurrent use. It decides
// whether a change is legal and describes the change as an Entry; it persists nothing.
//
//	m := transition.MustNewMachine(transition.StatusTypeOrder, []transition.Rule[Status]{
//	    {From: Pending, To: []Status{Shipping, Cancelled}},
//	    {From: Shipping},
//	    {From: Cancelled},
//	})
//	next, entry, err := m.Transition(Pending, Shipping, "alice", time.Now())
package transition
