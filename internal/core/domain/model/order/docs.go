// Package order contains the sales order aggregate.
//
// The primary Status follows a fixed transition table (see Transition); PaymentStatus and
// ShippingStatus are set freely. Every effective change appends a transition.Entry to the
// order's history, which is never rewritten. Entries recorded since the last save are
// exposed by UnpersistedHistory, and PullStatusChanges drains them for event publishing.
//
// Orders are never deleted; CANCELLED and FAILED are terminal.
package order
