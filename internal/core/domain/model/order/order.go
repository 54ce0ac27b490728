package order

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/transition"
	"backoffice/internal/pkg/errs"
)

// EntityType names orders in history rows, activity logs and events.
const EntityType = "order"

const CustomerMaxLength = 200

var ErrOrderIsNotConstructed = errors.New("order must be created via NewOrder or RestoreOrder")

// Order is the sales order aggregate root.
type Order struct {
	id             kernel.UUID
	customer       string
	lines          []kernel.LineItem
	total          kernel.Money
	status         Status
	paymentStatus  PaymentStatus
	shippingStatus ShippingStatus

	history          []transition.Entry
	persistedHistory int
	changes          []transition.Entry

	createdAt time.Time
	updatedAt time.Time
	version   int64

	isConstructed bool
}

// NewOrder submits a new order: PENDING, UNPAID, NOT_SHIPPED, version 1.
func NewOrder(id kernel.UUID, customer string, lines []kernel.LineItem, now time.Time) (*Order, error) {
	o := &Order{
		status:         Pending,
		paymentStatus:  Unpaid,
		shippingStatus: NotShipped,
		createdAt:      now.UTC(),
		updatedAt:      now.UTC(),
		version:        1,
		isConstructed:  true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomer(customer),
		o.setLines(lines),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Snapshot is the persisted state of an order.
type Snapshot struct {
	ID             kernel.UUID
	Customer       string
	Lines          []kernel.LineItem
	Status         Status
	PaymentStatus  PaymentStatus
	ShippingStatus ShippingStatus
	History        []transition.Entry
	CreatedAt      time.Time
	UpdatedAt      time.Time
	Version        int64
}

// RestoreOrder rebuilds an order loaded from storage. The loaded history counts as persisted.
func RestoreOrder(s Snapshot) (*Order, error) {
	o := &Order{
		history:          slices.Clone(s.History),
		persistedHistory: len(s.History),
		createdAt:        s.CreatedAt,
		updatedAt:        s.UpdatedAt,
		version:          s.Version,
		isConstructed:    true,
	}

	if err := errors.Join(
		o.setID(s.ID),
		o.setCustomer(s.Customer),
		o.setLines(s.Lines),
		s.Status.Validate(),
		s.PaymentStatus.Validate(),
		s.ShippingStatus.Validate(),
	); err != nil {
		return nil, err
	}

	o.status = s.Status
	o.paymentStatus = s.PaymentStatus
	o.shippingStatus = s.ShippingStatus
	return o, nil
}

func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) EntityType() string { return EntityType }

func (o *Order) ID() kernel.UUID { return o.id }

func (o *Order) Customer() string { return o.customer }

func (o *Order) Lines() []kernel.LineItem { return slices.Clone(o.lines) }

func (o *Order) Total() kernel.Money { return o.total }

func (o *Order) Status() Status { return o.status }

func (o *Order) PaymentStatus() PaymentStatus { return o.paymentStatus }

func (o *Order) ShippingStatus() ShippingStatus { return o.shippingStatus }

func (o *Order) CreatedAt() time.Time { return o.createdAt }

func (o *Order) UpdatedAt() time.Time { return o.updatedAt }

// Version is the optimistic concurrency token the order was loaded (or created) with.
func (o *Order) Version() int64 { return o.version }

// AllowedNextStatuses is AllowedNextStates for the current status.
func (o *Order) AllowedNextStatuses() []Status {
	return AllowedNextStates(o.status)
}

// History returns a copy of every recorded change, oldest first.
func (o *Order) History() []transition.Entry {
	return slices.Clone(o.history)
}

// UnpersistedHistory returns the entries appended since the order was loaded or last saved.
func (o *Order) UnpersistedHistory() []transition.Entry {
	return slices.Clone(o.history[o.persistedHistory:])
}

// PersistedHistoryLen is the sequence number the first unpersisted entry will take.
func (o *Order) PersistedHistoryLen() int {
	return o.persistedHistory
}

// MarkPersisted is called by the repository after a successful write.
func (o *Order) MarkPersisted(version int64) {
	o.persistedHistory = len(o.history)
	o.version = version
}

// PullStatusChanges drains the changes recorded since the last call.
func (o *Order) PullStatusChanges() []transition.Entry {
	changes := o.changes
	o.changes = nil
	return changes
}

// ChangeStatus moves the order along the transition table. A rejected change
// leaves the order untouched.
func (o *Order) ChangeStatus(requested Status, actor string, now time.Time) error {
	if err := o.Validate(); err != nil {
		return err
	}
	who, err := kernel.NewActor(actor)
	if err != nil {
		return err
	}

	next, entry, err := Transition(o.status, requested, who.String(), now.UTC())
	if err != nil {
		return err
	}

	o.status = next
	o.record(entry)
	return nil
}

// ChangePaymentStatus sets the payment status. It reports false when requested
// equals the current value, in which case nothing is recorded.
func (o *Order) ChangePaymentStatus(requested PaymentStatus, actor string, now time.Time) (bool, error) {
	if err := o.Validate(); err != nil {
		return false, err
	}
	who, err := kernel.NewActor(actor)
	if err != nil {
		return false, err
	}
	if err = requested.Validate(); err != nil {
		return false, err
	}
	if requested == o.paymentStatus {
		return false, nil
	}

	entry := transition.NewEntry(transition.StatusTypePayment, o.paymentStatus, requested, who.String(), now.UTC())
	o.paymentStatus = requested
	o.record(entry)
	return true, nil
}

// ChangeShippingStatus sets the shipping status, with the same no-op rule as payment.
func (o *Order) ChangeShippingStatus(requested ShippingStatus, actor string, now time.Time) (bool, error) {
	if err := o.Validate(); err != nil {
		return false, err
	}
	who, err := kernel.NewActor(actor)
	if err != nil {
		return false, err
	}
	if err = requested.Validate(); err != nil {
		return false, err
	}
	if requested == o.shippingStatus {
		return false, nil
	}

	entry := transition.NewEntry(transition.StatusTypeShipping, o.shippingStatus, requested, who.String(), now.UTC())
	o.shippingStatus = requested
	o.record(entry)
	return true, nil
}

func (o *Order) record(entry transition.Entry) {
	o.history = append(o.history, entry)
	o.changes = append(o.changes, entry)
	o.updatedAt = entry.Timestamp
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomer(customer string) error {
	customer = strings.TrimSpace(customer)
	if customer == "" {
		return errs.NewValueIsRequiredError("customer")
	}
	if len(customer) > CustomerMaxLength {
		return errs.NewValueIsOutOfRangeError("customer length", len(customer), 1, CustomerMaxLength)
	}
	o.customer = customer
	return nil
}

func (o *Order) setLines(lines []kernel.LineItem) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("lines")
	}
	total, err := kernel.SumLineItems(lines)
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause("lines", fmt.Errorf("cannot total lines: %w", err))
	}
	o.lines = slices.Clone(lines)
	o.total = total
	return nil
}
