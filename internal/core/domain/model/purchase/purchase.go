// Package purchase contains the purchase order aggregate: goods bought from a supplier,
// moving PENDING -> COMPLETED or CANCELLED.
package purchase

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

// EntityType names purchases in history rows, activity logs and events.
const EntityType = "purchase"

const SupplierMaxLength = 200

var ErrPurchaseIsNotConstructed = errors.New("purchase must be created via NewPurchase or RestorePurchase")

// Purchase is the purchase order aggregate root.
type Purchase struct {
	id       kernel.UUID
	supplier string
	lines    []kernel.LineItem
	total    kernel.Money
	status   Status

	history          []transition.Entry
	persistedHistory int
	changes          []transition.Entry

	createdAt time.Time
	updatedAt time.Time
	version   int64

	isConstructed bool
}

// NewPurchase records a new purchase order: PENDING, version 1.
func NewPurchase(id kernel.UUID, supplier string, lines []kernel.LineItem, now time.Time) (*Purchase, error) {
	p := &Purchase{
		status:        Pending,
		createdAt:     now.UTC(),
		updatedAt:     now.UTC(),
		version:       1,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setSupplier(supplier),
		p.setLines(lines),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// Snapshot is the persisted state of a purchase.
type Snapshot struct {
	ID        kernel.UUID
	Supplier  string
	Lines     []kernel.LineItem
	Status    Status
	History   []transition.Entry
	CreatedAt time.Time
	UpdatedAt time.Time
	Version   int64
}

// RestorePurchase rebuilds a purchase loaded from storage. The loaded history counts as persisted.
func RestorePurchase(s Snapshot) (*Purchase, error) {
	p := &Purchase{
		history:          slices.Clone(s.History),
		persistedHistory: len(s.History),
		createdAt:        s.CreatedAt,
		updatedAt:        s.UpdatedAt,
		version:          s.Version,
		isConstructed:    true,
	}

	if err := errors.Join(
		p.setID(s.ID),
		p.setSupplier(s.Supplier),
		p.setLines(s.Lines),
		s.Status.Validate(),
	); err != nil {
		return nil, err
	}

	p.status = s.Status
	return p, nil
}

func (p *Purchase) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPurchaseIsNotConstructed
	}
	return nil
}

func (p *Purchase) EntityType() string { return EntityType }

func (p *Purchase) ID() kernel.UUID { return p.id }

func (p *Purchase) Supplier() string { return p.supplier }

func (p *Purchase) Lines() []kernel.LineItem { return slices.Clone(p.lines) }

func (p *Purchase) Total() kernel.Money { return p.total }

func (p *Purchase) Status() Status { return p.status }

func (p *Purchase) CreatedAt() time.Time { return p.createdAt }

func (p *Purchase) UpdatedAt() time.Time { return p.updatedAt }

// Version is the optimistic concurrency token the purchase was loaded (or created) with.
func (p *Purchase) Version() int64 { return p.version }

// AllowedNextStatuses is AllowedNextStates for the current status.
func (p *Purchase) AllowedNextStatuses() []Status {
	return AllowedNextStates(p.status)
}

// History returns a copy of every recorded change, oldest first.
func (p *Purchase) History() []transition.Entry {
	return slices.Clone(p.history)
}

// UnpersistedHistory returns the entries appended since the purchase was loaded or last saved.
func (p *Purchase) UnpersistedHistory() []transition.Entry {
	return slices.Clone(p.history[p.persistedHistory:])
}

// PersistedHistoryLen is the sequence number the first unpersisted entry will take.
func (p *Purchase) PersistedHistoryLen() int {
	return p.persistedHistory
}

// MarkPersisted is called by the repository after a successful write.
func (p *Purchase) MarkPersisted(version int64) {
	p.persistedHistory = len(p.history)
	p.version = version
}

// PullStatusChanges drains the changes recorded since the last call.
func (p *Purchase) PullStatusChanges() []transition.Entry {
	changes := p.changes
	p.changes = nil
	return changes
}

// ChangeStatus applies the purchase transition table; rejected changes leave p untouched.
func (p *Purchase) ChangeStatus(requested Status, actor string, now time.Time) error {
	if err := p.Validate(); err != nil {
		return err
	}
	who, err := kernel.NewActor(actor)
	if err != nil {
		return err
	}

	next, entry, err := Transition(p.status, requested, who.String(), now.UTC())
	if err != nil {
		return err
	}

	p.status = next
	p.history = append(p.history, entry)
	p.changes = append(p.changes, entry)
	p.updatedAt = entry.Timestamp
	return nil
}

func (p *Purchase) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Purchase) setSupplier(supplier string) error {
	supplier = strings.TrimSpace(supplier)
	if supplier == "" {
		return errs.NewValueIsRequiredError("supplier")
	}
	if len(supplier) > SupplierMaxLength {
		return errs.NewValueIsOutOfRangeError("supplier length", len(supplier), 1, SupplierMaxLength)
	}
	p.supplier = supplier
	return nil
}

func (p *Purchase) setLines(lines []kernel.LineItem) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("lines")
	}
	total, err := kernel.SumLineItems(lines)
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause("lines", fmt.Errorf("cannot total lines: %w", err))
	}
	p.lines = slices.Clone(lines)
	p.total = total
	return nil
}
