// Package postgres provides the GORM implementation of the unit of work.
//
// A unit of work wraps one database transaction. Repositories obtained from it
// share that transaction and register every aggregate they save. Once Commit
// succeeds, the status changes recorded on those aggregates are drained and
// handed to the configured StatusEventPublisher. A failed publish is logged and
// does not undo the commit.
//
// Usage:
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	if err := uow.OrderRepository().Update(ctx, o); err != nil {
//	    return err
//	}
//	return uow.Commit(ctx)
package postgres

import (
	"context"
	"log/slog"

	"backoffice/internal/adapters/out/postgres/activitylogrepo"
	"backoffice/internal/adapters/out/postgres/orderrepo"
	"backoffice/internal/adapters/out/postgres/purchaserepo"
	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/transition"
	"backoffice/internal/core/ports"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate any
}

// statusChangeSource is implemented by aggregates that record status history.
type statusChangeSource interface {
	EntityType() string
	ID() kernel.UUID
	PullStatusChanges() []transition.Entry
}

type GormUnitOfWorkFactory struct {
	db        *gorm.DB
	publisher ports.StatusEventPublisher
	logger    *slog.Logger
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work instances.
// A nil publisher disables event delivery.
func NewGormUnitOfWorkFactory(
	db *gorm.DB,
	publisher ports.StatusEventPublisher,
	logger *slog.Logger,
) *GormUnitOfWorkFactory {
	if logger == nil {
		logger = slog.Default()
	}
	return &GormUnitOfWorkFactory{db: db, publisher: publisher, logger: logger}
}

// Create produces a unit of work with its own transaction state and tracking list.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		publisher:         f.publisher,
		logger:            f.logger,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	publisher         ports.StatusEventPublisher
	logger            *slog.Logger
	trackedAggregates []trackedAggregate
}

// Begin starts a transaction. Calling it again while one is active is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return err
	}

	return nil
}

// Commit finalizes the transaction and then publishes the status changes of
// every tracked aggregate.
func (uow *GormUnitOfWork) Commit(ctx context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	if err != nil {
		uow.trackedAggregates = uow.trackedAggregates[:0]
		return err
	}

	uow.publishTracked(ctx)
	return nil
}

// Rollback discards the transaction and forgets tracked aggregates.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	uow.trackedAggregates = uow.trackedAggregates[:0]
	return err
}

func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) PurchaseRepository() ports.PurchaseRepository {
	return purchaserepo.NewGormPurchaseRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) ActivityLogRepository() ports.ActivityLogRepository {
	return activitylogrepo.NewGormActivityLogRepository(uow.conn())
}

// TrackAggregate registers an aggregate saved within this unit of work.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

func (uow *GormUnitOfWork) publishTracked(ctx context.Context) {
	tracked := uow.trackedAggregates
	uow.trackedAggregates = make([]trackedAggregate, 0)

	events := collectEvents(tracked)
	if len(events) == 0 || uow.publisher == nil {
		return
	}

	if err := uow.publisher.Publish(ctx, events...); err != nil {
		uow.logger.ErrorContext(ctx, "failed to publish status events",
			slog.Int("count", len(events)),
			slog.Any("error", err))
	}
}

// collectEvents drains pending status changes. An aggregate saved twice in the
// same unit of work contributes its changes once.
func collectEvents(tracked []trackedAggregate) []ports.StatusChangedEvent {
	var events []ports.StatusChangedEvent
	for _, t := range tracked {
		source, ok := t.Aggregate.(statusChangeSource)
		if !ok {
			continue
		}
		for _, e := range source.PullStatusChanges() {
			events = append(events, ports.StatusChangedEvent{
				EventID:    uuid.NewString(),
				EntityType: source.EntityType(),
				EntityID:   source.ID().String(),
				StatusType: string(e.StatusType),
				OldStatus:  e.OldStatus,
				NewStatus:  e.NewStatus,
				Actor:      e.Actor,
				OccurredAt: e.Timestamp,
			})
		}
	}
	return events
}
