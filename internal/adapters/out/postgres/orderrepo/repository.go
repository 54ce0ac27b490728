package orderrepo

import (
	"context"
	"errors"
	"fmt"

	"backoffice/internal/adapters/out/postgres/statushistory"
	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"
	"backoffice/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts the order, its lines and any history recorded before the first save.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	if err := statushistory.Append(ctx, r.db, order.EntityType, aggregate.ID(),
		aggregate.PersistedHistoryLen(), aggregate.UnpersistedHistory()); err != nil {
		return err
	}

	aggregate.MarkPersisted(aggregate.Version())
	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update writes the status fields guarded by the loaded version and appends new
// history rows. Lines and customer are immutable after creation.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	next := aggregate.Version() + 1
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ? AND version = ?", aggregate.ID().Bytes(), aggregate.Version()).
		Updates(map[string]any{
			"status":          aggregate.Status().String(),
			"payment_status":  aggregate.PaymentStatus().String(),
			"shipping_status": aggregate.ShippingStatus().String(),
			"updated_at":      aggregate.UpdatedAt(),
			"version":         next,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return r.missingOrStale(ctx, aggregate.ID(), aggregate.Version())
	}

	if err := statushistory.Append(ctx, r.db, order.EntityType, aggregate.ID(),
		aggregate.PersistedHistoryLen(), aggregate.UnpersistedHistory()); err != nil {
		return err
	}

	aggregate.MarkPersisted(next)
	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Lines", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	history, err := statushistory.Load(ctx, r.db, order.EntityType, id)
	if err != nil {
		return nil, err
	}

	return toDomain(dto, history)
}

func (r *GormOrderRepository) missingOrStale(ctx context.Context, id kernel.UUID, version int64) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&OrderDTO{}).Where("id = ?", id.Bytes()).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return errs.NewObjectNotFoundError("order", id.String())
	}
	return errs.NewVersionIsInvalidErrorWithCause("order", fmt.Errorf("modified concurrently since version %d", version))
}
