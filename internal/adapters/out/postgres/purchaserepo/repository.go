package purchaserepo

import (
	"context"
	"errors"
	"fmt"

	"backoffice/internal/adapters/out/postgres/statushistory"
	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/purchase"
	"backoffice/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormPurchaseRepository implements ports.PurchaseRepository using GORM.
type GormPurchaseRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormPurchaseRepository(db *gorm.DB, tracker aggregateTracker) *GormPurchaseRepository {
	return &GormPurchaseRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormPurchaseRepository) Add(ctx context.Context, aggregate *purchase.Purchase) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	if err := statushistory.Append(ctx, r.db, purchase.EntityType, aggregate.ID(),
		aggregate.PersistedHistoryLen(), aggregate.UnpersistedHistory()); err != nil {
		return err
	}

	aggregate.MarkPersisted(aggregate.Version())
	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormPurchaseRepository) Update(ctx context.Context, aggregate *purchase.Purchase) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	next := aggregate.Version() + 1
	result := r.db.WithContext(ctx).Model(&PurchaseDTO{}).
		Where("id = ? AND version = ?", aggregate.ID().Bytes(), aggregate.Version()).
		Updates(map[string]any{
			"status":     aggregate.Status().String(),
			"updated_at": aggregate.UpdatedAt(),
			"version":    next,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).Model(&PurchaseDTO{}).
			Where("id = ?", aggregate.ID().Bytes()).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return errs.NewObjectNotFoundError("purchase", aggregate.ID().String())
		}
		return errs.NewVersionIsInvalidErrorWithCause("purchase",
			fmt.Errorf("modified concurrently since version %d", aggregate.Version()))
	}

	if err := statushistory.Append(ctx, r.db, purchase.EntityType, aggregate.ID(),
		aggregate.PersistedHistoryLen(), aggregate.UnpersistedHistory()); err != nil {
		return err
	}

	aggregate.MarkPersisted(next)
	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormPurchaseRepository) Get(ctx context.Context, id kernel.UUID) (*purchase.Purchase, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PurchaseDTO
	err := r.db.WithContext(ctx).
		Preload("Lines", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("purchase", id.String())
		}
		return nil, err
	}

	history, err := statushistory.Load(ctx, r.db, purchase.EntityType, id)
	if err != nil {
		return nil, err
	}

	return toDomain(dto, history)
}
