package activitylogrepo

import (
	"context"
	"time"

	"backoffice/internal/core/domain/model/activity"
	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/pkg/errs"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

type GormActivityLogRepository struct {
	db *gorm.DB
}

func NewGormActivityLogRepository(db *gorm.DB) *GormActivityLogRepository {
	return &GormActivityLogRepository{db: db}
}

func (r *GormActivityLogRepository) Add(ctx context.Context, log *activity.Log) error {
	if log == nil {
		return errs.NewValueIsRequiredError("log")
	}
	if err := log.Validate(); err != nil {
		return err
	}

	dto := fromDomain(log)
	return r.db.WithContext(ctx).Create(&dto).Error
}

func (r *GormActivityLogRepository) ListIDsOlderThan(
	ctx context.Context,
	cutoff time.Time,
	limit int,
) ([]kernel.UUID, error) {
	if limit <= 0 {
		return nil, errs.NewValueIsOutOfRangeError("limit", limit, 1, "unbounded")
	}

	var raw []string
	err := r.db.WithContext(ctx).Model(&ActivityLogDTO{}).
		Where("created_at < ?", cutoff).
		Order("created_at, id").
		Limit(limit).
		Pluck("id", &raw).Error
	if err != nil {
		return nil, err
	}

	ids := make([]kernel.UUID, 0, len(raw))
	for _, s := range raw {
		id, parseErr := kernel.UUIDFromString(s)
		if parseErr != nil {
			return nil, parseErr
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func (r *GormActivityLogRepository) CountOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&ActivityLogDTO{}).
		Where("created_at < ?", cutoff).
		Count(&count).Error
	return count, err
}

func (r *GormActivityLogRepository) DeleteByIDs(ctx context.Context, ids []kernel.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	raw := make([]string, 0, len(ids))
	for _, id := range ids {
		raw = append(raw, id.String())
	}

	result := r.db.WithContext(ctx).
		Where("id = ANY(?::uuid[])", pq.Array(raw)).
		Delete(&ActivityLogDTO{})
	return result.RowsAffected, result.Error
}
