package ports

import (
	"context"
	"time"

	"backoffice/internal/core/domain/model/activity"
	"backoffice/internal/core/domain/model/kernel"
)

type ActivityLogRepository interface {
	Add(ctx context.Context, log *activity.Log) error

	// ListIDsOlderThan returns up to limit ids of records created before cutoff, oldest first.
	ListIDsOlderThan(ctx context.Context, cutoff time.Time, limit int) ([]kernel.UUID, error)

	// CountOlderThan counts records created before cutoff.
	CountOlderThan(ctx context.Context, cutoff time.Time) (int64, error)

	// DeleteByIDs removes the given records and reports how many rows went away.
	DeleteByIDs(ctx context.Context, ids []kernel.UUID) (int64, error)
}
