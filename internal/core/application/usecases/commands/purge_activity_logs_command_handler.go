package commands

import (
	"context"
	"fmt"

	"backoffice/internal/core/ports"
)

// PurgeActivityLogsResult reports what a purge did (or, for a dry run, would do).
type PurgeActivityLogsResult struct {
	Deleted int64
	Batches int
}

type PurgeActivityLogsCommandHandler struct {
	uowFactory ActivityLogUoWFactory
	observer   ports.PurgeObserver
}

func NewPurgeActivityLogsCommandHandler(
	uowFactory ActivityLogUoWFactory,
	observer ports.PurgeObserver,
) PurgeActivityLogsCommandHandler {
	return PurgeActivityLogsCommandHandler{
		uowFactory: uowFactory,
		observer:   observer,
	}
}

// Handle deletes one batch per transaction until a batch comes back short, the
// batch limit is hit or ctx is done. A cancelled run returns what it already
// deleted along with the context error.
func (h PurgeActivityLogsCommandHandler) Handle(
	ctx context.Context,
	cmd PurgeActivityLogsCommand,
) (PurgeActivityLogsResult, error) {
	if err := cmd.Validate(); err != nil {
		return PurgeActivityLogsResult{}, err
	}

	if cmd.DryRun() {
		return h.estimate(ctx, cmd)
	}

	var result PurgeActivityLogsResult
	for result.Batches < cmd.MaxBatches() {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		deleted, selected, err := h.purgeBatch(ctx, cmd)
		if err != nil {
			return result, fmt.Errorf("purge batch %d: %w", result.Batches+1, err)
		}
		if selected == 0 {
			break
		}

		result.Batches++
		result.Deleted += deleted
		h.observer.ActivityLogsPurged(deleted)

		if selected < cmd.BatchSize() {
			break
		}
	}

	return result, nil
}

func (h PurgeActivityLogsCommandHandler) purgeBatch(
	ctx context.Context,
	cmd PurgeActivityLogsCommand,
) (int64, int, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.ActivityLogRepository()
	ids, err := repo.ListIDsOlderThan(ctx, cmd.Cutoff(), cmd.BatchSize())
	if err != nil {
		return 0, 0, err
	}
	if len(ids) == 0 {
		return 0, 0, nil
	}

	deleted, err := repo.DeleteByIDs(ctx, ids)
	if err != nil {
		return 0, 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, 0, err
	}
	return deleted, len(ids), nil
}

func (h PurgeActivityLogsCommandHandler) estimate(
	ctx context.Context,
	cmd PurgeActivityLogsCommand,
) (PurgeActivityLogsResult, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return PurgeActivityLogsResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	count, err := uow.ActivityLogRepository().CountOlderThan(ctx, cmd.Cutoff())
	if err != nil {
		return PurgeActivityLogsResult{}, err
	}

	limit := int64(cmd.BatchSize()) * int64(cmd.MaxBatches())
	count = min(count, limit)
	batches := int((count + int64(cmd.BatchSize()) - 1) / int64(cmd.BatchSize()))

	return PurgeActivityLogsResult{Deleted: count, Batches: batches}, nil
}
