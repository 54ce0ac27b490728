package commands

import (
	"errors"
	"time"

	"backoffice/internal/pkg/errs"
	"backoffice/internal/pkg/guard"
)

const (
	MaxPurgeBatchSize  = 1000
	MaxPurgeBatchCount = 10_000

	DefaultPurgeBatchSize  = 500
	DefaultPurgeBatchCount = 200
)

var ErrPurgeActivityLogsCommandIsNotConstructed = errors.New(
	"PurgeActivityLogsCommand must be created via NewPurgeActivityLogsCommand constructor",
)

// PurgeActivityLogsCommand removes activity records older than cutoff in batches
// of at most batchSize, running no more than maxBatches batches.
type PurgeActivityLogsCommand struct {
	cutoff     time.Time
	batchSize  int
	maxBatches int
	dryRun     bool

	guard guard.ConstructorGuard
}

func NewPurgeActivityLogsCommand(
	cutoff time.Time,
	batchSize, maxBatches int,
	dryRun bool,
) (PurgeActivityLogsCommand, error) {
	var problems []error
	if cutoff.IsZero() {
		problems = append(problems, errs.NewValueIsRequiredError("cutoff"))
	}
	if batchSize < 1 || batchSize > MaxPurgeBatchSize {
		problems = append(problems, errs.NewValueIsOutOfRangeError("batchSize", batchSize, 1, MaxPurgeBatchSize))
	}
	if maxBatches < 1 || maxBatches > MaxPurgeBatchCount {
		problems = append(problems, errs.NewValueIsOutOfRangeError("maxBatches", maxBatches, 1, MaxPurgeBatchCount))
	}
	if err := errors.Join(problems...); err != nil {
		return PurgeActivityLogsCommand{}, err
	}

	return PurgeActivityLogsCommand{
		cutoff:     cutoff.UTC(),
		batchSize:  batchSize,
		maxBatches: maxBatches,
		dryRun:     dryRun,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c PurgeActivityLogsCommand) Validate() error {
	return c.guard.Validate(ErrPurgeActivityLogsCommandIsNotConstructed)
}

func (c PurgeActivityLogsCommand) Cutoff() time.Time { return c.cutoff }

func (c PurgeActivityLogsCommand) BatchSize() int { return c.batchSize }

func (c PurgeActivityLogsCommand) MaxBatches() int { return c.maxBatches }

func (c PurgeActivityLogsCommand) DryRun() bool { return c.dryRun }
