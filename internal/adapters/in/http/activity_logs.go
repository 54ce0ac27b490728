package http

import (
	"log/slog"
	"net/http"

	"backoffice/internal/core/application/usecases/commands"

	"github.com/labstack/echo/v4"
)

// PurgeActivityLogs handles POST /api/v1/activity-logs/purge. It runs the same
// batched purge as the retention job; dryRun only counts what would go.
func (s *Server) PurgeActivityLogs(c echo.Context) error {
	var req PurgeActivityLogsRequest
	if err := bind(c, &req); err != nil {
		return s.fail(c, err)
	}
	if req.BatchSize == 0 {
		req.BatchSize = commands.DefaultPurgeBatchSize
	}
	if req.MaxBatches == 0 {
		req.MaxBatches = commands.DefaultPurgeBatchCount
	}

	cutoff := s.now().UTC().AddDate(0, 0, -req.OlderThanDays)
	cmd, err := commands.NewPurgeActivityLogsCommand(cutoff, req.BatchSize, req.MaxBatches, req.DryRun)
	if err != nil {
		return s.fail(c, err)
	}

	result, err := s.h.PurgeActivityLogs.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}

	s.logger.Info("activity logs purged on request",
		slog.Time("cutoff", cmd.Cutoff()),
		slog.Int64("deleted", result.Deleted),
		slog.Int("batches", result.Batches),
		slog.Bool("dry_run", cmd.DryRun()))

	return c.JSON(http.StatusOK, PurgeActivityLogsResponse{
		Cutoff:  cmd.Cutoff(),
		Deleted: result.Deleted,
		Batches: result.Batches,
		DryRun:  cmd.DryRun(),
	})
}
