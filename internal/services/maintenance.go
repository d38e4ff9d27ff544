package services

import (
	"context"
	"time"

	"github.com/okhuysen/peturnidad-api/internal/logger"
)

// IncompleteUserRemover deletes stale incomplete accounts.
type IncompleteUserRemover interface {
	DeleteIncompleteBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

// MaintenanceService runs the manually-triggered cleanup sweep. The sweep
// is idempotent: re-running it finds nothing left to delete.
type MaintenanceService struct {
	remover   IncompleteUserRemover
	retention time.Duration
}

// NewMaintenanceService creates a MaintenanceService with the given
// incomplete-account retention window.
func NewMaintenanceService(remover IncompleteUserRemover, retention time.Duration) *MaintenanceService {
	return &MaintenanceService{
		remover:   remover,
		retention: retention,
	}
}

// CleanupIncompleteUsers deletes accounts that never completed their
// profile and are older than the retention window. Returns the number of
// deleted accounts.
func (s *MaintenanceService) CleanupIncompleteUsers(ctx context.Context) (int64, error) {
	cutoff := time.Now().Add(-s.retention)

	deleted, err := s.remover.DeleteIncompleteBefore(ctx, cutoff)
	if err != nil {
		logger.Log.Errorw("cleanup sweep failed", "cutoff", cutoff, "error", err)
		return 0, err
	}

	logger.Log.Infow("cleanup sweep finished", "cutoff", cutoff, "deleted", deleted)
	return deleted, nil
}
