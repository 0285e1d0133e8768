package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"restaurant/internal/core/application/usecases/commands"
)

// JobManager owns every background job the service runs and starts and
// stops them as a unit, so main deals with a single lifecycle.
type JobManager struct {
	expirePendingOrdersJob *ExpirePendingOrdersJob
}

// NewJobManager wires the scheduled jobs to their command handlers.
func NewJobManager(
	expirePendingOrdersHandler commands.ExpirePendingOrdersCommandHandler,
	pendingOrderMaxAge time.Duration,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		expirePendingOrdersJob: NewExpirePendingOrdersJob(expirePendingOrdersHandler, pendingOrderMaxAge, logger),
	}
}

// StartAll launches the scheduled jobs. When a job fails to start, none
// are left running.
func (jm *JobManager) StartAll() error {
	if err := jm.expirePendingOrdersJob.Start(); err != nil {
		return fmt.Errorf("failed to start pending order expiry job: %w", err)
	}

	return nil
}

// StopAll stops scheduling further runs of all jobs.
func (jm *JobManager) StopAll() {
	jm.expirePendingOrdersJob.Stop()
}
