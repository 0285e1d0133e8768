package jobs

import (
	"context"
	"log/slog"
	"time"

	"restaurant/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// pendingOrderExpirySchedule runs the sweep at the top of every minute.
const pendingOrderExpirySchedule = "0 * * * * *"

// ExpirePendingOrdersJob manages the scheduled expiry of stale pending
// orders. Orders that stay unconfirmed longer than maxAge are cancelled.
type ExpirePendingOrdersJob struct {
	handler commands.ExpirePendingOrdersCommandHandler
	maxAge  time.Duration
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewExpirePendingOrdersJob creates a new job sweeping pending orders older
// than maxAge.
func NewExpirePendingOrdersJob(handler commands.ExpirePendingOrdersCommandHandler, maxAge time.Duration, logger *slog.Logger) *ExpirePendingOrdersJob {
	return &ExpirePendingOrdersJob{
		handler: handler,
		maxAge:  maxAge,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "expire_pending_orders_job"),
	}
}

// Start begins the expiry job. It fails when maxAge does not form a valid
// command, so a misconfigured deployment is caught at startup.
func (j *ExpirePendingOrdersJob) Start() error {
	cmd, err := commands.NewExpirePendingOrdersCommand(j.maxAge)
	if err != nil {
		return err
	}

	_, err = j.cron.AddFunc(pendingOrderExpirySchedule, func() {
		ctx := context.Background()

		expired, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Pending order expiry job failed", "error", err)
			return
		}

		if expired > 0 {
			j.logger.InfoContext(ctx, "Expired stale pending orders", "count", expired, "max_age", j.maxAge.String())
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Pending order expiry job started (running every minute)", "max_age", j.maxAge.String())
	return nil
}

// Stop stops the expiry job.
func (j *ExpirePendingOrdersJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Pending order expiry job stopped")
}
