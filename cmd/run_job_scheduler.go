package cmd

import (
	"context"
	"time"

	"github.com/getsentry/sentry-go"

	"github.com/gridbase/gridbase-backend/jobs"
	"github.com/gridbase/gridbase-backend/utils"
)

// RunJobScheduler is the cron flavor of the worker, for deployments that do
// not want a river task queue.
func RunJobScheduler() error {
	logger := utils.NewLogger(utils.GetEnv("LOGGING_FORMAT", "text"))
	ctx := utils.StoreLoggerInContext(context.Background(), logger)

	utils.SetupSentry(utils.GetEnv("SENTRY_DSN", ""), utils.GetEnv("ENV", "development"))
	defer sentry.Flush(3 * time.Second)

	uc, _, err := setupUsecases(ctx)
	if err != nil {
		return err
	}

	jobs.RunScheduler(ctx, uc)
	return nil
}
