package cmd

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"

	"github.com/gridbase/gridbase-backend/usecases/worker_jobs"
	"github.com/gridbase/gridbase-backend/utils"
)

// RunTaskQueue starts the river worker that runs the periodic action cleanup.
func RunTaskQueue() error {
	logger := utils.NewLogger(utils.GetEnv("LOGGING_FORMAT", "text"))
	ctx := utils.StoreLoggerInContext(context.Background(), logger)

	utils.SetupSentry(utils.GetEnv("SENTRY_DSN", ""), utils.GetEnv("ENV", "development"))
	defer sentry.Flush(3 * time.Second)

	uc, pool, err := setupUsecases(ctx)
	if err != nil {
		return err
	}

	workers := river.NewWorkers()
	river.AddWorker(workers, worker_jobs.NewActionCleanupWorker(uc.NewActionUsecase()))

	riverClient, err := river.NewClient(riverpgxv5.New(pool), &river.Config{
		Workers: workers,
		Queues: map[string]river.QueueConfig{
			worker_jobs.ACTION_CLEANUP_QUEUE: {MaxWorkers: 1},
		},
		PeriodicJobs: []*river.PeriodicJob{
			worker_jobs.NewActionCleanupPeriodicJob(
				utils.GetEnv("ACTION_CLEANUP_INTERVAL", time.Duration(0))),
		},
	})
	if err != nil {
		utils.LogAndReportSentryError(ctx, err)
		return err
	}

	if err := riverClient.Start(ctx); err != nil {
		utils.LogAndReportSentryError(ctx, err)
		return err
	}

	notify, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-notify.Done()

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := riverClient.Stop(shutdownCtx); err != nil {
		utils.LogAndReportSentryError(ctx, err)
		return err
	}
	<-riverClient.Stopped()
	return nil
}
