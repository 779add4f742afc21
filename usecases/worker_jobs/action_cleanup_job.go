package worker_jobs

import (
	"context"
	"time"

	"github.com/riverqueue/river"

	"github.com/gridbase/gridbase-backend/models"
	"github.com/gridbase/gridbase-backend/usecases"
	"github.com/gridbase/gridbase-backend/utils"
)

const (
	ACTION_CLEANUP_INTERVAL = 1 * time.Hour
	ACTION_CLEANUP_TIMEOUT  = 5 * time.Minute
	ACTION_CLEANUP_QUEUE    = "action_cleanup"
)

func NewActionCleanupPeriodicJob(interval time.Duration) *river.PeriodicJob {
	if interval == 0 {
		interval = ACTION_CLEANUP_INTERVAL
	}
	return river.NewPeriodicJob(
		river.PeriodicInterval(interval),
		func() (river.JobArgs, *river.InsertOpts) {
			return models.CleanupOldActionsArgs{},
				&river.InsertOpts{
					Queue:    ACTION_CLEANUP_QUEUE,
					Priority: 4, // Low priority
					UniqueOpts: river.UniqueOpts{
						ByQueue:  true,
						ByPeriod: interval,
					},
				}
		},
		&river.PeriodicJobOpts{RunOnStart: false},
	)
}

// ActionCleanupWorker garbage-collects actions past the retention window.
type ActionCleanupWorker struct {
	river.WorkerDefaults[models.CleanupOldActionsArgs]

	actionUsecase usecases.ActionUsecase
}

func NewActionCleanupWorker(actionUsecase usecases.ActionUsecase) *ActionCleanupWorker {
	return &ActionCleanupWorker{
		actionUsecase: actionUsecase,
	}
}

func (w *ActionCleanupWorker) Timeout(job *river.Job[models.CleanupOldActionsArgs]) time.Duration {
	return ACTION_CLEANUP_TIMEOUT
}

func (w *ActionCleanupWorker) Work(ctx context.Context, job *river.Job[models.CleanupOldActionsArgs]) error {
	logger := utils.LoggerFromContext(ctx)

	deleted, err := w.actionUsecase.CleanUpOldActions(ctx)
	if err != nil {
		// a failing cleanup hook keeps its action row; river retries the job
		utils.LogAndReportSentryError(ctx, err)
		return err
	}

	if deleted > 0 {
		logger.InfoContext(ctx, "Action cleanup completed", "deleted_actions", deleted)
	}
	return nil
}
