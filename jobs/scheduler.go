package jobs

import (
	"context"

	"github.com/adhocore/gronx/pkg/tasker"

	"github.com/gridbase/gridbase-backend/usecases"
	"github.com/gridbase/gridbase-backend/utils"
)

func errToReturnCode(err error) int {
	if err != nil {
		return 1
	}
	return 0
}

// RunScheduler is the cron alternative to the river worker for deployments
// that prefer a single long-lived scheduler process.
func RunScheduler(ctx context.Context, usecases usecases.Usecases) {
	taskr := tasker.New(tasker.Option{
		Verbose: true,
	}).WithContext(ctx)

	taskr.Task("@hourly", func(ctx context.Context) (int, error) {
		logger := utils.LoggerFromContext(ctx).With("job", "cleanup_old_actions")
		ctx = utils.StoreLoggerInContext(ctx, logger)
		err := CleanupOldActions(ctx, usecases)
		return errToReturnCode(err), err
	})

	taskr.Run()
}
