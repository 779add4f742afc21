package jobs

import (
	"context"
	"log/slog"

	"github.com/gridbase/gridbase-backend/usecases"
	"github.com/gridbase/gridbase-backend/utils"
)

func CleanupOldActions(ctx context.Context, uc usecases.Usecases) error {
	return executeWithMonitoring(ctx, uc, "cleanup_old_actions",
		func(ctx context.Context, uc usecases.Usecases) error {
			logger := utils.LoggerFromContext(ctx)

			deleted, err := uc.NewActionUsecase().CleanUpOldActions(ctx)
			if err != nil {
				return err
			}

			logger.InfoContext(ctx, "Done cleaning up old actions",
				slog.Int64("deleted_actions", deleted))
			return nil
		})
}
