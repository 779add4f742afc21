package cmd

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gridbase/gridbase-backend/repositories"
	"github.com/gridbase/gridbase-backend/repositories/postgres"
	"github.com/gridbase/gridbase-backend/usecases"
	"github.com/gridbase/gridbase-backend/utils"
)

// setupUsecases builds the whole dependency graph shared by the server, the
// worker and the scheduler entrypoints. The pool is returned alongside for
// entrypoints that need raw connections, like the river driver.
func setupUsecases(ctx context.Context) (usecases.Usecases, *pgxpool.Pool, error) {
	pgConfig := pgConfigFromEnv()

	pool, err := postgres.NewConnectionPool(ctx, pgConfig.GetConnectionString(),
		pgConfig.MaxPoolConnections)
	if err != nil {
		utils.LogAndReportSentryError(ctx, err)
		return usecases.Usecases{}, nil, err
	}

	repos := repositories.NewRepositories(pool)
	uc := usecases.NewUsecases(*repos,
		usecases.WithApiVersion(apiVersion),
		usecases.WithExportBucketUrl(utils.GetEnv("EXPORT_BUCKET_URL", "mem://")),
		usecases.WithMaxUndoableActionsPerGroup(utils.GetEnv("MAX_UNDOABLE_ACTIONS_PER_GROUP", 0)),
		usecases.WithActionRetention(actionRetentionFromEnv()),
	)
	return uc, pool, nil
}

// The retention window is configured in whole minutes; zero falls back to
// the default window.
func actionRetentionFromEnv() time.Duration {
	return time.Duration(utils.GetEnv("ACTION_RETENTION_MINUTES", 0)) * time.Minute
}

const apiVersion = "v1"
