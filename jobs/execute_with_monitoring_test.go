package jobs

import (
	"context"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"

	"github.com/gridbase/gridbase-backend/usecases"
	"github.com/gridbase/gridbase-backend/utils"
)

func TestExecuteWithMonitoringWithoutSentryDsn(t *testing.T) {
	// the scheduler runs without SENTRY_DSN in local setups: check-ins must
	// still round-trip through the disabled client
	utils.SetupSentry("", "development")

	err := executeWithMonitoring(context.TODO(), usecases.Usecases{}, "noop_job",
		func(ctx context.Context, uc usecases.Usecases) error {
			return nil
		})
	assert.NoError(t, err)
}

func TestExecuteWithMonitoringWrapsJobErrors(t *testing.T) {
	utils.SetupSentry("", "development")

	jobErr := errors.New("cleanup went sideways")
	err := executeWithMonitoring(context.TODO(), usecases.Usecases{}, "failing_job",
		func(ctx context.Context, uc usecases.Usecases) error {
			return jobErr
		})
	assert.ErrorIs(t, err, jobErr)
	assert.ErrorContains(t, err, "failing_job")
}
