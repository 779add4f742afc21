package jobs

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/getsentry/sentry-go"

	"github.com/gridbase/gridbase-backend/usecases"
	"github.com/gridbase/gridbase-backend/utils"
)

// executeWithMonitoring wraps a job with a sentry check-in so missed or
// failing runs show up as monitor incidents.
func executeWithMonitoring(
	ctx context.Context,
	uc usecases.Usecases,
	jobName string,
	fn func(context.Context, usecases.Usecases) error,
) error {
	logger := utils.LoggerFromContext(ctx)
	logger.InfoContext(ctx, "Start job "+jobName)

	checkinId := sentry.CaptureCheckIn(
		&sentry.CheckIn{
			MonitorSlug: jobName,
			Status:      sentry.CheckInStatusInProgress,
		},
		nil,
	)
	checkinStatus := func(status sentry.CheckInStatus) *sentry.CheckIn {
		return &sentry.CheckIn{
			ID:          *checkinId,
			MonitorSlug: jobName,
			Status:      status,
		}
	}

	if err := fn(ctx, uc); err != nil {
		sentry.CaptureCheckIn(checkinStatus(sentry.CheckInStatusError), nil)
		utils.LogAndReportSentryError(ctx, err)
		return errors.Wrapf(err, "error executing job %s", jobName)
	}

	sentry.CaptureCheckIn(checkinStatus(sentry.CheckInStatusOK), nil)
	logger.InfoContext(ctx, "Done executing job "+jobName)
	return nil
}
