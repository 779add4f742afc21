package cmd

import (
	"context"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/getsentry/sentry-go"

	"github.com/gridbase/gridbase-backend/api"
	"github.com/gridbase/gridbase-backend/utils"
)

func RunServer() error {
	apiConfig := api.Configuration{
		Env:            utils.GetEnv("ENV", "development"),
		AppName:        "gridbase-backend",
		Port:           utils.GetRequiredEnv[string]("PORT"),
		AppUrl:         utils.GetEnv("APP_URL", ""),
		DefaultTimeout: utils.GetEnv("DEFAULT_TIMEOUT", 5*time.Second),
	}

	logger := utils.NewLogger(utils.GetEnv("LOGGING_FORMAT", "text"))
	ctx := utils.StoreLoggerInContext(context.Background(), logger)

	utils.SetupSentry(utils.GetEnv("SENTRY_DSN", ""), apiConfig.Env)
	defer sentry.Flush(3 * time.Second)

	uc, _, err := setupUsecases(ctx)
	if err != nil {
		return err
	}

	router := api.InitRouterMiddlewares(ctx, apiConfig)
	server := api.NewServer(router, apiConfig, uc,
		api.WithLocalTest(apiConfig.Env == "development"))

	notify, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.InfoContext(ctx, "starting server", slog.String("port", apiConfig.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			utils.LogAndReportSentryError(ctx, errors.Wrap(err, "error serving the app"))
		}
		logger.InfoContext(ctx, "server returned")
	}()

	<-notify.Done()

	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
