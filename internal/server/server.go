package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/robfig/cron/v3"

	"github.com/skillswap/swap-backend/internal/controller"
	"github.com/skillswap/swap-backend/internal/monitoring"
	"github.com/skillswap/swap-backend/internal/store"
	pgstore "github.com/skillswap/swap-backend/internal/store/postgres"
	"github.com/skillswap/swap-backend/internal/transport/http"
	"github.com/skillswap/swap-backend/internal/utils/config"
	"github.com/skillswap/swap-backend/internal/utils/logger"
	"github.com/skillswap/swap-backend/internal/worker"
)

func Init() {
	appConfig := config.New()
	logger := logger.New(appConfig.Environment)

	db := pgstore.New(appConfig, logger)
	s := store.New()

	ctrl := controller.New(db, s, logger, appConfig)

	metricsRegistry := prometheus.NewRegistry()
	httpMetrics := monitoring.NewHTTPMetrics()
	httpMetrics.MustRegister(metricsRegistry)
	metricsRecorder := monitoring.NewBusinessMetricsRecorder(httpMetrics)

	w := worker.New(ctrl, logger, metricsRecorder, appConfig)

	c := cron.New()
	if _, err := c.AddFunc(appConfig.Jobs.ExpirySweepSchedule, w.SweepExpiredRequests); err != nil {
		logger.Fatal("failed to schedule expiry sweeper", map[string]string{
			"error":    err.Error(),
			"schedule": appConfig.Jobs.ExpirySweepSchedule,
		})
	}
	c.Start()
	defer c.Stop()

	httpServer := http.NewHttpServer(appConfig, logger, ctrl, db, httpMetrics, metricsRegistry)

	if err := httpServer.Run(":" + appConfig.ApiServer.Port); err != nil {
		logger.Fatal("http server stopped", map[string]string{
			"error": err.Error(),
		})
	}
}
