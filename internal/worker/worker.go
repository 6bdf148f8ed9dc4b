package worker

import (
	"context"
	"strconv"
	"time"

	"github.com/skillswap/swap-backend/internal/controller"
	"github.com/skillswap/swap-backend/internal/monitoring"
	"github.com/skillswap/swap-backend/internal/utils/config"
	"github.com/skillswap/swap-backend/internal/utils/logger"
	"github.com/skillswap/swap-backend/internal/utils/webhook"
)

// Worker runs the scheduled maintenance jobs of the swap core.
type Worker struct {
	controller      controller.IController
	logger          *logger.Logger
	metricsRecorder *monitoring.BusinessMetricsRecorder
	webhook         *webhook.Client
	appConfig       *config.AppConfig
}

func New(controller controller.IController, logger *logger.Logger, metricsRecorder *monitoring.BusinessMetricsRecorder, appConfig *config.AppConfig) *Worker {
	return &Worker{
		controller:      controller,
		logger:          logger,
		metricsRecorder: metricsRecorder,
		webhook:         webhook.New(logger),
		appConfig:       appConfig,
	}
}

// SweepExpiredRequests cancels pending swap requests past their expiry.
func (w *Worker) SweepExpiredRequests() {
	start := time.Now()

	expired, err := w.controller.ExpirePendingRequests()
	if err != nil {
		w.logger.Error("[SweepExpiredRequests][ExpirePendingRequests]", map[string]string{
			"error": err.Error(),
		})
		if w.metricsRecorder != nil {
			w.metricsRecorder.RecordExpirySweep("error", 0)
		}
		return
	}

	if expired > 0 {
		w.logger.Info("expired pending swap requests cancelled", map[string]string{
			"count":       strconv.FormatInt(expired, 10),
			"duration_ms": strconv.FormatInt(time.Since(start).Milliseconds(), 10),
		})
	}
	if w.metricsRecorder != nil {
		w.metricsRecorder.RecordExpirySweep("success", float64(expired))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	w.webhook.CallUptimeWebhook(ctx, w.appConfig.Jobs.UptimeWebhookURL)
}
