package handler

import (
	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"

	"github.com/skillswap/swap-backend/internal/controller"
	"github.com/skillswap/swap-backend/internal/handler/health"
	"github.com/skillswap/swap-backend/internal/handler/metrics"
	"github.com/skillswap/swap-backend/internal/handler/swaprequest"
	"github.com/skillswap/swap-backend/internal/utils/config"
	"github.com/skillswap/swap-backend/internal/utils/logger"
)

type Handler struct {
	SwapRequestHandler swaprequest.IHandler
	HealthHandler      health.IHealthHandler
	MetricsHandler     *metrics.MetricsHandler
}

func New(appConfig *config.AppConfig, logger *logger.Logger,
	controller controller.IController,
	db *gorm.DB,
	metricsRegistry *prometheus.Registry) *Handler {
	return &Handler{
		SwapRequestHandler: swaprequest.New(controller, logger, appConfig),
		HealthHandler:      health.New(appConfig, logger, db),
		MetricsHandler:     metrics.NewMetricsHandler(metricsRegistry),
	}
}
