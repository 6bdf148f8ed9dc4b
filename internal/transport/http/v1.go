package http

import (
	"github.com/gin-gonic/gin"

	"github.com/skillswap/swap-backend/internal/handler"
	"github.com/skillswap/swap-backend/internal/utils/config"
	"github.com/skillswap/swap-backend/internal/utils/logger"
)

func loadV1Routes(r *gin.Engine, h *handler.Handler, appConfig *config.AppConfig, logger *logger.Logger) {
	v1 := r.Group("/api/v1")

	swapRequests := v1.Group("/swap-requests", ActorMiddleware())
	{
		swapRequests.POST("", h.SwapRequestHandler.Create)
		swapRequests.GET("", h.SwapRequestHandler.List)
		swapRequests.GET("/:id", h.SwapRequestHandler.Get)
		swapRequests.PUT("/:id/respond", h.SwapRequestHandler.Respond)
		swapRequests.PUT("/:id/cancel", h.SwapRequestHandler.Cancel)
		swapRequests.PUT("/:id/complete", h.SwapRequestHandler.Complete)
		swapRequests.POST("/:id/rating", h.SwapRequestHandler.SubmitRating)
	}

	healthGroup := v1.Group("/health")
	{
		healthGroup.GET("/db", h.HealthHandler.Database)
	}

	// health check
	r.GET("/healthz", h.HealthHandler.Basic)

	// prometheus scrape endpoint
	r.GET("/metrics", h.MetricsHandler.Handler())
}
