package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/envwatch/internal/infra/config"
)

// NewRouter wires up the HTTP handlers and returns a configured server.
func NewRouter(cfg *config.Config, handler *Handler, logger *slog.Logger) *http.Server {
	gin.SetMode(gin.ReleaseMode)
	logger = logger.With("component", "http.router")

	router := gin.New()
	router.Use(
		gin.Recovery(),
		requestIDMiddleware(),
		requestLogger(logger),
		corsMiddleware(cfg.HTTP.AllowedOrigins),
		errorHandlingMiddleware(logger),
	)

	router.GET("/healthz", handler.Healthz)

	api := router.Group("/api/v1")
	api.Use(rateLimitMiddleware(cfg.HTTP.RateLimit, logger))
	{
		api.GET("/snapshot", handler.Snapshot)
		api.GET("/snapshot/stream", handler.SnapshotStream)
		api.GET("/sensors", handler.Sensors)
		api.GET("/alerts", handler.CurrentAlerts)
		api.POST("/alerts", handler.EvaluateAlerts)
		api.GET("/recommendations", handler.CurrentRecommendations)
		api.POST("/recommendations", handler.EvaluateRecommendations)
		api.GET("/dashboard", handler.Dashboard)
		api.GET("/thresholds", handler.Thresholds)
		api.GET("/roles", handler.Roles)
		api.GET("/locations", handler.Locations)
	}

	return &http.Server{
		Addr:           cfg.HTTP.Address,
		Handler:        withRetry(router, cfg.HTTP.Retry, logger),
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		MaxHeaderBytes: 1 << 20,
	}
}
