package http

import (
	"github.com/lowlifescumm/doublecheck/internal/config"
	"github.com/lowlifescumm/doublecheck/internal/http/handlers"
	"github.com/lowlifescumm/doublecheck/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, cfg *config.Config, version string) {
	h := handlers.NewHandler(handlers.HandlerConfig{
		MaxMultiplier: cfg.MaxMultiplier,
	})
	healthHandler := handlers.NewHealthHandler(version)

	// Health checks (no rate limiting)
	r.GET("/health", healthHandler.Health)
	r.GET("/healthz", healthHandler.Liveness)
	r.GET("/readyz", healthHandler.Readiness)

	rl := middleware.RateLimit(cfg.APIRateLimit, cfg.APIRateWindow)
	bodyLimit := middleware.BodyLimit(cfg.MaxBodyBytes)

	// API v1 routes
	v1 := r.Group("/api/v1")
	v1.Use(rl, bodyLimit)
	v1.POST("/verify", h.Verify)

	// Legacy /api routes kept for old form clients
	api := r.Group("/api")
	api.Use(rl, bodyLimit)
	api.POST("/verify", h.Verify)
	api.GET("/health", healthHandler.Health)

	// Verification form UI
	r.StaticFS("/assets", gin.Dir(cfg.WebDir, false))
	r.NoRoute(func(c *gin.Context) {
		c.File(cfg.WebDir + "/index.html")
	})
}
