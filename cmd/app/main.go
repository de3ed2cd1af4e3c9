package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lowlifescumm/doublecheck/internal/config"
	httpServer "github.com/lowlifescumm/doublecheck/internal/http"
	"github.com/lowlifescumm/doublecheck/internal/http/middleware"
	"github.com/lowlifescumm/doublecheck/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const version = "1.2.0"

func main() {
	cfg := config.Load()
	logger.Init(cfg.LogLevel, cfg.LogJSON)

	r := gin.Default()

	// CORS: the form UI may be hosted on a different domain
	r.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
			c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type")
			c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		}
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	middleware.InitRedisRateLimiter(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	httpServer.RegisterRoutes(r, cfg, version)

	srv := &http.Server{
		Addr:    ":" + cfg.AppPort,
		Handler: r,
	}

	go func() {
		logger.Info("server started", "port", cfg.AppPort, "version", version)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("listen failed", "err", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("server forced to shutdown", "err", err)
	}

	logger.Info("server exited")
}
