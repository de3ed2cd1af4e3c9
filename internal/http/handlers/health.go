package handlers

import (
	"context"
	"fmt"
	"net/http"
	"runtime"
	"time"

	"github.com/lowlifescumm/doublecheck/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

// HealthHandler handles health check endpoints
type HealthHandler struct {
	startTime time.Time
	version   string
}

func NewHealthHandler(version string) *HealthHandler {
	return &HealthHandler{
		startTime: time.Now(),
		version:   version,
	}
}

// HealthResponse represents health check response
type HealthResponse struct {
	Status    string            `json:"status"`
	Version   string            `json:"version,omitempty"`
	Uptime    string            `json:"uptime,omitempty"`
	Timestamp string            `json:"timestamp"`
	Checks    map[string]string `json:"checks,omitempty"`
}

// Liveness returns simple alive status (for k8s liveness probe)
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Readiness returns detailed health status (for k8s readiness probe). The
// engine itself is stateless and cannot degrade; the only external piece is
// the rate-limiter backend, and that one fails open.
func (h *HealthHandler) Readiness(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()

	checks := make(map[string]string)

	if err := middleware.PingRedis(ctx); err != nil {
		checks["rate_limiter"] = "fail-open: " + err.Error()
	} else {
		checks["rate_limiter"] = "healthy"
	}

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	checks["memory_alloc_mb"] = formatMB(m.Alloc)

	c.JSON(http.StatusOK, HealthResponse{
		Status:    "healthy",
		Version:   h.version,
		Uptime:    time.Since(h.startTime).Round(time.Second).String(),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Checks:    checks,
	})
}

// Health is a combined endpoint for basic health checks
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"version": h.version,
	})
}

func formatMB(bytes uint64) string {
	mb := float64(bytes) / 1024 / 1024
	return fmt.Sprintf("%.2f", mb)
}
