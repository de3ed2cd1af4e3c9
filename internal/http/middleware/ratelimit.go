package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

type clientInfo struct {
	last  time.Time
	count int
}

var rlMu sync.Mutex
var clients = make(map[string]*clientInfo)

// SimpleRateLimit is an in-process fixed-window limiter keyed by client IP.
// It is the fallback when no Redis backend is configured, so a single
// instance still gets basic abuse protection.
func SimpleRateLimit(maxRequests int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()

		rlMu.Lock()
		ci, ok := clients[ip]
		if !ok {
			clients[ip] = &clientInfo{last: time.Now(), count: 1}
			rlMu.Unlock()
			c.Next()
			return
		}

		now := time.Now()
		if now.Sub(ci.last) > window {
			ci.last = now
			ci.count = 1
			rlMu.Unlock()
			c.Next()
			return
		}

		ci.count++
		count := ci.count
		rlMu.Unlock()

		if count > maxRequests {
			RLBlocked.WithLabelValues(c.FullPath()).Inc()
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
			return
		}

		RLRequests.WithLabelValues(c.FullPath()).Inc()
		c.Next()
	}
}
