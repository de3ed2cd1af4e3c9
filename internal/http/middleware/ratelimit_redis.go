package middleware

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	redis "github.com/redis/go-redis/v9"
)

var redisClient *redis.Client

// InitRedisRateLimiter connects the shared Redis client used by the
// middleware. With an empty addr, or if the initial ping fails, the client
// stays nil and RateLimit falls back to the in-process limiter.
func InitRedisRateLimiter(addr, password string, db int) {
	if addr == "" {
		return
	}
	client := redis.NewClient(&redis.Options{Addr: addr, Password: password, DB: db})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return
	}
	redisClient = client
}

// PingRedis reports the health of the rate-limiter backend. Returns an error
// when Redis was never configured, so callers can distinguish "fail-open"
// from "healthy".
func PingRedis(ctx context.Context) error {
	if redisClient == nil {
		return errors.New("redis not configured")
	}
	return redisClient.Ping(ctx).Err()
}

// RateLimit applies a fixed-window per-IP limit, backed by Redis INCR/EXPIRE
// when available and by the in-process limiter otherwise.
// Key format: rl:<window_seconds>:<ip>.
func RateLimit(maxRequests int, window time.Duration) gin.HandlerFunc {
	fallback := SimpleRateLimit(maxRequests, window)

	return func(c *gin.Context) {
		if redisClient == nil {
			fallback(c)
			return
		}

		ident := c.ClientIP()
		key := "rl:" + strconv.FormatInt(int64(window.Seconds()), 10) + ":" + ident
		ctx := c.Request.Context()

		val, err := redisClient.Incr(ctx, key).Result()
		if err != nil {
			// fail-open on Redis errors to keep the verifier available
			c.Header("X-RateLimit-Error", "redis-error")
			c.Next()
			return
		}

		if val == 1 {
			redisClient.Expire(ctx, key, window)
		}

		if val > int64(maxRequests) {
			RLBlocked.WithLabelValues(c.FullPath()).Inc()
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
			return
		}

		RLRequests.WithLabelValues(c.FullPath()).Inc()
		c.Next()
	}
}
