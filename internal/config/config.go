package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort string
	WebDir  string

	// Engine
	MaxMultiplier float64

	// HTTP limits
	MaxBodyBytes  int64
	APIRateLimit  int
	APIRateWindow time.Duration

	// Redis (rate limiter backend, optional)
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// Logging
	LogLevel string
	LogJSON  bool
}

// Load reads configuration from the environment, with a .env file as
// fallback. Every value has a working default; the verifier runs with no
// environment at all.
func Load() *Config {
	_ = godotenv.Load()

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}

	webDir := os.Getenv("WEB_DIR")
	if webDir == "" {
		webDir = "./web"
	}

	maxMultiplier := 10000.0
	if v := os.Getenv("MAX_MULTIPLIER"); v != "" {
		if n, err := strconv.ParseFloat(v, 64); err == nil && n >= 1 {
			maxMultiplier = n
		}
	}

	maxBodyBytes := int64(8 << 10) // requests are a handful of short fields
	if v := os.Getenv("MAX_BODY_BYTES"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
			maxBodyBytes = n
		}
	}

	apiRateLimit := 30
	if v := os.Getenv("API_RATE_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			apiRateLimit = n
		}
	}

	apiRateWindow := time.Minute
	if v := os.Getenv("API_RATE_WINDOW_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			apiRateWindow = time.Duration(n) * time.Second
		}
	}

	redisDB := 0
	if v := os.Getenv("REDIS_DB"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			redisDB = n
		}
	}

	return &Config{
		AppPort:       port,
		WebDir:        webDir,
		MaxMultiplier: maxMultiplier,
		MaxBodyBytes:  maxBodyBytes,
		APIRateLimit:  apiRateLimit,
		APIRateWindow: apiRateWindow,
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       redisDB,
		LogLevel:      getEnvDefault("LOG_LEVEL", "info"),
		LogJSON:       os.Getenv("LOG_JSON") == "true",
	}
}

func getEnvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
