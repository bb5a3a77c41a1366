// Package config loads application configuration from the environment.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Config holds all configuration for the application.
type Config struct {
	ServerPort string
	GinMode    string
	LogLevel   string

	MongoURI      string
	MongoDatabase string
	RedisURI      string

	AccessTokenSecret  string
	AccessTokenExpiry  time.Duration
	RefreshTokenExpiry time.Duration

	S3Endpoint  string
	S3AccessKey string
	S3SecretKey string
	S3Bucket    string
	S3UseSSL    bool

	SettlementWorkers     int
	SettlementQueueSize   int
	SettlementSuccessRate float64
	SettlementMinDelay    time.Duration
	SettlementMaxDelay    time.Duration
}

// Load reads configuration from .env file and environment variables.
func Load() *Config {
	// Load .env file (ignore error if file doesn't exist - env vars may be set directly)
	_ = godotenv.Load()

	cfg := &Config{
		ServerPort: getEnv("SERVER_PORT", "8080"),
		GinMode:    getEnv("GIN_MODE", "debug"),
		LogLevel:   getEnv("LOG_LEVEL", "info"),

		MongoURI:      getEnvRequired("MONGO_URI"),
		MongoDatabase: getEnvRequired("MONGO_DATABASE"),
		RedisURI:      getEnv("REDIS_URI", "localhost:6379"),

		AccessTokenSecret:  getEnvRequired("ACCESS_TOKEN_SECRET"),
		AccessTokenExpiry:  parseDuration(getEnv("ACCESS_TOKEN_EXPIRY", "15m")),
		RefreshTokenExpiry: parseDuration(getEnv("REFRESH_TOKEN_EXPIRY", "168h")),

		S3Endpoint:  getEnv("S3_ENDPOINT", "localhost:9000"),
		S3AccessKey: getEnv("S3_ACCESS_KEY", "minioadmin"),
		S3SecretKey: getEnv("S3_SECRET_KEY", "minioadmin"),
		S3Bucket:    getEnv("S3_BUCKET", "avatars"),
		S3UseSSL:    getEnv("S3_USE_SSL", "false") == "true",

		SettlementWorkers:     parseInt(getEnv("SETTLEMENT_WORKERS", "2")),
		SettlementQueueSize:   parseInt(getEnv("SETTLEMENT_QUEUE_SIZE", "100")),
		SettlementSuccessRate: parseFloat(getEnv("SETTLEMENT_SUCCESS_RATE", "0.9")),
		SettlementMinDelay:    parseDuration(getEnv("SETTLEMENT_MIN_DELAY", "1s")),
		SettlementMaxDelay:    parseDuration(getEnv("SETTLEMENT_MAX_DELAY", "2s")),
	}

	return cfg
}

// getEnv reads an environment variable with a fallback default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvRequired reads an environment variable and exits if not set.
func getEnvRequired(key string) string {
	value := os.Getenv(key)
	if value == "" {
		logrus.Fatalf("Required environment variable %s is not set", key)
	}
	return value
}

// parseDuration parses a duration string, exits on error.
func parseDuration(s string) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		logrus.Fatalf("Invalid duration format: %s", s)
	}
	return d
}

// parseInt parses an integer string, exits on error.
func parseInt(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		logrus.Fatalf("Invalid integer format: %s", s)
	}
	return n
}

// parseFloat parses a float string, exits on error.
func parseFloat(s string) float64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		logrus.Fatalf("Invalid float format: %s", s)
	}
	return f
}
