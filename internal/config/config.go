package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Client
	APIBaseURL     string
	RequestTimeout time.Duration
	TokenDir       string

	// Dev server
	Port               string
	Environment        string
	JWTSecret          string
	JWTExpirationHours int
	RateLimitPerMinute int
	RateLimitBurst     int
}

func Load() (*Config, error) {
	// A .env file is optional; real env vars win either way.
	_ = godotenv.Load()

	cfg := &Config{
		APIBaseURL:         getEnv("TALENTBRIDGE_API_URL", "http://localhost:8080"),
		RequestTimeout:     time.Duration(getEnvInt("TALENTBRIDGE_TIMEOUT_SECONDS", 30)) * time.Second,
		TokenDir:           getEnv("TALENTBRIDGE_TOKEN_DIR", ""),
		Port:               getEnv("PORT", "8080"),
		Environment:        getEnv("ENVIRONMENT", "development"),
		JWTSecret:          getEnv("JWT_SECRET", "dev-only-secret"),
		JWTExpirationHours: getEnvInt("JWT_EXPIRATION_HOURS", 24),
		RateLimitPerMinute: getEnvInt("RATE_LIMIT_PER_MINUTE", 120),
		RateLimitBurst:     getEnvInt("RATE_LIMIT_BURST", 30),
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}
