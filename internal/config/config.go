package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultPort         = "8080"
	defaultDatabaseURL  = "eventstay.db"
	defaultJWTSecret    = "change-me-jwt-secret"
	defaultJWTAccessTTL = "24h"
)

type Config struct {
	Port         string
	DatabaseURL  string
	JWTSecret    string
	JWTAccessTTL time.Duration
}

// Load reads configuration from the environment, falling back to an
// optional .env file for local development.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:        getEnv("PORT", defaultPort),
		DatabaseURL: getEnv("DATABASE_URL", defaultDatabaseURL),
		JWTSecret:   strings.TrimSpace(getEnv("JWT_SECRET", defaultJWTSecret)),
	}

	ttl, err := parseDurationEnv("JWT_ACCESS_TTL", defaultJWTAccessTTL)
	if err != nil {
		return nil, err
	}
	cfg.JWTAccessTTL = ttl

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseDurationEnv(key, fallback string) (time.Duration, error) {
	raw := getEnv(key, fallback)
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", key, raw, err)
	}
	return d, nil
}
