package main

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config contains application-wide settings sourced from the
// environment.
type Config struct {
	APIURL    string
	Timeout   time.Duration
	LogLevel  string
	LogFormat string
}

func loadConfig() (Config, error) {
	_ = godotenv.Load("config/local.env")

	cfg := Config{
		APIURL:    envOrDefault("EDUREUSE_API_URL", "http://localhost:8000"),
		LogLevel:  envOrDefault("LOG_LEVEL", "info"),
		LogFormat: envOrDefault("LOG_FORMAT", "text"),
	}

	raw := envOrDefault("HTTP_TIMEOUT", "30s")
	timeout, err := time.ParseDuration(raw)
	if err != nil {
		return Config{}, fmt.Errorf("invalid HTTP_TIMEOUT %q: %w", raw, err)
	}
	cfg.Timeout = timeout

	return cfg, nil
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
