package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	APIBaseURL      string
	Environment     string
	HTTPTimeout     time.Duration
	RedisAddr       string
	RedisPassword   string
	RedisDB         int
	MonitorInterval time.Duration
}

func Load() (*Config, error) {
	// Load .env if present, otherwise rely on the environment.
	if err := godotenv.Load(".env"); err != nil {
		log.Println("⚠️  No .env file found, using environment variables")
	} else {
		log.Println("✅ Loaded configuration from .env file")
	}

	cfg := &Config{
		APIBaseURL:    os.Getenv("API_BASE_URL"),
		Environment:   os.Getenv("ENV"),
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
	}

	if cfg.APIBaseURL == "" {
		cfg.APIBaseURL = "http://localhost:8000"
	}
	if cfg.Environment == "" {
		cfg.Environment = "development"
	}

	var err error
	if cfg.HTTPTimeout, err = durationEnv("HTTP_TIMEOUT", 15*time.Second); err != nil {
		return nil, err
	}
	if cfg.MonitorInterval, err = durationEnv("MONITOR_INTERVAL", 60*time.Second); err != nil {
		return nil, err
	}

	if raw := os.Getenv("REDIS_DB"); raw != "" {
		cfg.RedisDB, err = strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("REDIS_DB must be an integer: %w", err)
		}
	}

	return cfg, nil
}

func durationEnv(key string, fallback time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be a duration like 15s: %w", key, err)
	}
	return d, nil
}
