package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	// HTTP server
	ListenAddr string

	// Database
	PostgresDSN   string
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// Profile Service API
	ProfileAPIBaseURL string
	ProfileAPITimeout time.Duration

	// Logging
	LogLevel string
}

func Load() (*Config, error) {
	cfg := &Config{
		// Defaults
		ListenAddr:        ":8080",
		ProfileAPITimeout: 30 * time.Second,
		LogLevel:          "info",
		RedisDB:           0,
	}

	cfg.ProfileAPIBaseURL = os.Getenv("PROFILE_API_BASE_URL")
	if cfg.ProfileAPIBaseURL == "" {
		return nil, fmt.Errorf("PROFILE_API_BASE_URL is required")
	}

	cfg.PostgresDSN = os.Getenv("POSTGRES_DSN")
	if cfg.PostgresDSN == "" {
		return nil, fmt.Errorf("POSTGRES_DSN is required")
	}

	if addr := os.Getenv("LISTEN_ADDR"); addr != "" {
		cfg.ListenAddr = addr
	}

	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		cfg.RedisAddr = addr
	} else {
		cfg.RedisAddr = "localhost:6379"
	}

	cfg.RedisPassword = os.Getenv("REDIS_PASSWORD")

	if redisDB := os.Getenv("REDIS_DB"); redisDB != "" {
		db, err := strconv.Atoi(redisDB)
		if err != nil {
			return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
		}
		cfg.RedisDB = db
	}

	if timeout := os.Getenv("PROFILE_API_TIMEOUT"); timeout != "" {
		d, err := time.ParseDuration(timeout)
		if err != nil {
			return nil, fmt.Errorf("invalid PROFILE_API_TIMEOUT: %w", err)
		}
		cfg.ProfileAPITimeout = d
	}

	if logLevel := os.Getenv("LOG_LEVEL"); logLevel != "" {
		cfg.LogLevel = logLevel
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.ProfileAPIBaseURL == "" {
		return fmt.Errorf("profile API base URL is empty")
	}

	if c.PostgresDSN == "" {
		return fmt.Errorf("postgres DSN is empty")
	}

	if c.ProfileAPITimeout < time.Second {
		return fmt.Errorf("profile API timeout too small: %v", c.ProfileAPITimeout)
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid log level: %s", c.LogLevel)
	}

	return nil
}
