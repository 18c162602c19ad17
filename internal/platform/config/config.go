package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	SyncBackendNone     = "none"
	SyncBackendSheets   = "sheets"
	SyncBackendPostgres = "postgres"
)

type Config struct {
	Addr                string
	Environment         string
	JWTSecret           string
	SyncBackend         string
	SheetsScriptURL     string
	DatabaseURL         string
	SyncRefreshInterval time.Duration
	RunSeed             bool
	SeedAdminName       string
	SeedAdminPassword   string
	MaxBodyBytes        int64
	RateLimitPerMinute  int
	MetricsEnabled      bool
}

func Load() Config {
	return Config{
		Addr:                getEnv("APP_ADDR", ":8080"),
		Environment:         getEnv("APP_ENV", "development"),
		JWTSecret:           getEnv("JWT_SECRET", ""),
		SyncBackend:         strings.ToLower(getEnv("SYNC_BACKEND", SyncBackendNone)),
		SheetsScriptURL:     getEnv("SHEETS_SCRIPT_URL", ""),
		DatabaseURL:         getEnv("DATABASE_URL", ""),
		SyncRefreshInterval: getEnvDuration("SYNC_REFRESH_INTERVAL", 5*time.Minute),
		RunSeed:             getEnvBool("RUN_SEED", true),
		SeedAdminName:       getEnv("SEED_ADMIN_NAME", "ADMINISTRATOR"),
		SeedAdminPassword:   getEnv("SEED_ADMIN_PASSWORD", "admin123"),
		MaxBodyBytes:        int64(getEnvInt("MAX_BODY_BYTES", 1048576)),
		RateLimitPerMinute:  getEnvInt("RATE_LIMIT_PER_MINUTE", 120),
		MetricsEnabled:      getEnvBool("METRICS_ENABLED", true),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func (c Config) Validate() error {
	switch c.SyncBackend {
	case SyncBackendNone:
	case SyncBackendSheets:
		if strings.TrimSpace(c.SheetsScriptURL) == "" {
			return fmt.Errorf("SHEETS_SCRIPT_URL is required when SYNC_BACKEND is sheets")
		}
	case SyncBackendPostgres:
		if strings.TrimSpace(c.DatabaseURL) == "" {
			return fmt.Errorf("DATABASE_URL is required when SYNC_BACKEND is postgres")
		}
	default:
		return fmt.Errorf("SYNC_BACKEND must be one of none, sheets, postgres")
	}
	if c.Environment == "production" {
		if strings.TrimSpace(c.JWTSecret) == "" {
			return fmt.Errorf("JWT_SECRET must be set to a strong value in production")
		}
		if c.RunSeed && c.SeedAdminPassword == "admin123" {
			return fmt.Errorf("SEED_ADMIN_PASSWORD must be changed or RUN_SEED disabled in production")
		}
	}
	if c.MaxBodyBytes < 1024 {
		return fmt.Errorf("MAX_BODY_BYTES must be at least 1024")
	}
	if c.RateLimitPerMinute <= 0 {
		return fmt.Errorf("RATE_LIMIT_PER_MINUTE must be positive")
	}
	if c.SyncRefreshInterval < 0 {
		return fmt.Errorf("SYNC_REFRESH_INTERVAL must not be negative")
	}
	return nil
}
