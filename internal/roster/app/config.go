package app

import (
	"os"
	"strconv"
	"time"
)

// DefaultSessionSecret ships for local development only. Deployments must
// override SESSION_SECRET; startup logs a loud warning otherwise.
const DefaultSessionSecret = "change_this_in_prod"

type Config struct {
	SessionSecret string        // Optional: HMAC secret for the session cookie (default: dev-only placeholder)
	SessionTTL    time.Duration // Optional: session lifetime, refreshed on use (default: 24h)

	DatabaseDriver       string        // Optional: database driver (sqlite, postgres) (default: sqlite)
	DatabaseFile         string        // Optional: path to SQLite database file (default: ./school.db)
	DatabaseURL          string        // Required for postgres: connection URL
	PepperFile           string        // Optional: path to file containing pepper for password hashing (default: ./pepper)
	Env                  string        // Environment (dev, staging, prod) (default: dev)
	LogLevel             string        // Log level (debug, info, warn, error) (default: info)
	LogFormat            string        // Log format (json, text) (default: json)
	Port                 int           // HTTP server port (default: 3000)
	ShutdownGracePeriod  time.Duration // Graceful shutdown timeout (default: 10s)
	HousekeepingInterval time.Duration // Expired-session sweep interval (default: 1h)
}

func LoadConfig() Config {
	return Config{
		SessionSecret: getEnvOrDefault("SESSION_SECRET", DefaultSessionSecret),
		SessionTTL:    getEnvDurationOrDefault("SESSION_TTL", 24*time.Hour),

		DatabaseDriver:       getEnvOrDefault("DATABASE_DRIVER", "sqlite"),
		DatabaseFile:         getEnvOrDefault("SCHOOL_DATABASE_FILE", "school.db"),
		DatabaseURL:          os.Getenv("DATABASE_URL"), // Required when DATABASE_DRIVER=postgres
		PepperFile:           getEnvOrDefault("SCHOOL_PEPPER_FILE", "pepper"),
		Env:                  getEnvOrDefault("ENV", "dev"),
		LogLevel:             getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:            getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                 getEnvIntOrDefault("PORT", 3000),
		ShutdownGracePeriod:  getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		HousekeepingInterval: getEnvDurationOrDefault("HOUSEKEEPING_INTERVAL", 1*time.Hour),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Accept duration syntax ("24h", "30m") or bare integer hours
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}
	if hours, err := strconv.Atoi(value); err == nil {
		return time.Duration(hours) * time.Hour
	}

	return defaultValue
}
