package app

import (
	"errors"
	"os"
	"strconv"
	"time"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type Config struct {
	Issuer         string        // Optional: issuer claim of session tokens (default: forum)
	DatabaseDriver string        // Optional: sqlite or postgres (default: sqlite)
	DatabaseFile   string        // Optional: path to SQLite database file (default: ./forum.db)
	DatabaseDSN    string        // Required with postgres: pgx connection string
	PepperFile     string        // Optional: path to file containing pepper for password hashing (default: ./pepper)
	SigningKeyFile string        // Optional: Ed25519 PEM key for session tokens, empty means a fresh key per start
	SessionTTL     time.Duration // Optional: lifetime recorded on new sessions (default: 8h)
	StrictExpiry   bool          // Optional: reject sessions past their lifetime (default: false)
	Env            string        // Environment (dev, staging, prod) (default: dev)
	LogLevel       string        // Log level (debug, info, warn, error) (default: info)
	LogFormat      string        // Log format (json, text) (default: json)
	Port           int           // HTTP server port (default: 8080)

	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
}

func LoadConfig() Config {
	return Config{
		Issuer:              getEnvOrDefault("FORUM_ISSUER", "forum"),
		DatabaseDriver:      getEnvOrDefault("FORUM_DATABASE_DRIVER", DriverSQLite),
		DatabaseFile:        getEnvOrDefault("FORUM_DATABASE_FILE", "forum.db"),
		DatabaseDSN:         os.Getenv("FORUM_DATABASE_DSN"),
		PepperFile:          getEnvOrDefault("FORUM_PEPPER_FILE", "pepper"),
		SigningKeyFile:      os.Getenv("FORUM_SIGNING_KEY_FILE"),
		SessionTTL:          getEnvDurationOrDefault("FORUM_SESSION_TTL", 8*time.Hour),
		StrictExpiry:        getEnvBoolOrDefault("FORUM_STRICT_EXPIRY", false),
		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
	}
}

// Validate reports configuration that New would fail on later.
func (c Config) Validate() error {
	switch c.DatabaseDriver {
	case DriverSQLite:
		if c.DatabaseFile == "" {
			return errors.New("FORUM_DATABASE_FILE is required for the sqlite driver")
		}
	case DriverPostgres:
		if c.DatabaseDSN == "" {
			return errors.New("FORUM_DATABASE_DSN is required for the postgres driver")
		}
	default:
		return errors.New("FORUM_DATABASE_DRIVER must be sqlite or postgres")
	}

	if c.SessionTTL <= 0 {
		return errors.New("FORUM_SESSION_TTL must be positive")
	}
	return nil
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

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if b, err := strconv.ParseBool(value); err == nil {
		return b
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Try parsing as duration (e.g., "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Bare integers are minutes
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}
