package config

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Defaults for everything except the JWT secret, which must be provided
const (
	DefaultAddr     = ":8080"
	DefaultDBPath   = "taskkeeper.db"
	DefaultTokenTTL = time.Hour
)

// Config holds the server configuration. It is built once in main and
// passed explicitly into the storage and handler constructors.
type Config struct {
	Addr      string        // listen address
	DBPath    string        // path to the SQLite database file
	JWTSecret string        // token signing secret, required
	TokenTTL  time.Duration // access token lifetime
	LogLevel  slog.Level    // minimum log level
}

// Load reads configuration from the environment, after loading an
// optional .env file. A missing .env file is not an error; a missing
// JWT secret is.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to load env file %s: %w", envFile, err)
		}
	} else {
		// Default .env in the working directory, if present
		_ = godotenv.Load()
	}

	cfg := &Config{
		Addr:     getEnv("TASKKEEPER_ADDR", DefaultAddr),
		DBPath:   getEnv("TASKKEEPER_DB", DefaultDBPath),
		TokenTTL: DefaultTokenTTL,
		LogLevel: slog.LevelInfo,
	}

	cfg.JWTSecret = os.Getenv("TASKKEEPER_JWT_SECRET")
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("TASKKEEPER_JWT_SECRET is required")
	}

	if ttl := os.Getenv("TASKKEEPER_TOKEN_TTL"); ttl != "" {
		d, err := time.ParseDuration(ttl)
		if err != nil {
			return nil, fmt.Errorf("invalid TASKKEEPER_TOKEN_TTL %q: %w", ttl, err)
		}
		if d <= 0 {
			return nil, fmt.Errorf("TASKKEEPER_TOKEN_TTL must be positive")
		}
		cfg.TokenTTL = d
	}

	if level := os.Getenv("TASKKEEPER_LOG_LEVEL"); level != "" {
		var l slog.Level
		if err := l.UnmarshalText([]byte(level)); err != nil {
			return nil, fmt.Errorf("invalid TASKKEEPER_LOG_LEVEL %q: %w", level, err)
		}
		cfg.LogLevel = l
	}

	return cfg, nil
}

// getEnv returns the value of key or fallback when unset
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
