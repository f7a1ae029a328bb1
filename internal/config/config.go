package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all environment-driven settings for the service.
type Config struct {
	Environment string
	Port        string
	LogLevel    slog.Level

	// DatabaseURL is the Postgres connection string; DatabaseName, when set,
	// overrides the database named in the URL.
	DatabaseURL  string
	DatabaseName string
}

// LoadConfig reads configuration from the environment. A .env file is loaded
// first when present so local runs behave like deployed ones.
func LoadConfig() (*Config, error) {
	// Missing .env is fine, the environment may already be populated.
	_ = godotenv.Load()

	cfg := &Config{
		Environment:  getEnv("ENVIRONMENT", "development"),
		Port:         getEnv("PORT", "8000"),
		LogLevel:     parseLogLevel(getEnv("LOG_LEVEL", "info")),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		DatabaseName: os.Getenv("DATABASE_NAME"),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	return cfg, nil
}

// DSN returns the connection string with DatabaseName applied.
func (c *Config) DSN() string {
	if c.DatabaseName == "" {
		return c.DatabaseURL
	}
	if strings.Contains(c.DatabaseURL, "dbname=") {
		return c.DatabaseURL
	}
	return fmt.Sprintf("%s dbname=%s", c.DatabaseURL, c.DatabaseName)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
