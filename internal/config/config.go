// Package config loads application configuration from the environment.
package config

import (
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds settings for the urbaninv CLI and web server.
type Config struct {
	Port    int
	DBPath  string
	DevMode bool
}

// Load reads the .env file (if present) and returns a populated Config.
// CLI flags take precedence over these values where both exist.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file found, using system env vars")
	}

	return &Config{
		Port:    getEnvInt("UI_PORT", 8080),
		DBPath:  getEnv("UI_DB_PATH", ""),
		DevMode: getEnvBool("UI_DEV_MODE", false),
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		n, err := strconv.Atoi(val)
		if err == nil {
			return n
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if val := os.Getenv(key); val != "" {
		b, err := strconv.ParseBool(val)
		if err == nil {
			return b
		}
	}
	return fallback
}
