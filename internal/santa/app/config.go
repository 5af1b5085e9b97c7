package app

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	DataDir         string        // Directory holding groups.json, assignments.json, guests.json and backups/ (default: ./data)
	BaseURL         string        // Public origin guest links are built on (default: http://localhost:8080)
	BackupRetention int           // Backups kept per resource; 0 keeps all (default: 20)
	FlushInterval   time.Duration // Periodic flush and backup pruning interval (default: 1m)

	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
}

func LoadConfig() Config {
	return Config{
		DataDir:         getEnvOrDefault("SANTA_DATA_DIR", "data"),
		BaseURL:         getEnvOrDefault("SANTA_BASE_URL", "http://localhost:8080"),
		BackupRetention: getEnvIntOrDefault("SANTA_BACKUP_RETENTION", 20),
		FlushInterval:   getEnvDurationOrDefault("FLUSH_INTERVAL", time.Minute),

		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
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
