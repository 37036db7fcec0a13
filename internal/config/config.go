package config

import (
	"os"
	"strings"
)

type Config struct {
	DatabaseURL  string // MongoDB connection string; empty means the store runs degraded
	DatabaseName string // Target database; empty falls back to "consciouswork"
	RedisURI     string // Optional; rate limiting is disabled when empty
	Port         string
}

func Load() *Config {
	return &Config{
		DatabaseURL:  strings.TrimSpace(getEnv("DATABASE_URL", "")),
		DatabaseName: strings.TrimSpace(getEnv("DATABASE_NAME", "")),
		RedisURI:     strings.TrimSpace(getEnv("REDIS_URI", "")),
		Port:         getEnv("PORT", "8000"),
	}
}

// IsStoreConfigured reports whether enough configuration exists to reach the store.
func (c *Config) IsStoreConfigured() bool {
	return c.DatabaseURL != ""
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
