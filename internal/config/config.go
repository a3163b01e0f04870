package config

import (
	"os"
	"strconv"
	"strings"
)

type Config struct {
	// Server
	Port    string
	BaseURL string

	// Database
	DBDriver string // "sqlite" or "postgres"
	DBPath   string // SQLite file path
	DBURL    string // PostgreSQL connection string

	// Upstream provider
	Provider        string // "google" or "openai"
	APIKey          string
	BaseAPIURL      string // optional OpenAI-compatible endpoint (e.g. Groq)
	ModelOverride   string // exact model id, bypasses resolution
	DefaultModel    string // fallback when the catalog is empty
	Preferences     []string
	UpstreamTimeout int // seconds

	// History
	PruneSchedule string // cron expression
	RetentionDays int
}

func Load() *Config {
	return &Config{
		Port:            getEnv("PORT", "8080"),
		BaseURL:         getEnv("BASE_URL", "http://localhost:8080"),
		DBDriver:        getEnv("DB_DRIVER", "sqlite"),
		DBPath:          getEnv("DB_PATH", "./data/lexigate.db"),
		DBURL:           getEnv("DATABASE_URL", ""),
		Provider:        getEnv("PROVIDER", "google"),
		APIKey:          getEnv("PROVIDER_API_KEY", ""),
		BaseAPIURL:      getEnv("PROVIDER_BASE_URL", ""),
		ModelOverride:   getEnv("MODEL_OVERRIDE", ""),
		DefaultModel:    getEnv("DEFAULT_MODEL", "gemini-1.5-flash"),
		Preferences:     getEnvList("MODEL_PREFERENCES", "1.5+pro,1.5+flash,pro"),
		UpstreamTimeout: getEnvInt("UPSTREAM_TIMEOUT_SECONDS", 90),
		PruneSchedule:   getEnv("PRUNE_SCHEDULE", "0 4 * * *"), // 4am daily
		RetentionDays:   getEnvInt("HISTORY_RETENTION_DAYS", 90),
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return n
}

// getEnvList splits a comma-separated value, dropping empty entries.
func getEnvList(key, fallback string) []string {
	val := os.Getenv(key)
	if val == "" {
		val = fallback
	}
	var out []string
	for _, part := range strings.Split(val, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
