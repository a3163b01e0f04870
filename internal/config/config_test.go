package config

import (
	"reflect"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	// Neutralize ambient env so defaults are actually exercised
	keys := []string{
		"PORT", "BASE_URL", "DB_DRIVER", "DB_PATH", "DATABASE_URL",
		"PROVIDER", "PROVIDER_API_KEY", "PROVIDER_BASE_URL",
		"MODEL_OVERRIDE", "DEFAULT_MODEL", "MODEL_PREFERENCES",
		"UPSTREAM_TIMEOUT_SECONDS", "PRUNE_SCHEDULE", "HISTORY_RETENTION_DAYS",
	}
	for _, k := range keys {
		t.Setenv(k, "")
	}

	cfg := Load()

	if cfg.Port != "8080" {
		t.Errorf("Port = %q", cfg.Port)
	}
	if cfg.Provider != "google" {
		t.Errorf("Provider = %q", cfg.Provider)
	}
	if cfg.DefaultModel != "gemini-1.5-flash" {
		t.Errorf("DefaultModel = %q", cfg.DefaultModel)
	}
	want := []string{"1.5+pro", "1.5+flash", "pro"}
	if !reflect.DeepEqual(cfg.Preferences, want) {
		t.Errorf("Preferences = %v, want %v", cfg.Preferences, want)
	}
	if cfg.UpstreamTimeout != 90 {
		t.Errorf("UpstreamTimeout = %d", cfg.UpstreamTimeout)
	}
	if cfg.RetentionDays != 90 {
		t.Errorf("RetentionDays = %d", cfg.RetentionDays)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PROVIDER", "openai")
	t.Setenv("PROVIDER_API_KEY", "gsk_test")
	t.Setenv("PROVIDER_BASE_URL", "https://api.groq.com/openai/v1")
	t.Setenv("MODEL_OVERRIDE", "llama-3.3-70b-versatile")
	t.Setenv("MODEL_PREFERENCES", " versatile , 70b ,instant")
	t.Setenv("UPSTREAM_TIMEOUT_SECONDS", "30")

	cfg := Load()

	if cfg.Provider != "openai" {
		t.Errorf("Provider = %q", cfg.Provider)
	}
	if cfg.APIKey != "gsk_test" {
		t.Errorf("APIKey = %q", cfg.APIKey)
	}
	if cfg.ModelOverride != "llama-3.3-70b-versatile" {
		t.Errorf("ModelOverride = %q", cfg.ModelOverride)
	}
	want := []string{"versatile", "70b", "instant"}
	if !reflect.DeepEqual(cfg.Preferences, want) {
		t.Errorf("Preferences = %v, want trimmed %v", cfg.Preferences, want)
	}
	if cfg.UpstreamTimeout != 30 {
		t.Errorf("UpstreamTimeout = %d", cfg.UpstreamTimeout)
	}
}

func TestGetEnvIntInvalid(t *testing.T) {
	t.Setenv("UPSTREAM_TIMEOUT_SECONDS", "not-a-number")
	cfg := Load()
	if cfg.UpstreamTimeout != 90 {
		t.Errorf("UpstreamTimeout = %d, want fallback 90", cfg.UpstreamTimeout)
	}
}
