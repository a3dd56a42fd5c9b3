package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with values from the process environment, loading
// a local .env file first if one exists. Unset variables leave the current
// value untouched.
//
// Supported variables:
//
//	EZYCOOK_BASE_URL         — API origin
//	EZYCOOK_REQUEST_TIMEOUT  — e.g. "30s"
//	EZYCOOK_UPLOAD_TIMEOUT   — e.g. "60s"
//	EZYCOOK_DB_PATH          — local SQLite file
//	EZYCOOK_KEY_PATH         — credential key file
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := strings.TrimSpace(os.Getenv("EZYCOOK_BASE_URL")); v != "" {
		cfg.BaseURL = v
	}
	if v := strings.TrimSpace(os.Getenv("EZYCOOK_REQUEST_TIMEOUT")); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.RequestTimeout = d
		}
	}
	if v := strings.TrimSpace(os.Getenv("EZYCOOK_UPLOAD_TIMEOUT")); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.UploadTimeout = d
		}
	}
	if v := strings.TrimSpace(os.Getenv("EZYCOOK_DB_PATH")); v != "" {
		cfg.DatabasePath = v
	}
	if v := strings.TrimSpace(os.Getenv("EZYCOOK_KEY_PATH")); v != "" {
		cfg.CredentialKeyPath = v
	}
}
