// Package config assembles the runtime settings for the EzyCook CLI.
// Sources are applied in order, later ones winning: built-in defaults,
// a .env / environment overlay, an optional JSON file (-c/-config), and
// command-line flags.
package config

import "time"

// Config holds runtime settings for the EzyCook CLI.
//
// RequestTimeout bounds plain JSON calls; UploadTimeout bounds multipart
// uploads, which carry image payloads and need more headroom.
type Config struct {
	BaseURL           string
	RequestTimeout    time.Duration
	UploadTimeout     time.Duration
	DatabasePath      string
	CredentialKeyPath string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = "https://ezycook.duckdns.org"
	c.RequestTimeout = 30 * time.Second
	c.UploadTimeout = 60 * time.Second
	c.DatabasePath = "ezycook.db"
	c.CredentialKeyPath = "ezycook.key"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the environment, JSON (if present) and command-line flags (if present).
// Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
