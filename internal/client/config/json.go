package config

import (
	"encoding/json"
	"os"

	"github.com/mbopage/ezycook-cli/internal/flagx"
	"github.com/mbopage/ezycook-cli/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify timeouts either as strings like "30s"
// or as integer nanoseconds. After parsing, values are copied into the
// runtime Config.
type JsonConfig struct {
	BaseURL           string         `json:"base_url"`
	RequestTimeout    timex.Duration `json:"request_timeout"`
	UploadTimeout     timex.Duration `json:"upload_timeout"`
	DatabasePath      string         `json:"database_path"`
	CredentialKeyPath string         `json:"credential_key_path"`
}

// parseJson overlays Config with values loaded from a JSON file whose path
// comes from the -c/-config flags. Absent file path means no JSON overlay.
// Fields left empty in the file keep their current values.
//
// Panics on read or unmarshal errors (caller should recover if desired).
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.BaseURL != "" {
		cfg.BaseURL = jc.BaseURL
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.UploadTimeout.Duration != 0 {
		cfg.UploadTimeout = jc.UploadTimeout.Duration
	}
	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	if jc.CredentialKeyPath != "" {
		cfg.CredentialKeyPath = jc.CredentialKeyPath
	}
}
