package config

import (
	"encoding/json"
	"os"

	"github.com/a1br4h33m/IMDB-Redesign/internal/flagx"
	"github.com/a1br4h33m/IMDB-Redesign/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify the timeout either as a string like
// "10s" or as integer nanoseconds. Pointer fields distinguish "absent" from
// zero values so the JSON file only overrides what it mentions.
type JsonConfig struct {
	BackendBaseURL             *string         `json:"backend_base_url"`
	CatalogBaseURL             *string         `json:"catalog_base_url"`
	CatalogAPIKey              *string         `json:"catalog_api_key"`
	CatalogImageBase           *string         `json:"catalog_image_base"`
	RequestTimeout             *timex.Duration `json:"request_timeout"`
	SessionDBPath              *string         `json:"session_db_path"`
	LogLevel                   *string         `json:"log_level"`
	TwoFAIssuer                *string         `json:"two_fa_issuer"`
	ClearSessionOnUnauthorized *bool           `json:"clear_session_on_unauthorized"`
}

// parseJson overlays Config with values loaded from a JSON file resolved via
// the -c/-config flags. When no file is named the function is a no-op.
// Read or unmarshal errors panic; the caller may recover if desired.
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

	applyJson(cfg, &jc)
}

func applyJson(cfg *Config, jc *JsonConfig) {
	if jc.BackendBaseURL != nil {
		cfg.BackendBaseURL = *jc.BackendBaseURL
	}
	if jc.CatalogBaseURL != nil {
		cfg.CatalogBaseURL = *jc.CatalogBaseURL
	}
	if jc.CatalogAPIKey != nil {
		cfg.CatalogAPIKey = *jc.CatalogAPIKey
	}
	if jc.CatalogImageBase != nil {
		cfg.CatalogImageBase = *jc.CatalogImageBase
	}
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.SessionDBPath != nil {
		cfg.SessionDBPath = *jc.SessionDBPath
	}
	if jc.LogLevel != nil {
		cfg.LogLevel = *jc.LogLevel
	}
	if jc.TwoFAIssuer != nil {
		cfg.TwoFAIssuer = *jc.TwoFAIssuer
	}
	if jc.ClearSessionOnUnauthorized != nil {
		cfg.ClearSessionOnUnauthorized = *jc.ClearSessionOnUnauthorized
	}
}
