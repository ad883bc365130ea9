package config

import "time"

// Config holds runtime settings for the movie CLI.
//
// Fields:
//   - BackendBaseURL: root of the companion backend API, including the /api
//     prefix.
//   - CatalogBaseURL / CatalogAPIKey / CatalogImageBase: movie catalog
//     access. The key travels as a query parameter on every catalog call.
//   - RequestTimeout: per-request HTTP timeout for both clients.
//   - SessionDBPath: sqlite file holding the persisted session.
//   - LogLevel: "debug", "info", "warn", or "error".
//   - TwoFAIssuer: application name shown inside authenticator apps.
//   - ClearSessionOnUnauthorized: drop the stored session when an
//     authenticated call is rejected with 401.
type Config struct {
	BackendBaseURL   string
	CatalogBaseURL   string
	CatalogAPIKey    string
	CatalogImageBase string
	RequestTimeout   time.Duration
	SessionDBPath    string
	LogLevel         string
	TwoFAIssuer      string

	ClearSessionOnUnauthorized bool
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BackendBaseURL = "http://127.0.0.1:5000/api"
	c.CatalogBaseURL = "https://api.themoviedb.org/3"
	c.CatalogImageBase = "https://image.tmdb.org/t/p/w500"
	c.RequestTimeout = 10 * time.Second
	c.SessionDBPath = "session.db"
	c.LogLevel = "info"
	c.TwoFAIssuer = "IMDB Redesign"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
