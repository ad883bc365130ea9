package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	assert.Equal(t, "http://127.0.0.1:5000/api", cfg.BackendBaseURL)
	assert.Equal(t, "https://api.themoviedb.org/3", cfg.CatalogBaseURL)
	assert.Equal(t, "https://image.tmdb.org/t/p/w500", cfg.CatalogImageBase)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "session.db", cfg.SessionDBPath)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "IMDB Redesign", cfg.TwoFAIssuer)
	assert.Empty(t, cfg.CatalogAPIKey)
	assert.False(t, cfg.ClearSessionOnUnauthorized)
}

func TestParseFlags(t *testing.T) {
	origArgs := os.Args
	defer func() { os.Args = origArgs }()

	os.Args = []string{"cli",
		"-b", "http://example.com/api",
		"-k", "tmdbkey",
		"-d", "/tmp/s.db",
		"-t", "30",
		"-l", "debug",
	}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseFlags(cfg)

	assert.Equal(t, "http://example.com/api", cfg.BackendBaseURL)
	assert.Equal(t, "tmdbkey", cfg.CatalogAPIKey)
	assert.Equal(t, "/tmp/s.db", cfg.SessionDBPath)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "debug", cfg.LogLevel)
	// untouched fields keep their defaults
	assert.Equal(t, "https://api.themoviedb.org/3", cfg.CatalogBaseURL)
}

func TestParseFlagsNoArgs(t *testing.T) {
	origArgs := os.Args
	defer func() { os.Args = origArgs }()
	os.Args = []string{"cli"}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseFlags(cfg)

	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "session.db", cfg.SessionDBPath)
}

func TestParseJson(t *testing.T) {
	origArgs := os.Args
	defer func() { os.Args = origArgs }()

	file := filepath.Join(t.TempDir(), "config.json")
	data := `{
		"backend_base_url": "https://movies.example.com/api",
		"catalog_api_key": "jsonkey",
		"request_timeout": "25s",
		"log_level": "warn",
		"clear_session_on_unauthorized": true
	}`
	require.NoError(t, os.WriteFile(file, []byte(data), 0o600))

	os.Args = []string{"cli", "-c", file}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)

	assert.Equal(t, "https://movies.example.com/api", cfg.BackendBaseURL)
	assert.Equal(t, "jsonkey", cfg.CatalogAPIKey)
	assert.Equal(t, 25*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.True(t, cfg.ClearSessionOnUnauthorized)
	// fields absent from the file keep their defaults
	assert.Equal(t, "session.db", cfg.SessionDBPath)
	assert.Equal(t, "IMDB Redesign", cfg.TwoFAIssuer)
}

func TestParseJsonNoFile(t *testing.T) {
	origArgs := os.Args
	defer func() { os.Args = origArgs }()
	os.Args = []string{"cli"}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)

	assert.Equal(t, "http://127.0.0.1:5000/api", cfg.BackendBaseURL)
}

func TestParseJsonMissingFilePanics(t *testing.T) {
	origArgs := os.Args
	defer func() { os.Args = origArgs }()
	os.Args = []string{"cli", "-c", "/nonexistent/config.json"}

	cfg := &Config{}
	cfg.LoadDefaults()

	assert.Panics(t, func() { parseJson(cfg) })
}

func TestLoadConfigFlagsOverrideJson(t *testing.T) {
	origArgs := os.Args
	defer func() { os.Args = origArgs }()

	file := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(file, []byte(`{"log_level": "warn", "session_db_path": "/tmp/json.db"}`), 0o600))

	os.Args = []string{"cli", "-c", file, "-l", "error"}

	cfg := LoadConfig()

	assert.Equal(t, "error", cfg.LogLevel)
	assert.Equal(t, "/tmp/json.db", cfg.SessionDBPath)
}
