package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("DB_PATH", "")
	t.Setenv("PROVIDER_TIMEOUT", "")
	t.Setenv("IMPORT_TICK", "")

	cfg := Load()
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "cookitsimple.db", cfg.DBPath)
	assert.Equal(t, 15*time.Second, cfg.ProviderTimeout)
	assert.Equal(t, time.Hour, cfg.ImportTick)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9999")
	t.Setenv("PROVIDER_URL", "http://localhost:1234/export")
	t.Setenv("PROVIDER_API_KEY", "k")
	t.Setenv("IMPORT_TICK", "15m")

	cfg := Load()
	assert.Equal(t, "9999", cfg.Port)
	assert.Equal(t, "http://localhost:1234/export", cfg.ProviderURL)
	assert.Equal(t, "k", cfg.ProviderAPIKey)
	assert.Equal(t, 15*time.Minute, cfg.ImportTick)
}

func TestLoad_BadDurationFallsBack(t *testing.T) {
	t.Setenv("IMPORT_TICK", "soon")
	cfg := Load()
	assert.Equal(t, time.Hour, cfg.ImportTick)
}
