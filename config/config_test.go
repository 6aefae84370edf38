package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bankroll.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func missingFile(t *testing.T) string {
	return filepath.Join(t.TempDir(), "missing.yaml")
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(missingFile(t))
	require.NoError(t, err)

	assert.Equal(t, "dir", cfg.Store.Backend)
	assert.Equal(t, ".bankroll", cfg.Store.Path)
	assert.Equal(t, "BRL", cfg.Currency)
	assert.Equal(t, "02/01/2006", cfg.Export.DateLayout)
	assert.Equal(t, 10.0, cfg.Alerts.LossThreshold)
	assert.Equal(t, 20.0, cfg.Alerts.GainThreshold)
	assert.False(t, cfg.Alerts.Disabled)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
store:
  backend: sqlite
currency: EUR
alerts:
  loss_threshold: 15
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "sqlite", cfg.Store.Backend)
	assert.Equal(t, "bankroll.db", cfg.Store.Path)
	assert.Equal(t, "EUR", cfg.Currency)
	assert.Equal(t, 15.0, cfg.Alerts.LossThreshold)
	assert.Equal(t, 20.0, cfg.Alerts.GainThreshold)
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := writeConfig(t, "store:\n  backend: sqlite\n  path: file.db\ncurrency: EUR\n")
	t.Setenv(EnvStorePath, "env.db")
	t.Setenv(EnvCurrency, "USD")
	t.Setenv(EnvCSVDateLayout, "2006-01-02")
	t.Setenv(EnvAlertsDisabled, "true")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "sqlite", cfg.Store.Backend)
	assert.Equal(t, "env.db", cfg.Store.Path)
	assert.Equal(t, "USD", cfg.Currency)
	assert.Equal(t, "2006-01-02", cfg.Export.DateLayout)
	assert.True(t, cfg.Alerts.Disabled)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(writeConfig(t, "store: ["))
	assert.Error(t, err, "invalid YAML")

	t.Setenv(EnvAlertsDisabled, "maybe")
	_, err = Load(writeConfig(t, ""))
	assert.Error(t, err, "invalid boolean")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"backend", func(c *Config) { c.Store.Backend = "postgres" }},
		{"currency", func(c *Config) { c.Currency = "real" }},
		{"loss", func(c *Config) { c.Alerts.LossThreshold = 120 }},
		{"gain", func(c *Config) { c.Alerts.GainThreshold = -1 }},
		{"path", func(c *Config) { c.Store.Path = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(missingFile(t))
			require.NoError(t, err)
			tt.modify(cfg)
			assert.Error(t, cfg.Validate())
		})
	}

	t.Run("memory store without path", func(t *testing.T) {
		cfg, err := Load(missingFile(t))
		require.NoError(t, err)
		cfg.Store.Backend, cfg.Store.Path = "mem", ""
		assert.NoError(t, cfg.Validate())
	})
}
