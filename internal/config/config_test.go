package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "dataset_globalsteeltracker.xlsx", cfg.Dataset.Path)
	assert.Equal(t, "Plant data", cfg.Dataset.Sheet)
	assert.Equal(t, "info", cfg.Logging.Level)
	require.NoError(t, cfg.validate())
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("STEELDASH_SERVER_PORT", "9090")
	t.Setenv("STEELDASH_DATASET_PATH", "plants.xlsx")
	t.Setenv("STEELDASH_DATASET_SHEET", "Plants")
	t.Setenv("STEELDASH_LOGGING_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "plants.xlsx", cfg.Dataset.Path)
	assert.Equal(t, "Plants", cfg.Dataset.Sheet)
	assert.Equal(t, "debug", cfg.Logging.Level)
	// Untouched values keep their defaults.
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero port", func(c *Config) { c.Server.Port = 0 }},
		{"port out of range", func(c *Config) { c.Server.Port = 70000 }},
		{"bad log level", func(c *Config) { c.Logging.Level = "verbose" }},
		{"bad log format", func(c *Config) { c.Logging.Format = "xml" }},
		{"empty dataset path", func(c *Config) { c.Dataset.Path = "" }},
		{"empty sheet", func(c *Config) { c.Dataset.Sheet = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.Error(t, cfg.validate())
		})
	}
}

func TestAddr(t *testing.T) {
	cfg := Default()
	cfg.Server.Port = 9000
	assert.Equal(t, ":9000", cfg.Addr())
}
