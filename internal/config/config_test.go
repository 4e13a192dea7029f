package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultDatasetURL, cfg.Dataset.URL)
	assert.Equal(t, "flexoki-dark", cfg.Appearance.Theme)
	assert.False(t, Exists())
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.Dataset.URL = "https://example.com/cpi.parquet"
	cfg.General.DefaultCategory = "07"
	cfg.General.DefaultState = "SP"
	cfg.Appearance.Theme = "catppuccin-mocha"

	require.NoError(t, Save(cfg))
	require.True(t, Exists())

	got, err := Load()
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestDatasetURLPrecedence(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := DefaultConfig()

	t.Setenv("CPIDASH_DATASET_URL", "")
	assert.Equal(t, DefaultDatasetURL, DatasetURL(cfg))

	cfg.Dataset.URL = "https://example.com/from-config.parquet"
	assert.Equal(t, "https://example.com/from-config.parquet", DatasetURL(cfg))

	t.Setenv("CPIDASH_DATASET_URL", "https://example.com/from-env.parquet")
	assert.Equal(t, "https://example.com/from-env.parquet", DatasetURL(cfg))
}
