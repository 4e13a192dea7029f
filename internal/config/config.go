// Package config loads and saves cpidash configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// DefaultDatasetURL is the fixed remote location of the regional CPI dataset.
const DefaultDatasetURL = "https://raw.githubusercontent.com/dmaia/cpi-data/main/regional_cpi_mom.parquet"

// Config holds all cpidash configuration.
type Config struct {
	Dataset    DatasetConfig    `toml:"dataset"`
	General    GeneralConfig    `toml:"general"`
	Appearance AppearanceConfig `toml:"appearance"`
}

// DatasetConfig holds the remote data source settings.
type DatasetConfig struct {
	URL string `toml:"url,omitempty"`
}

// GeneralConfig holds default selection preferences.
type GeneralConfig struct {
	DefaultCategory string `toml:"default_category,omitempty"` // division code or label
	DefaultState    string `toml:"default_state,omitempty"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Dataset: DatasetConfig{
			URL: DefaultDatasetURL,
		},
		Appearance: AppearanceConfig{
			Theme: "flexoki-dark",
		},
	}
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "cpidash")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "cpidash")
}

// ConfigPath returns the full path to the config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(ConfigPath())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	dir := ConfigDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(ConfigPath(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// DatasetURL returns the dataset URL from the env var or config, in that
// order, falling back to the built-in default.
func DatasetURL(cfg Config) string {
	if url := os.Getenv("CPIDASH_DATASET_URL"); url != "" {
		return url
	}
	if cfg.Dataset.URL != "" {
		return cfg.Dataset.URL
	}
	return DefaultDatasetURL
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(ConfigPath())
	return err == nil
}
