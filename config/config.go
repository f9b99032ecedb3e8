package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config is the top-level qngen configuration.
type Config struct {
	Generate GenerateConfig `toml:"generate"`
	Data     DataConfig     `toml:"data"`
}

// GenerateConfig holds default generation settings, overridden by flags.
type GenerateConfig struct {
	Categories []string `toml:"categories"`
	Gender     string   `toml:"gender"`
	Case       string   `toml:"case"`
}

// DataConfig holds name-data settings.
type DataConfig struct {
	// ExtraDirs lists directories scanned for user category files
	// (*.toml) merged over the bundled data.
	ExtraDirs []string `toml:"extra_dirs"`
}

// Default returns a Config populated with default values.
func Default() *Config {
	return &Config{
		Generate: GenerateConfig{
			Categories: []string{"std"},
			Gender:     "either",
			Case:       "none",
		},
	}
}

// Load reads the configuration from the default path
// ($XDG_CONFIG_HOME/qngen/config.toml or ~/.config/qngen/config.toml).
// If the file does not exist, defaults are returned without error.
func Load() (*Config, error) {
	return LoadFrom(DefaultPath())
}

// LoadFrom reads the configuration from the given path.
// If the file does not exist, defaults are returned without error.
func LoadFrom(path string) (*Config, error) {
	cfg := &Config{}

	_, err := toml.DecodeFile(path, cfg)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, err
	}

	applyDefaults(cfg)
	return cfg, nil
}

// applyDefaults fills in zero-valued fields with their default values.
func applyDefaults(cfg *Config) {
	d := Default()
	if len(cfg.Generate.Categories) == 0 {
		cfg.Generate.Categories = d.Generate.Categories
	}
	if cfg.Generate.Gender == "" {
		cfg.Generate.Gender = d.Generate.Gender
	}
	if cfg.Generate.Case == "" {
		cfg.Generate.Case = d.Generate.Case
	}
}

// DefaultPath returns the default config file path.
func DefaultPath() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "qngen", "config.toml")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "qngen", "config.toml")
}
