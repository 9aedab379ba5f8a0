// Package config loads vbnorm settings from a TOML file.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// EnvVar names the environment variable holding the config file path.
const EnvVar = "VBNORM_CONFIG"

// ErrNotFound is returned by Load when the file does not exist.
var ErrNotFound = errors.New("config file not found")

// Config holds the complete tool configuration
type Config struct {
	General  GeneralConfig  `toml:"general"`
	Generate GenerateConfig `toml:"generate"`
	Batch    BatchConfig    `toml:"batch"`
}

// GeneralConfig holds general settings
type GeneralConfig struct {
	LogLevel string `toml:"log_level"`
}

// GenerateConfig holds code generation settings
type GenerateConfig struct {
	PreserveCase    bool   `toml:"preserve_case"`
	OutputExtension string `toml:"output_extension"`
}

// BatchConfig holds settings for compiling several files at once
type BatchConfig struct {
	Workers int `toml:"workers"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads the configuration at path. Environment variables in path are
// expanded; missing values are filled with defaults.
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	}

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyDefaults()

	if _, err := cfg.Level(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadFromEnv loads the file named by VBNORM_CONFIG, or the first default
// location that exists. With neither, it returns Default().
func LoadFromEnv() (*Config, error) {
	if path := os.Getenv(EnvVar); path != "" {
		return Load(path)
	}

	defaultPaths := []string{"./vbnorm.toml"}
	if dir, err := os.UserConfigDir(); err == nil {
		defaultPaths = append(defaultPaths, filepath.Join(dir, "vbnorm", "config.toml"))
	}
	for _, p := range defaultPaths {
		if _, err := os.Stat(p); err == nil {
			return Load(p)
		}
	}
	return Default(), nil
}

// Level parses General.LogLevel.
func (c *Config) Level() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.General.LogLevel)); err != nil {
		return 0, fmt.Errorf("invalid log_level %q: %w", c.General.LogLevel, err)
	}
	return lvl, nil
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	if c.General.LogLevel == "" {
		c.General.LogLevel = "warn"
	}
	if c.Generate.OutputExtension == "" {
		c.Generate.OutputExtension = ".legacy.bas"
	}
	if c.Batch.Workers <= 0 {
		c.Batch.Workers = 4
	}
}
