// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config for a report run
type Config struct {
	FMLogPath  string `yaml:"fmlog_path"`
	HWGrokPath string `yaml:"hwgrok_path"` // optional hardware inventory
	Format     string `yaml:"format"`
	Color      bool   `yaml:"color"`
	LogLevel   string `yaml:"log_level"`
	ExportDB   string `yaml:"export_db"`
}

// Default returns the configuration used when no file is given
func Default() *Config {
	return &Config{
		Format:   "text",
		LogLevel: "info",
	}
}

// Load reads config from a YAML file with env overrides. An empty path
// skips the file and applies env overrides to the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	}

	// Env overrides
	if p := os.Getenv("FMAREPORT_FMLOG"); p != "" {
		cfg.FMLogPath = p
	}
	if p := os.Getenv("FMAREPORT_HWGROK"); p != "" {
		cfg.HWGrokPath = p
	}
	if lvl := os.Getenv("FMAREPORT_LOG_LEVEL"); lvl != "" {
		cfg.LogLevel = lvl
	}

	return cfg, nil
}

// Validate checks the settings this package owns. Format and log level
// are checked by the command that consumes them.
func (c *Config) Validate() error {
	if c.FMLogPath == "" {
		return errors.New("no event log given (--fmlog or fmlog_path)")
	}
	return nil
}
