package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds server settings. Zero values fall back to defaults, so a
// partial (or missing) file is fine.
type Config struct {
	Listen   string `yaml:"listen"`
	DBPath   string `yaml:"db_path"`
	LockWait string `yaml:"lock_wait"`
}

func Default() Config {
	return Config{
		Listen:   ":8090",
		LockWait: "10s",
	}
}

// Load reads a YAML config file over the defaults. An empty path returns
// the defaults; a missing file at an explicit path is an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	if cfg.Listen == "" {
		cfg.Listen = Default().Listen
	}
	return cfg, nil
}

// LockWaitDuration parses the configured lock wait, falling back to 10s on
// anything unparseable.
func (c Config) LockWaitDuration() time.Duration {
	d, err := time.ParseDuration(c.LockWait)
	if err != nil || d <= 0 {
		return 10 * time.Second
	}
	return d
}
