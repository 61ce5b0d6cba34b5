// Package config provides file- and environment-driven configuration for gridpath.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Algorithm keys accepted in Algorithms and Overlay.
const (
	AlgorithmBFS   = "bfs"
	AlgorithmAStar = "astar"
)

// Config holds all application configuration values.
type Config struct {
	MapsDir     string   `yaml:"maps_dir"`
	LogLevel    string   `yaml:"log_level"`
	LogFormat   string   `yaml:"log_format"`
	MetricsFile string   `yaml:"metrics_file"`
	Algorithms  []string `yaml:"algorithms"`
	Overlay     []string `yaml:"overlay"`
	Parallel    int      `yaml:"parallel"`
}

// Default returns the configuration used when nothing else is set.
func Default() *Config {
	return &Config{
		MapsDir:    ".",
		LogLevel:   "warn",
		LogFormat:  "text",
		Algorithms: []string{AlgorithmBFS, AlgorithmAStar},
		Overlay:    []string{AlgorithmAStar},
		Parallel:   4,
	}
}

// Load builds a Config from defaults, then the YAML file at path (skipped when
// path is empty or the file does not exist), then GRIDPATH_* environment
// variables. The result is validated.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("config: parse %s: %w", path, err)
			}
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

func (c *Config) applyEnv() error {
	c.MapsDir = envOrDefault("GRIDPATH_MAPS_DIR", c.MapsDir)
	c.LogLevel = envOrDefault("GRIDPATH_LOG_LEVEL", c.LogLevel)
	c.LogFormat = envOrDefault("GRIDPATH_LOG_FORMAT", c.LogFormat)
	c.MetricsFile = envOrDefault("GRIDPATH_METRICS_FILE", c.MetricsFile)
	if v := os.Getenv("GRIDPATH_ALGORITHMS"); v != "" {
		c.Algorithms = splitList(v)
	}
	if v := os.Getenv("GRIDPATH_OVERLAY"); v != "" {
		c.Overlay = splitList(v)
	}
	if v := os.Getenv("GRIDPATH_PARALLEL"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("GRIDPATH_PARALLEL must be an integer: %w", err)
		}
		c.Parallel = n
	}
	return nil
}

// Validate checks every field and normalises algorithm keys to lower case.
func (c *Config) Validate() error {
	if c.MapsDir == "" {
		return fmt.Errorf("maps_dir must not be empty")
	}

	switch c.LogLevel {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal", "panic":
	default:
		return fmt.Errorf("log_level %q is not a valid level", c.LogLevel)
	}

	if c.LogFormat != "text" && c.LogFormat != "json" {
		return fmt.Errorf("log_format must be text or json, got %q", c.LogFormat)
	}

	if c.Parallel < 1 || c.Parallel > 16 {
		return fmt.Errorf("parallel must be an integer between 1 and 16, got %d", c.Parallel)
	}

	if len(c.Algorithms) == 0 {
		return fmt.Errorf("algorithms must name at least one of %s, %s", AlgorithmBFS, AlgorithmAStar)
	}
	var err error
	if c.Algorithms, err = normaliseAlgorithms("algorithms", c.Algorithms); err != nil {
		return err
	}
	if c.Overlay, err = normaliseAlgorithms("overlay", c.Overlay); err != nil {
		return err
	}

	return nil
}

// ShowsOverlay reports whether the report for algorithm key includes the grid.
func (c *Config) ShowsOverlay(key string) bool {
	for _, o := range c.Overlay {
		if o == key {
			return true
		}
	}
	return false
}

func normaliseAlgorithms(field string, keys []string) ([]string, error) {
	out := make([]string, 0, len(keys))
	seen := make(map[string]bool, len(keys))
	for _, k := range keys {
		k = strings.ToLower(strings.TrimSpace(k))
		switch k {
		case AlgorithmBFS, AlgorithmAStar:
		default:
			return nil, fmt.Errorf("%s: unknown algorithm %q", field, k)
		}
		if !seen[k] {
			seen[k] = true
			out = append(out, k)
		}
	}
	return out, nil
}

// splitList splits a comma-separated list; an empty string yields no items.
func splitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return fallback
}
