package bdsapi

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultBaseURL is the public Snapshotter Core API endpoint.
const DefaultBaseURL = "https://bds-api.powerloom.io"

// EnvBaseURL is the environment variable that overrides the upstream base URL.
const EnvBaseURL = "SNAPSHOTTER_CORE_API_URL"

const defaultTimeout = 30 * time.Second

// Config is the immutable upstream configuration. It is constructed once at
// startup and injected into the client; nothing mutates it afterwards.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// fileConfig is the YAML shape of an optional config file. Timeout is a
// duration string (e.g. "30s", "500ms").
type fileConfig struct {
	BaseURL string `yaml:"base_url"`
	Timeout string `yaml:"timeout"`
}

// FromEnv builds a Config from the environment. A missing SNAPSHOTTER_CORE_API_URL
// falls back to the public endpoint.
func FromEnv() Config {
	base := os.Getenv(EnvBaseURL)
	if base == "" {
		base = DefaultBaseURL
	}

	return Config{BaseURL: base, Timeout: defaultTimeout}
}

// LoadConfig reads a YAML config file and returns a Config. Environment
// variables referenced as ${VAR} or $VAR in the YAML are expanded before
// parsing; SNAPSHOTTER_CORE_API_URL, when set, wins over the file's base_url.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is caller-provided configuration, not user input
	if err != nil {
		return Config{}, fmt.Errorf("bdsapi: load config: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	var fc fileConfig
	if err := yaml.Unmarshal([]byte(expanded), &fc); err != nil {
		return Config{}, fmt.Errorf("bdsapi: parse config: %w", err)
	}

	cfg := Config{BaseURL: fc.BaseURL, Timeout: defaultTimeout}

	if fc.Timeout != "" {
		d, err := time.ParseDuration(fc.Timeout)
		if err != nil {
			return Config{}, fmt.Errorf("bdsapi: parse timeout: %w", err)
		}
		cfg.Timeout = d
	}

	if env := os.Getenv(EnvBaseURL); env != "" {
		cfg.BaseURL = env
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}

	return cfg, nil
}
