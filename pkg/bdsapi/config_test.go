package bdsapi

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestFromEnvDefault(t *testing.T) {
	t.Setenv(EnvBaseURL, "")

	cfg := FromEnv()
	assert.Equal(t, DefaultBaseURL, cfg.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
}

func TestFromEnvOverride(t *testing.T) {
	t.Setenv(EnvBaseURL, "http://localhost:9000")

	cfg := FromEnv()
	assert.Equal(t, "http://localhost:9000", cfg.BaseURL)
}

func TestLoadConfig(t *testing.T) {
	t.Setenv(EnvBaseURL, "")

	path := writeConfigFile(t, "base_url: http://example.com\ntimeout: 5s\n")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "http://example.com", cfg.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
}

func TestLoadConfigExpandsEnv(t *testing.T) {
	t.Setenv(EnvBaseURL, "")
	t.Setenv("UPSTREAM_HOST", "upstream.test")

	path := writeConfigFile(t, "base_url: http://${UPSTREAM_HOST}\n")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "http://upstream.test", cfg.BaseURL)
}

func TestLoadConfigEnvWins(t *testing.T) {
	t.Setenv(EnvBaseURL, "http://env.test")

	path := writeConfigFile(t, "base_url: http://file.test\n")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "http://env.test", cfg.BaseURL)
}

func TestLoadConfigEmptyFallsBack(t *testing.T) {
	t.Setenv(EnvBaseURL, "")

	path := writeConfigFile(t, "timeout: 1s\n")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultBaseURL, cfg.BaseURL)
	assert.Equal(t, time.Second, cfg.Timeout)
}

func TestLoadConfigBadTimeout(t *testing.T) {
	t.Setenv(EnvBaseURL, "")

	path := writeConfigFile(t, "timeout: soon\n")

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
