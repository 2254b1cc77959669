package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nss_config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadFromPath_Valid(t *testing.T) {
	path := writeConfig(t, `
apiBaseURL: http://localhost:5000/api
requestTimeoutMs: 2000
pollIntervalMs: 1000
`)

	cfg, err := LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:5000/api", cfg.APIBaseURL)
	assert.Equal(t, 2*time.Second, cfg.RequestTimeout())
	assert.Equal(t, time.Second, cfg.PollInterval())
}

func TestLoadFromPath_Defaults(t *testing.T) {
	path := writeConfig(t, "apiBaseURL: http://localhost:5000/api\n")

	cfg, err := LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout())
	assert.Equal(t, 5*time.Second, cfg.PollInterval())
}

func TestLoadFromPath_MissingBaseURLFails(t *testing.T) {
	path := writeConfig(t, "pollIntervalMs: 1000\n")

	_, err := LoadFromPath(path)
	require.Error(t, err)
}

func TestLoadFromPath_TooSmallPollIntervalFails(t *testing.T) {
	path := writeConfig(t, `
apiBaseURL: http://localhost:5000/api
pollIntervalMs: 10
`)

	_, err := LoadFromPath(path)
	require.Error(t, err)
}

func TestResolveSessionPath_ExplicitWins(t *testing.T) {
	cfg := &Config{SessionPath: "/tmp/custom_session.json"}
	path, err := cfg.ResolveSessionPath()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/custom_session.json", path)
}
