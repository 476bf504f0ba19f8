package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestRootCmd creates a cobra.Command with the same flags as the real
// root command so that Load can bind them during tests.
func newTestRootCmd() *cobra.Command {
	cmd := &cobra.Command{}
	f := cmd.Flags()
	f.String("log-level", LogLevelInfo, "")
	f.String("log-format", LogFormatText, "")
	f.Bool("no-color", false, "")
	f.Int("buffer-size", 1024, "")
	f.String("redis-addr", "localhost:6379", "")

	return cmd
}

// writeTempConfig writes a YAML string to a temporary file and returns the path.
func writeTempConfig(t *testing.T, content string) string {
	t.Helper()

	dir := t.TempDir()
	p := filepath.Join(dir, "cfg.yaml")
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))

	return p
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, LogLevelInfo, cfg.LogLevel)
	assert.Equal(t, LogFormatText, cfg.LogFormat)
	assert.False(t, cfg.NoColor)
	assert.Equal(t, 1024, cfg.BufferSize)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
}

func TestValidate_ValidValues(t *testing.T) {
	for _, lvl := range []string{"debug", "info", "warn", "error"} {
		cfg := Default()
		cfg.LogLevel = lvl
		assert.NoError(t, cfg.Validate(), "level=%s", lvl)
	}

	for _, format := range []string{"text", "json"} {
		cfg := Default()
		cfg.LogFormat = format
		assert.NoError(t, cfg.Validate(), "format=%s", format)
	}
}

func TestValidate_InvalidLogLevel(t *testing.T) {
	cfg := Default()
	cfg.LogLevel = "verbose"
	assert.ErrorContains(t, cfg.Validate(), "invalid log level")
}

func TestValidate_InvalidLogFormat(t *testing.T) {
	cfg := Default()
	cfg.LogFormat = "xml"
	assert.ErrorContains(t, cfg.Validate(), "invalid log format")
}

func TestValidate_InvalidBufferSize(t *testing.T) {
	cfg := Default()
	cfg.BufferSize = 0
	assert.ErrorContains(t, cfg.Validate(), "invalid buffer size")
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(newTestRootCmd(), writeTempConfig(t, ""))
	require.NoError(t, err)
	assert.Equal(t, LogLevelInfo, cfg.LogLevel)
	assert.Equal(t, 1024, cfg.BufferSize)
}

func TestLoad_ConfigFile(t *testing.T) {
	path := writeTempConfig(t, "log-level: debug\nbuffer-size: 64\n")

	cfg, err := Load(newTestRootCmd(), path)
	require.NoError(t, err)
	assert.Equal(t, LogLevelDebug, cfg.LogLevel)
	assert.Equal(t, 64, cfg.BufferSize)
	assert.Equal(t, path, cfg.ConfigFile)
}

func TestLoad_FlagOverridesFile(t *testing.T) {
	path := writeTempConfig(t, "log-level: debug\n")

	cmd := newTestRootCmd()
	require.NoError(t, cmd.Flags().Set("log-level", "error"))

	cfg, err := Load(cmd, path)
	require.NoError(t, err)
	assert.Equal(t, LogLevelError, cfg.LogLevel)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(newTestRootCmd(), filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_InvalidValueRejected(t *testing.T) {
	path := writeTempConfig(t, "log-level: loud\n")

	_, err := Load(newTestRootCmd(), path)
	assert.ErrorContains(t, err, "invalid log level")
}
