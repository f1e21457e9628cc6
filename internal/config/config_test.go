package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "picture-mcp.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 0, cfg.Workers)
	assert.Equal(t, 30, cfg.Defaults.FillThreshold)
	assert.Equal(t, 20, cfg.Defaults.EdgeThreshold)
	assert.Equal(t, 60, cfg.Defaults.ChromaThreshold)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_NoPath(t *testing.T) {
	t.Setenv(EnvConfig, "")
	t.Setenv(EnvLogLevel, "")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_File(t *testing.T) {
	t.Setenv(EnvLogLevel, "")
	path := writeConfig(t, `
log_level  = "debug"
output_dir = "/tmp/out"
workers    = 3

[defaults]
fill_threshold = 12
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "/tmp/out", cfg.OutputDir)
	assert.Equal(t, 3, cfg.Workers)
	assert.Equal(t, 12, cfg.Defaults.FillThreshold)
	// Unset keys keep their defaults.
	assert.Equal(t, 20, cfg.Defaults.EdgeThreshold)
	assert.Equal(t, log.DebugLevel, cfg.Level())
}

func TestLoad_EnvPath(t *testing.T) {
	t.Setenv(EnvLogLevel, "")
	t.Setenv(EnvConfig, writeConfig(t, `workers = 2`))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Workers)
}

func TestLoad_EnvLogLevelWins(t *testing.T) {
	t.Setenv(EnvLogLevel, "warn")
	path := writeConfig(t, `log_level = "debug"`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, log.WarnLevel, cfg.Level())
}

func TestLoad_Errors(t *testing.T) {
	t.Setenv(EnvLogLevel, "")

	tests := []struct {
		name string
		body string
	}{
		{"unknown key", `colour = "red"`},
		{"negative workers", `workers = -1`},
		{"bad level", `log_level = "loud"`},
		{"negative threshold", "[defaults]\nedge_threshold = -5"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestLoad_Malformed(t *testing.T) {
	t.Setenv(EnvLogLevel, "")
	_, err := Load(writeConfig(t, `workers = `))
	require.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.Error(t, err)
}

func TestValidate_ReportsField(t *testing.T) {
	cfg := Default()
	cfg.Defaults.ChromaThreshold = -1

	err := cfg.Validate()
	require.ErrorIs(t, err, ErrInvalidConfig)
	assert.Contains(t, err.Error(), "ChromaThreshold")
}
