package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/outstanding/pkg/config"
	"github.com/arthur-debert/outstanding/pkg/errors"
)

func TestLoadDefaults(t *testing.T) {
	settings, err := config.Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, 0, settings.Output.Width)
	assert.Equal(t, "none", settings.Output.Border)
	assert.Equal(t, "auto", settings.Output.Color)
	assert.Equal(t, "", settings.Output.Stylesheet)
	assert.Equal(t, 0, settings.Logging.Verbosity)
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "outstanding.toml", `
[output]
width = 120
border = "rounded"
`)

	settings, err := config.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, 120, settings.Output.Width)
	assert.Equal(t, "rounded", settings.Output.Border)
	assert.Equal(t, "auto", settings.Output.Color, "untouched keys keep their defaults")
}

func TestLoadDottedFileWins(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, ".outstanding.toml", "[output]\nwidth = 90\n")
	writeConfig(t, dir, "outstanding.toml", "[output]\nwidth = 100\n")

	settings, err := config.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, 90, settings.Output.Width)
}

func TestLoadYAMLConfig(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "outstanding.yaml", "output:\n  width: 72\n  border: ascii\n")

	settings, err := config.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, 72, settings.Output.Width)
	assert.Equal(t, "ascii", settings.Output.Border)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "outstanding.toml", "[output]\nwidth = 100\n")
	t.Setenv("OUTSTANDING_OUTPUT_WIDTH", "55")
	t.Setenv("OUTSTANDING_OUTPUT_COLOR", "never")

	settings, err := config.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, 55, settings.Output.Width)
	assert.Equal(t, "never", settings.Output.Color)
}

func TestLoadRejectsBadValues(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "outstanding.toml", `
[output]
color = "sometimes"
`)
	_, err := config.Load(dir)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
}

func TestLoadRejectsBrokenFile(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "outstanding.toml", "not toml at all [[[")

	_, err := config.Load(dir)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
}

func writeConfig(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}
