package config

import (
	"os"
	"path/filepath"
	"testing"

	"advanced-notepad/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadMergesYAML(t *testing.T) {
	path := writeConfig(t, "font_size: 20\ndark_mode: true\nclipboard: system\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 20, cfg.FontSize)
	assert.True(t, cfg.DarkMode)
	assert.Equal(t, ClipboardSystem, cfg.Clipboard)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "font_size: 20\n")
	t.Setenv("NOTEPAD_FONT_SIZE", "28")
	t.Setenv("NOTEPAD_LOG_LEVEL", "warn")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 28, cfg.FontSize)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoadDebugAll(t *testing.T) {
	t.Setenv("NOTEPAD_DEBUG_ALL", "true")

	cfg, err := Load(writeConfig(t, ""))
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.EnableFileTracking)
	assert.True(t, cfg.EnableTimingTracking)
}

func TestLoadExplicitMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadRejectsBadYAML(t *testing.T) {
	_, err := Load(writeConfig(t, "font_size: [not, a, number]\n"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	assert.NoError(t, cfg.Validate())

	cfg.Clipboard = "carrier-pigeon"
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.FontSize = 0
	assert.Error(t, cfg.Validate())

	cfg.FontSize = 15
	assert.ErrorIs(t, cfg.Validate(), models.ErrUnsupportedFontSize)
}

func TestGetEnvHelpers(t *testing.T) {
	t.Setenv("NOTEPAD_TEST_BOOL", "invalid")
	assert.True(t, getEnvBool("NOTEPAD_TEST_BOOL", true))

	t.Setenv("NOTEPAD_TEST_INT", "x")
	assert.Equal(t, 7, getEnvInt("NOTEPAD_TEST_INT", 7))

	t.Setenv("NOTEPAD_TEST_STR", "  ")
	assert.Equal(t, "fallback", getEnv("NOTEPAD_TEST_STR", "fallback"))
}
