package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"advanced-notepad/internal/models"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	ClipboardApp    = "app"
	ClipboardSystem = "system"

	appDirName     = "advanced-notepad"
	configFileName = "config.yaml"
)

// Config holds startup defaults. It is read once and never written back.
type Config struct {
	LogLevel             string `yaml:"log_level"`
	JSONLogs             bool   `yaml:"json_logs"`
	EnableFileTracking   bool   `yaml:"file_tracking"`
	EnableTimingTracking bool   `yaml:"timing_tracking"`
	FontSize             int    `yaml:"font_size"`
	DarkMode             bool   `yaml:"dark_mode"`
	Clipboard            string `yaml:"clipboard"`
	WatchFiles           bool   `yaml:"watch_files"`
}

func Default() Config {
	return Config{
		LogLevel:             "info",
		JSONLogs:             false,
		EnableFileTracking:   true,
		EnableTimingTracking: false,
		FontSize:             12,
		DarkMode:             false,
		Clipboard:            ClipboardApp,
		WatchFiles:           true,
	}
}

// Load layers defaults, the YAML file, a .env file in the working directory
// and NOTEPAD_* variables, in that order. An empty path falls back to the
// per-user config file, which may be absent.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}
	if path != "" {
		if err := cfg.mergeFile(path); err != nil {
			if explicit || !errors.Is(err, fs.ErrNotExist) {
				return cfg, err
			}
		}
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return cfg, fmt.Errorf("failed to read .env: %w", err)
	}

	cfg.applyEnv()
	return cfg, cfg.Validate()
}

// DefaultPath returns the per-user config file location, or "" when no home is known
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, appDirName, configFileName)
}

func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() {
	c.LogLevel = getEnv("NOTEPAD_LOG_LEVEL", c.LogLevel)
	c.JSONLogs = getEnvBool("NOTEPAD_JSON_LOGS", c.JSONLogs)
	c.EnableFileTracking = getEnvBool("NOTEPAD_DEBUG_FILES", c.EnableFileTracking)
	c.EnableTimingTracking = getEnvBool("NOTEPAD_DEBUG_TIMING", c.EnableTimingTracking)
	c.FontSize = getEnvInt("NOTEPAD_FONT_SIZE", c.FontSize)
	c.DarkMode = getEnvBool("NOTEPAD_DARK_MODE", c.DarkMode)
	c.Clipboard = getEnv("NOTEPAD_CLIPBOARD", c.Clipboard)
	c.WatchFiles = getEnvBool("NOTEPAD_WATCH_FILES", c.WatchFiles)

	if getEnvBool("NOTEPAD_DEBUG_ALL", false) {
		c.LogLevel = "debug"
		c.EnableFileTracking = true
		c.EnableTimingTracking = true
	}
}

// Validate rejects values the editor cannot start with
func (c Config) Validate() error {
	switch c.Clipboard {
	case ClipboardApp, ClipboardSystem:
	default:
		return fmt.Errorf("unknown clipboard backend %q", c.Clipboard)
	}
	if !models.IsSupportedFontSize(c.FontSize) {
		return fmt.Errorf("%w: %d", models.ErrUnsupportedFontSize, c.FontSize)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
		return v
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

func getEnvInt(key string, fallback int) int {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return i
}
