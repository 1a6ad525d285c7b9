// Copyright (c) 2025 Hoang Tran Minh
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete legalchat configuration.
type Config struct {
	Version string `toml:"version"`

	// API configuration
	API APIConfig `toml:"api"`

	// Storage configuration
	Storage StorageConfig `toml:"storage"`

	// UI configuration
	UI UIConfig `toml:"ui"`
}

// APIConfig contains backend connection configuration.
type APIConfig struct {
	// BaseURL is the backend address. The LEGALCHAT_API_URL environment
	// variable and the --api flag both take precedence over this.
	BaseURL string `toml:"base_url"`
}

// StorageConfig selects where sessions and preferences are kept.
type StorageConfig struct {
	// Backend is "sqlite", "file", or "memory".
	// "sqlite" (default): a single database at <dir>/state.db
	// "file": one file per key under <dir>/kv/
	// "memory": nothing persists past the process (useful for demos)
	Backend string `toml:"backend"`
	// Dir overrides the data directory (default ~/.legalchat).
	Dir string `toml:"dir"`
}

// UIConfig contains presentation configuration.
type UIConfig struct {
	// Theme is "light", "dark", or "auto". "auto" follows the terminal
	// background. The in-app dark-mode toggle overrides this and persists
	// through the storage backend.
	Theme string `toml:"theme"`
	// ShowWelcome shows the suggestion screen when a chat is empty.
	ShowWelcome bool `toml:"show_welcome"`
}

// =============================================================================
// DEFAULTS AND PATHS
// =============================================================================

// Environment variable overrides.
const (
	EnvDark    = "LEGALCHAT_DARK"
	EnvStore   = "LEGALCHAT_STORE"
	EnvDataDir = "LEGALCHAT_DIR"
)

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Version: "1",
		API: APIConfig{
			BaseURL: "http://localhost:8000",
		},
		Storage: StorageConfig{
			Backend: "sqlite",
		},
		UI: UIConfig{
			Theme:       "auto",
			ShowWelcome: true,
		},
	}
}

// Dir returns the legalchat data directory (~/.legalchat), honoring the
// LEGALCHAT_DIR override.
func Dir() (string, error) {
	if dir := os.Getenv(EnvDataDir); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".legalchat"), nil
}

// Path returns the config file path (~/.legalchat/config.toml).
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// EnsureDir creates the data directory if needed.
func EnsureDir() error {
	dir, err := Dir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0o700)
}

// =============================================================================
// LOADING AND SAVING
// =============================================================================

// Load loads configuration from the config file, falling back to defaults
// when the file is absent. Environment overrides are applied last.
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		return nil, err
	}
	return LoadFromPath(path)
}

// LoadFromPath loads configuration from a specific file path with full
// validation. A missing file is not an error; defaults are used.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()

	if _, statErr := os.Stat(path); statErr == nil {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("decode config file: %w", err)
		}
	}

	cfg.ApplyEnvOverrides()
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// ApplyEnvOverrides applies environment variables over file values.
func (c *Config) ApplyEnvOverrides() {
	if v := os.Getenv(EnvDark); v != "" {
		switch strings.ToLower(v) {
		case "1", "true", "yes", "dark":
			c.UI.Theme = "dark"
		case "0", "false", "no", "light":
			c.UI.Theme = "light"
		}
	}
	if v := os.Getenv(EnvStore); v != "" {
		c.Storage.Backend = strings.ToLower(v)
	}
	if v := os.Getenv(EnvDataDir); v != "" {
		c.Storage.Dir = v
	}
}

// SetDefaults fills empty fields with built-in values.
func (c *Config) SetDefaults() {
	def := Default()
	if c.Version == "" {
		c.Version = def.Version
	}
	if c.API.BaseURL == "" {
		c.API.BaseURL = def.API.BaseURL
	}
	if c.Storage.Backend == "" {
		c.Storage.Backend = def.Storage.Backend
	}
	if c.UI.Theme == "" {
		c.UI.Theme = def.UI.Theme
	}
}

// Save writes the configuration to the default TOML file with restrictive
// permissions.
func Save(cfg *Config) error {
	path, err := Path()
	if err != nil {
		return err
	}
	return SaveTOML(cfg, path)
}

// SaveTOML writes the configuration to a TOML file.
func SaveTOML(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("create config file: %w", err)
	}
	defer file.Close()

	fmt.Fprintln(file, "# legalchat configuration file")
	fmt.Fprintln(file, "")

	if err := toml.NewEncoder(file).Encode(cfg); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return nil
}

// =============================================================================
// VALIDATION
// =============================================================================

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate checks the configuration and returns the first error found.
func (c *Config) Validate() error {
	switch c.Storage.Backend {
	case "sqlite", "file", "memory":
	default:
		return ValidationError{
			Field:   "storage.backend",
			Message: fmt.Sprintf("must be sqlite, file, or memory (got %q)", c.Storage.Backend),
		}
	}

	switch c.UI.Theme {
	case "light", "dark", "auto":
	default:
		return ValidationError{
			Field:   "ui.theme",
			Message: fmt.Sprintf("must be light, dark, or auto (got %q)", c.UI.Theme),
		}
	}

	if c.API.BaseURL != "" {
		u, err := url.Parse(c.API.BaseURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return ValidationError{
				Field:   "api.base_url",
				Message: fmt.Sprintf("must be an absolute http(s) URL (got %q)", c.API.BaseURL),
			}
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			return ValidationError{
				Field:   "api.base_url",
				Message: fmt.Sprintf("unsupported scheme %q", u.Scheme),
			}
		}
	}

	return nil
}
