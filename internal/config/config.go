// Package config manages the tybotctl configuration file and its
// environment overrides. Defaults load first, then the config file, then
// TYBOT_* environment variables win.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/caarlos0/env/v6"
	"gopkg.in/yaml.v3"

	tyboterrors "github.com/tybotlabs/tybotctl/internal/errors"
)

// Config holds the tybotctl configuration
type Config struct {
	// APIURL is the platform REST API base, including the version prefix
	APIURL string `yaml:"api_url" env:"TYBOT_API_URL"`

	// DashboardURL is the web dashboard origin used when printing
	// role-based dashboard links after login
	DashboardURL string `yaml:"dashboard_url" env:"TYBOT_DASHBOARD_URL"`

	// IdentityURL is the identity provider origin for password recovery
	IdentityURL string `yaml:"identity_url" env:"TYBOT_IDENTITY_URL"`

	// IdentityAPIKey is the provider's public (anon) API key
	IdentityAPIKey string `yaml:"identity_api_key" env:"TYBOT_IDENTITY_API_KEY"`

	// ResetRedirect is the callback URL embedded in recovery emails
	ResetRedirect string `yaml:"reset_redirect" env:"TYBOT_RESET_REDIRECT"`

	// Format is the default output format (text, json, yaml)
	Format string `yaml:"format" env:"TYBOT_FORMAT"`

	// LogLevel is the minimum log level (debug, info, warn, error)
	LogLevel string `yaml:"log_level" env:"TYBOT_LOG_LEVEL"`

	// PageLimit is the default page size for paginated list commands
	PageLimit int `yaml:"page_limit" env:"TYBOT_PAGE_LIMIT"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		APIURL:        "http://localhost:5000/api/v1",
		DashboardURL:  "http://localhost:5173",
		ResetRedirect: "http://localhost:5173/reset-password",
		Format:        "text",
		LogLevel:      "info",
		PageLimit:     10,
	}
}

// DefaultPath returns the config file location under the user's home
// directory
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, ".tybot", "config.yaml"), nil
}

// Load reads the config file (when present) over the defaults, then applies
// environment overrides. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, tyboterrors.Wrap(tyboterrors.ErrCodeConfigNotFound, fmt.Sprintf("failed to read config file %s", path), err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, tyboterrors.Wrap(tyboterrors.ErrCodeConfigInvalid, fmt.Sprintf("invalid config file %s", path), err).
				WithSuggestion("Fix the YAML syntax or delete the file to start over")
		}
	}

	// Environment variables beat file values. Fields without a set
	// TYBOT_* variable are left untouched.
	if err := env.Parse(cfg); err != nil {
		return nil, tyboterrors.Wrap(tyboterrors.ErrCodeConfigInvalid, "invalid environment configuration", err)
	}

	return cfg, nil
}

// Save writes the config file
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return tyboterrors.Wrap(tyboterrors.ErrCodeConfigWrite, "failed to create config directory", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return tyboterrors.Wrap(tyboterrors.ErrCodeConfigWrite, "failed to marshal config", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return tyboterrors.Wrap(tyboterrors.ErrCodeConfigWrite, fmt.Sprintf("failed to write config file %s", path), err)
	}

	return nil
}

// Keys lists the settable config keys
func Keys() []string {
	return []string{
		"api_url",
		"dashboard_url",
		"identity_url",
		"identity_api_key",
		"reset_redirect",
		"format",
		"log_level",
		"page_limit",
	}
}

// Get returns the value of a named config key
func (c *Config) Get(key string) (string, error) {
	switch key {
	case "api_url":
		return c.APIURL, nil
	case "dashboard_url":
		return c.DashboardURL, nil
	case "identity_url":
		return c.IdentityURL, nil
	case "identity_api_key":
		return c.IdentityAPIKey, nil
	case "reset_redirect":
		return c.ResetRedirect, nil
	case "format":
		return c.Format, nil
	case "log_level":
		return c.LogLevel, nil
	case "page_limit":
		return strconv.Itoa(c.PageLimit), nil
	default:
		return "", tyboterrors.New(tyboterrors.ErrCodeConfigInvalid, fmt.Sprintf("unknown config key: %s", key)).
			WithSuggestion("Run 'tybotctl config view' to list available keys")
	}
}

// Set assigns a named config key
func (c *Config) Set(key, value string) error {
	switch key {
	case "api_url":
		c.APIURL = value
	case "dashboard_url":
		c.DashboardURL = value
	case "identity_url":
		c.IdentityURL = value
	case "identity_api_key":
		c.IdentityAPIKey = value
	case "reset_redirect":
		c.ResetRedirect = value
	case "format":
		if value != "text" && value != "json" && value != "yaml" {
			return tyboterrors.New(tyboterrors.ErrCodeConfigInvalid, fmt.Sprintf("unsupported format: %s", value)).
				WithSuggestion("Use one of: text, json, yaml")
		}
		c.Format = value
	case "log_level":
		c.LogLevel = value
	case "page_limit":
		n, err := strconv.Atoi(value)
		if err != nil || n < 1 {
			return tyboterrors.New(tyboterrors.ErrCodeConfigInvalid, fmt.Sprintf("page_limit must be a positive integer, got %q", value))
		}
		c.PageLimit = n
	default:
		return tyboterrors.New(tyboterrors.ErrCodeConfigInvalid, fmt.Sprintf("unknown config key: %s", key)).
			WithSuggestion("Run 'tybotctl config view' to list available keys")
	}
	return nil
}
