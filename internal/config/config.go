// Package config loads server configuration from TOML files with
// environment and command-line flag overrides.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/edtools/schooldigger-mcp/internal/common"
)

// Config represents the application configuration.
type Config struct {
	Server       ServerConfig         `toml:"server"`
	SchoolDigger SchoolDiggerConfig   `toml:"schooldigger"`
	Logging      common.LoggingConfig `toml:"logging"`
}

// ServerConfig contains MCP server settings.
type ServerConfig struct {
	Name string `toml:"name"`
	Host string `toml:"host"`
	Port int    `toml:"port"`
}

// SchoolDiggerConfig contains SchoolDigger API settings.
// AppID and AppKey are sent as query parameters on every upstream request.
type SchoolDiggerConfig struct {
	BaseURL string `toml:"base_url"`
	AppID   string `toml:"app_id"`
	AppKey  string `toml:"app_key"`
	Timeout string `toml:"timeout"`
}

// GetTimeout parses and returns the upstream request timeout duration
func (c *SchoolDiggerConfig) GetTimeout() time.Duration {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 30 * time.Second
	}
	return d
}

// NewDefaultConfig returns a Config with sensible defaults
func NewDefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Name: "SchoolDigger-MCP",
			Host: "127.0.0.1",
			Port: 8080,
		},
		SchoolDigger: SchoolDiggerConfig{
			BaseURL: "https://api.schooldigger.com/v2.3",
			Timeout: "30s",
		},
		Logging: common.LoggingConfig{
			Level:   "info",
			Format:  "json",
			Outputs: []string{"console"},
		},
	}
}

// LoadFromFile loads configuration with priority: defaults -> file -> env.
func LoadFromFile(path string) (*Config, error) {
	if path == "" {
		return LoadFromFiles()
	}
	return LoadFromFiles(path)
}

// LoadFromFiles loads configuration from multiple files with priority:
// defaults -> file1 -> file2 -> ... -> env.
// Later files override earlier files. Missing files are skipped so the
// server runs with defaults and environment variables alone.
func LoadFromFiles(paths ...string) (*Config, error) {
	config := NewDefaultConfig()

	for _, path := range paths {
		if path == "" {
			continue
		}

		if _, err := os.Stat(path); os.IsNotExist(err) {
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	applyEnvOverrides(config)

	return config, nil
}

// applyEnvOverrides applies SCHOOLDIGGER_* environment variable overrides to config.
func applyEnvOverrides(config *Config) {
	if appID := os.Getenv("SCHOOLDIGGER_API_ID"); appID != "" {
		config.SchoolDigger.AppID = appID
	}
	if appKey := os.Getenv("SCHOOLDIGGER_API_KEY"); appKey != "" {
		config.SchoolDigger.AppKey = appKey
	}
	if baseURL := os.Getenv("SCHOOLDIGGER_API_URL"); baseURL != "" {
		config.SchoolDigger.BaseURL = baseURL
	}
	if host := os.Getenv("SCHOOLDIGGER_MCP_HOST"); host != "" {
		config.Server.Host = host
	}
	if port := os.Getenv("SCHOOLDIGGER_MCP_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			config.Server.Port = p
		}
	}
	if level := os.Getenv("SCHOOLDIGGER_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}
}

// ApplyFlagOverrides applies command-line flag overrides to config.
// Flags win over both config files and environment variables.
func ApplyFlagOverrides(config *Config, port int, host string) {
	if port > 0 {
		config.Server.Port = port
	}
	if host != "" {
		config.Server.Host = host
	}
}
