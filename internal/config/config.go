// Package config loads and validates the crewline configuration from
// a YAML file with environment variable overrides.
package config

import (
	"os"
	"path/filepath"

	"github.com/moolen/crewline/internal/agent/multiagent/types"
)

// Config holds all configuration for the application
type Config struct {
	// Model is the LLM model identifier used by the agent crews
	Model string `koanf:"model"`

	// AnthropicAPIKey authenticates against the Anthropic API.
	// Usually set via the ANTHROPIC_API_KEY environment variable.
	AnthropicAPIKey string `koanf:"anthropic_api_key"`

	// Crew is the default crew for interactive sessions (crm or lifecycle)
	Crew string `koanf:"crew"`

	// LogLevel is the logging level (debug, info, warn, error)
	LogLevel string `koanf:"log_level"`

	// AuditDir is the directory where session audit logs are written
	AuditDir string `koanf:"audit_dir"`

	// OutputDir is the directory where generated documentation is written
	OutputDir string `koanf:"output_dir"`

	// MetricsAddr is the listen address for the Prometheus /metrics
	// endpoint of the MCP server. Empty disables the listener.
	MetricsAddr string `koanf:"metrics_addr"`
}

// Default returns the configuration defaults applied before file and
// environment overrides.
func Default() *Config {
	home, _ := os.UserHomeDir()
	return &Config{
		Model:     "claude-sonnet-4-5-20250929",
		Crew:      types.CrewCRM,
		LogLevel:  "info",
		AuditDir:  filepath.Join(home, ".crewline", "sessions"),
		OutputDir: "docs",
	}
}

// DefaultPath returns the default config file location.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.yaml"
	}
	return filepath.Join(home, ".crewline", "config.yaml")
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if c.Model == "" {
		return NewConfigError("Model must not be empty")
	}

	if c.Crew != types.CrewCRM && c.Crew != types.CrewLifecycle {
		return NewConfigError("Crew must be crm or lifecycle")
	}

	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return NewConfigError("LogLevel must be one of debug, info, warn, error")
	}

	return nil
}

// ConfigError represents a configuration error
type ConfigError struct {
	message string
}

// NewConfigError creates a new configuration error
func NewConfigError(message string) *ConfigError {
	return &ConfigError{message: message}
}

// Error returns the error message
func (e *ConfigError) Error() string {
	return e.message
}
