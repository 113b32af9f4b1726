package config

import (
	"os"
	"strconv"
	"time"
)

// Store backends
const (
	BackendMemory = "memory"
	BackendSQLite = "sqlite"
)

// Supported list formats
var listFormats = []string{"table", "csv", "json", "yaml"}

// Config holds all configuration options for the todo application
type Config struct {
	Store       StoreConfig
	Validation  ValidationConfig
	Display     DisplayConfig
	Application ApplicationConfig
}

// StoreConfig selects and tunes the task store
type StoreConfig struct {
	Backend      string        `env:"TODO_STORE_BACKEND"`
	QueryTimeout time.Duration `env:"TODO_STORE_QUERY_TIMEOUT"`
}

// ValidationConfig holds validation rules for names read from input
type ValidationConfig struct {
	TaskNameMaxLength int `env:"TODO_VALIDATION_TASK_NAME_MAX"`
}

// DisplayConfig holds display formatting configuration
type DisplayConfig struct {
	ListDefaultFormat string `env:"TODO_LIST_DEFAULT_FORMAT"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Timeout time.Duration `env:"TODO_APP_TIMEOUT"`
	Verbose bool          `env:"TODO_APP_VERBOSE"`
	Strict  bool          `env:"TODO_APP_STRICT"`
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	return &Config{
		Store: StoreConfig{
			Backend:      BackendMemory,
			QueryTimeout: 5 * time.Second,
		},
		Validation: ValidationConfig{
			TaskNameMaxLength: 255,
		},
		Display: DisplayConfig{
			ListDefaultFormat: "table",
		},
		Application: ApplicationConfig{
			Timeout: 60 * time.Second,
		},
	}
}

// LoadFromEnvironment loads configuration from environment variables.
// Unparseable values are ignored and the current value is kept.
func (c *Config) LoadFromEnvironment() error {
	// Store configuration
	if backend := os.Getenv("TODO_STORE_BACKEND"); backend != "" {
		c.Store.Backend = backend
	}
	if timeout := os.Getenv("TODO_STORE_QUERY_TIMEOUT"); timeout != "" {
		c.Store.QueryTimeout = ParseDurationWithFallback(timeout, c.Store.QueryTimeout)
	}

	// Validation configuration
	if maxLen := os.Getenv("TODO_VALIDATION_TASK_NAME_MAX"); maxLen != "" {
		c.Validation.TaskNameMaxLength = ParseIntWithFallback(maxLen, c.Validation.TaskNameMaxLength)
	}

	// Display configuration
	if format := os.Getenv("TODO_LIST_DEFAULT_FORMAT"); format != "" {
		c.Display.ListDefaultFormat = format
	}

	// Application configuration
	if timeout := os.Getenv("TODO_APP_TIMEOUT"); timeout != "" {
		c.Application.Timeout = ParseDurationWithFallback(timeout, c.Application.Timeout)
	}
	if verbose := os.Getenv("TODO_APP_VERBOSE"); verbose != "" {
		c.Application.Verbose = ParseBoolWithFallback(verbose, c.Application.Verbose)
	}
	if strict := os.Getenv("TODO_APP_STRICT"); strict != "" {
		c.Application.Strict = ParseBoolWithFallback(strict, c.Application.Strict)
	}

	return nil
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	// Validate store configuration
	if c.Store.Backend != BackendMemory && c.Store.Backend != BackendSQLite {
		return &ConfigError{Field: "store.backend", Message: "backend must be one of memory, sqlite"}
	}
	if c.Store.QueryTimeout <= 0 {
		return &ConfigError{Field: "store.query_timeout", Message: "query timeout must be positive"}
	}

	// Validate validation configuration
	if c.Validation.TaskNameMaxLength < 0 {
		return &ConfigError{Field: "validation.task_name_max_length", Message: "task name maximum length cannot be negative"}
	}

	// Validate display configuration
	if !IsListFormat(c.Display.ListDefaultFormat) {
		return &ConfigError{Field: "display.list_default_format", Message: "list format must be one of table, csv, json, yaml"}
	}

	// Validate application configuration
	if c.Application.Timeout <= 0 {
		return &ConfigError{Field: "application.timeout", Message: "application timeout must be positive"}
	}

	return nil
}

// IsListFormat reports whether format is a supported list format
func IsListFormat(format string) bool {
	for _, f := range listFormats {
		if f == format {
			return true
		}
	}
	return false
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}

// ParseDurationWithFallback parses a duration string with a fallback value
func ParseDurationWithFallback(s string, fallback time.Duration) time.Duration {
	if d, err := time.ParseDuration(s); err == nil {
		return d
	}
	return fallback
}

// ParseIntWithFallback parses an integer string with a fallback value
func ParseIntWithFallback(s string, fallback int) int {
	if i, err := strconv.Atoi(s); err == nil {
		return i
	}
	return fallback
}

// ParseBoolWithFallback parses a boolean string with a fallback value
func ParseBoolWithFallback(s string, fallback bool) bool {
	if b, err := strconv.ParseBool(s); err == nil {
		return b
	}
	return fallback
}
