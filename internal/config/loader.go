package config

import (
	"time"
)

// Loader handles loading configuration from multiple sources
type Loader struct {
	config *Config
}

// NewLoader creates a new configuration loader
func NewLoader() *Loader {
	return &Loader{
		config: NewConfig(),
	}
}

// LoadWithOverrides loads configuration using the cascading strategy:
// 1. Start with defaults
// 2. Override with environment variables
// 3. Override with command line flags (nil overrides skip this step)
func (l *Loader) LoadWithOverrides(overrides *ConfigOverrides) (*Config, error) {
	if err := l.config.LoadFromEnvironment(); err != nil {
		return nil, err
	}

	if overrides != nil {
		l.applyOverrides(l.config, overrides)
	}

	if err := l.config.Validate(); err != nil {
		return nil, err
	}

	return l.config, nil
}

// ConfigOverrides holds command line flag overrides. Nil fields are left alone.
type ConfigOverrides struct {
	Backend           *string
	QueryTimeout      *time.Duration
	TaskNameMaxLength *int
	ListDefaultFormat *string
	Timeout           *time.Duration
	Verbose           *bool
	Strict            *bool
}

// applyOverrides applies command line overrides to the configuration
func (l *Loader) applyOverrides(config *Config, overrides *ConfigOverrides) {
	if overrides.Backend != nil {
		config.Store.Backend = *overrides.Backend
	}
	if overrides.QueryTimeout != nil {
		config.Store.QueryTimeout = *overrides.QueryTimeout
	}
	if overrides.TaskNameMaxLength != nil {
		config.Validation.TaskNameMaxLength = *overrides.TaskNameMaxLength
	}
	if overrides.ListDefaultFormat != nil {
		config.Display.ListDefaultFormat = *overrides.ListDefaultFormat
	}
	if overrides.Timeout != nil {
		config.Application.Timeout = *overrides.Timeout
	}
	if overrides.Verbose != nil {
		config.Application.Verbose = *overrides.Verbose
	}
	if overrides.Strict != nil {
		config.Application.Strict = *overrides.Strict
	}
}
