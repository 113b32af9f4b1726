package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"TODO_STORE_BACKEND",
		"TODO_STORE_QUERY_TIMEOUT",
		"TODO_VALIDATION_TASK_NAME_MAX",
		"TODO_LIST_DEFAULT_FORMAT",
		"TODO_APP_TIMEOUT",
		"TODO_APP_VERBOSE",
		"TODO_APP_STRICT",
	} {
		t.Setenv(key, "")
	}
}

func TestNewConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	assert.Equal(t, BackendMemory, cfg.Store.Backend)
	assert.Equal(t, 5*time.Second, cfg.Store.QueryTimeout)
	assert.Equal(t, 255, cfg.Validation.TaskNameMaxLength)
	assert.Equal(t, "table", cfg.Display.ListDefaultFormat)
	assert.Equal(t, 60*time.Second, cfg.Application.Timeout)
	assert.False(t, cfg.Application.Verbose)
	assert.False(t, cfg.Application.Strict)
	assert.NoError(t, cfg.Validate())
}

func TestLoadFromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("TODO_STORE_BACKEND", "sqlite")
	t.Setenv("TODO_STORE_QUERY_TIMEOUT", "2s")
	t.Setenv("TODO_VALIDATION_TASK_NAME_MAX", "40")
	t.Setenv("TODO_LIST_DEFAULT_FORMAT", "json")
	t.Setenv("TODO_APP_TIMEOUT", "10s")
	t.Setenv("TODO_APP_VERBOSE", "true")
	t.Setenv("TODO_APP_STRICT", "1")

	cfg := NewConfig()
	require.NoError(t, cfg.LoadFromEnvironment())

	assert.Equal(t, BackendSQLite, cfg.Store.Backend)
	assert.Equal(t, 2*time.Second, cfg.Store.QueryTimeout)
	assert.Equal(t, 40, cfg.Validation.TaskNameMaxLength)
	assert.Equal(t, "json", cfg.Display.ListDefaultFormat)
	assert.Equal(t, 10*time.Second, cfg.Application.Timeout)
	assert.True(t, cfg.Application.Verbose)
	assert.True(t, cfg.Application.Strict)
}

func TestLoadFromEnvironment_InvalidValuesKeepDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("TODO_STORE_QUERY_TIMEOUT", "soon")
	t.Setenv("TODO_VALIDATION_TASK_NAME_MAX", "many")
	t.Setenv("TODO_APP_VERBOSE", "maybe")

	cfg := NewConfig()
	require.NoError(t, cfg.LoadFromEnvironment())

	assert.Equal(t, 5*time.Second, cfg.Store.QueryTimeout)
	assert.Equal(t, 255, cfg.Validation.TaskNameMaxLength)
	assert.False(t, cfg.Application.Verbose)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name          string
		mutate        func(*Config)
		expectedField string
	}{
		{"unknown backend", func(c *Config) { c.Store.Backend = "mysql" }, "store.backend"},
		{"zero query timeout", func(c *Config) { c.Store.QueryTimeout = 0 }, "store.query_timeout"},
		{"negative name length", func(c *Config) { c.Validation.TaskNameMaxLength = -1 }, "validation.task_name_max_length"},
		{"unknown list format", func(c *Config) { c.Display.ListDefaultFormat = "xml" }, "display.list_default_format"},
		{"zero app timeout", func(c *Config) { c.Application.Timeout = 0 }, "application.timeout"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			require.Error(t, err)
			var configErr *ConfigError
			require.ErrorAs(t, err, &configErr)
			assert.Equal(t, tt.expectedField, configErr.Field)
		})
	}

	t.Run("zero name length disables the limit", func(t *testing.T) {
		cfg := NewConfig()
		cfg.Validation.TaskNameMaxLength = 0
		assert.NoError(t, cfg.Validate())
	})
}

func TestLoader_LoadWithoutOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("TODO_STORE_BACKEND", "redis")

	_, err := NewLoader().LoadWithOverrides(nil)
	assert.Error(t, err)
}

func TestLoader_LoadWithOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("TODO_STORE_BACKEND", "sqlite")
	t.Setenv("TODO_LIST_DEFAULT_FORMAT", "xml")

	format := "yaml"
	strict := true
	backend := "memory"
	cfg, err := NewLoader().LoadWithOverrides(&ConfigOverrides{
		Backend:           &backend,
		ListDefaultFormat: &format,
		Strict:            &strict,
	})

	// The invalid environment value is replaced by the flag before validation
	require.NoError(t, err)
	assert.Equal(t, BackendMemory, cfg.Store.Backend)
	assert.Equal(t, "yaml", cfg.Display.ListDefaultFormat)
	assert.True(t, cfg.Application.Strict)
}

func TestParseWithFallback(t *testing.T) {
	assert.Equal(t, 3*time.Second, ParseDurationWithFallback("3s", time.Second))
	assert.Equal(t, time.Second, ParseDurationWithFallback("x", time.Second))
	assert.Equal(t, 7, ParseIntWithFallback("7", 1))
	assert.Equal(t, 1, ParseIntWithFallback("seven", 1))
	assert.True(t, ParseBoolWithFallback("true", false))
	assert.False(t, ParseBoolWithFallback("nope", false))
}

func TestIsListFormat(t *testing.T) {
	for _, format := range []string{"table", "csv", "json", "yaml"} {
		assert.True(t, IsListFormat(format), format)
	}
	assert.False(t, IsListFormat("pdf"))
	assert.False(t, IsListFormat(""))
}
