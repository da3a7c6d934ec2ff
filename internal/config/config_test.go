package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            8080,
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    15 * time.Second,
			IdleTimeout:     60 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Definitions: DefinitionsConfig{
			Source: "file",
			Path:   "definitions",
		},
		Observability: ObservabilityConfig{
			ServiceName: "namesmith",
			Logging:     LoggingConfig{Level: "info", Format: "json"},
		},
	}
}

func TestValidateValidConfig(t *testing.T) {
	result := validConfig().Validate()
	assert.False(t, result.HasErrors())
	assert.Empty(t, result.Warnings)
}

func TestValidateErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"invalid port", func(c *Config) { c.Server.Port = 0 }, "server.port"},
		{"unknown source", func(c *Config) { c.Definitions.Source = "ldap" }, "definitions.source"},
		{"file source without path", func(c *Config) { c.Definitions.Path = "" }, "definitions.path"},
		{"unknown log level", func(c *Config) { c.Observability.Logging.Level = "verbose" }, "observability.logging.level"},
		{"unknown log format", func(c *Config) { c.Observability.Logging.Format = "xml" }, "observability.logging.format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			result := cfg.Validate()
			require.True(t, result.HasErrors())
			assert.Equal(t, tt.field, result.Errors[0].Field)
			assert.NotEmpty(t, result.Error())
		})
	}
}

func TestValidateDBSource(t *testing.T) {
	cfg := validConfig()
	cfg.Definitions = DefinitionsConfig{Source: "db"}

	result := cfg.Validate()
	require.True(t, result.HasErrors())

	fields := make([]string, 0, len(result.Errors))
	for _, e := range result.Errors {
		fields = append(fields, e.Field)
	}
	assert.Contains(t, fields, "definitions.dsn")
	assert.Contains(t, fields, "definitions.table")

	cfg.Definitions = DefinitionsConfig{Source: "db", DSN: "user:pass@tcp(localhost:4000)/content", Table: "definitions"}
	assert.False(t, cfg.Validate().HasErrors())
}

func TestValidateWarnings(t *testing.T) {
	cfg := validConfig()
	cfg.Server.Admin.ReloadEnabled = true
	cfg.Observability.TracingEnabled = true

	result := cfg.Validate()
	assert.False(t, result.HasErrors())
	require.Len(t, result.Warnings, 2)
	assert.Equal(t, "server.admin", result.Warnings[0].Field)
	assert.Equal(t, "observability.tracing_enabled", result.Warnings[1].Field)
}

func TestValidationErrorString(t *testing.T) {
	err := ValidationError{Field: "server.port", Message: "invalid port 0", Hint: "use a port between 1 and 65535"}
	assert.Equal(t, "server.port: invalid port 0 (hint: use a port between 1 and 65535)", err.Error())

	err = ValidationError{Field: "server.port", Message: "invalid port 0"}
	assert.Equal(t, "server.port: invalid port 0", err.Error())
}
