// Package config loads configuration from files, env vars, and flags, and
// validates it.
package config

import "time"

// Config holds the application configuration.
type Config struct {
	Server        ServerConfig        `mapstructure:"server"`
	Definitions   DefinitionsConfig   `mapstructure:"definitions"`
	Observability ObservabilityConfig `mapstructure:"observability"`
}

// ServerConfig holds HTTP server parameters.
type ServerConfig struct {
	Port            int           `mapstructure:"port"`
	GraphiQLEnabled bool          `mapstructure:"graphiql_enabled"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	IdleTimeout     time.Duration `mapstructure:"idle_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`

	Admin AdminConfig `mapstructure:"admin"`
}

// AdminConfig controls the definitions reload endpoint.
type AdminConfig struct {
	ReloadEnabled bool   `mapstructure:"reload_enabled"`
	AuthToken     string `mapstructure:"auth_token"`
	AuthTokenFile string `mapstructure:"auth_token_file"`
}

// DefinitionsConfig selects and configures the definitions source.
type DefinitionsConfig struct {
	// Source is "file" or "db".
	Source string `mapstructure:"source"`
	// Path is a definitions JSON file or a directory of *.json files
	// (file source).
	Path string `mapstructure:"path"`
	// DSN is a go-sql-driver/mysql data source name (db source).
	DSN string `mapstructure:"dsn"`
	// DSNFile is a path to a file containing the DSN, for secrets
	// management.
	DSNFile string `mapstructure:"dsn_file"`
	// Table is the definitions table name (db source).
	Table string `mapstructure:"table"`
}

// LoggingConfig holds logging parameters.
type LoggingConfig struct {
	Level          string `mapstructure:"level"`           // debug, info, warn, error
	Format         string `mapstructure:"format"`          // json, text
	ExportsEnabled bool   `mapstructure:"exports_enabled"` // Enable OTLP log export
}

// ObservabilityConfig holds observability parameters.
type ObservabilityConfig struct {
	ServiceName    string        `mapstructure:"service_name"`
	ServiceVersion string        `mapstructure:"service_version"`
	Environment    string        `mapstructure:"environment"`
	MetricsEnabled bool          `mapstructure:"metrics_enabled"`
	TracingEnabled bool          `mapstructure:"tracing_enabled"`
	Logging        LoggingConfig `mapstructure:"logging"`
	OTLP           OTLPConfig    `mapstructure:"otlp"`
}

// OTLPConfig holds OTLP exporter parameters (HTTP transport).
type OTLPConfig struct {
	Endpoint string        `mapstructure:"endpoint"`
	Insecure bool          `mapstructure:"insecure"`
	Timeout  time.Duration `mapstructure:"timeout"`
}
