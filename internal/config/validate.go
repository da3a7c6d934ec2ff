package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation error with context.
type ValidationError struct {
	Field   string
	Message string
	Hint    string
}

func (e ValidationError) Error() string {
	if e.Hint != "" {
		return fmt.Sprintf("%s: %s (hint: %s)", e.Field, e.Message, e.Hint)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationWarning represents a non-fatal configuration issue.
type ValidationWarning struct {
	Field   string
	Message string
	Hint    string
}

// ValidationResult contains the results of configuration validation.
type ValidationResult struct {
	Errors   []ValidationError
	Warnings []ValidationWarning
}

// HasErrors returns true if there are any validation errors.
func (r *ValidationResult) HasErrors() bool {
	return len(r.Errors) > 0
}

// Error returns a combined error message if there are validation errors.
func (r *ValidationResult) Error() string {
	if !r.HasErrors() {
		return ""
	}
	var msgs []string
	for _, e := range r.Errors {
		msgs = append(msgs, e.Error())
	}
	return strings.Join(msgs, "; ")
}

// Validate checks the configuration and returns both errors (fatal) and
// warnings (non-fatal issues).
func (c *Config) Validate() *ValidationResult {
	result := &ValidationResult{}

	c.Server.validate(result)
	c.Definitions.validate(result)
	c.Observability.validate(result)

	return result
}

func (s *ServerConfig) validate(result *ValidationResult) {
	if s.Port < 1 || s.Port > 65535 {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "server.port",
			Message: fmt.Sprintf("invalid port %d", s.Port),
			Hint:    "use a port between 1 and 65535",
		})
	}

	if s.Admin.ReloadEnabled && s.Admin.AuthToken == "" && s.Admin.AuthTokenFile == "" {
		result.Warnings = append(result.Warnings, ValidationWarning{
			Field:   "server.admin",
			Message: "definitions reload endpoint is enabled without an auth token",
			Hint:    "set server.admin.auth_token or server.admin.auth_token_file",
		})
	}
}

func (d *DefinitionsConfig) validate(result *ValidationResult) {
	switch d.Source {
	case "file":
		if d.Path == "" {
			result.Errors = append(result.Errors, ValidationError{
				Field:   "definitions.path",
				Message: "file source requires a path",
				Hint:    "point definitions.path at a JSON file or a directory of *.json files",
			})
		}
	case "db":
		if d.DSN == "" && d.DSNFile == "" {
			result.Errors = append(result.Errors, ValidationError{
				Field:   "definitions.dsn",
				Message: "db source requires a DSN",
				Hint:    "set definitions.dsn or definitions.dsn_file",
			})
		}
		if d.Table == "" {
			result.Errors = append(result.Errors, ValidationError{
				Field:   "definitions.table",
				Message: "db source requires a table name",
			})
		}
	default:
		result.Errors = append(result.Errors, ValidationError{
			Field:   "definitions.source",
			Message: fmt.Sprintf("unknown source %q", d.Source),
			Hint:    `use "file" or "db"`,
		})
	}
}

func (o *ObservabilityConfig) validate(result *ValidationResult) {
	switch o.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		result.Errors = append(result.Errors, ValidationError{
			Field:   "observability.logging.level",
			Message: fmt.Sprintf("unknown log level %q", o.Logging.Level),
			Hint:    "use debug, info, warn, or error",
		})
	}

	switch o.Logging.Format {
	case "json", "text":
	default:
		result.Errors = append(result.Errors, ValidationError{
			Field:   "observability.logging.format",
			Message: fmt.Sprintf("unknown log format %q", o.Logging.Format),
			Hint:    "use json or text",
		})
	}

	if o.TracingEnabled && o.OTLP.Endpoint == "" {
		result.Warnings = append(result.Warnings, ValidationWarning{
			Field:   "observability.tracing_enabled",
			Message: "tracing is enabled but no OTLP endpoint is configured",
			Hint:    "set observability.otlp.endpoint",
		})
	}
	if o.Logging.ExportsEnabled && o.OTLP.Endpoint == "" {
		result.Warnings = append(result.Warnings, ValidationWarning{
			Field:   "observability.logging.exports_enabled",
			Message: "log export is enabled but no OTLP endpoint is configured",
			Hint:    "set observability.otlp.endpoint",
		})
	}
}
