package config

import (
	"fmt"
	"os"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var defineFlagsOnce sync.Once

// Load loads configuration from multiple sources with the following precedence:
// 1. Explicit overrides (v.Set) – used only for file-backed secrets
// 2. Command line flags
// 3. Environment variables
// 4. Config file
// 5. Default values
func Load() (*Config, error) {
	v := viper.New()

	// Defaults (lowest priority)
	setDefaults(v)

	// --- Flags ---
	defineFlags()
	if !pflag.Parsed() {
		pflag.Parse()
	}

	// --- Config file ---
	cfgPath, _ := pflag.CommandLine.GetString("config")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.SetConfigName("namesmith")
		v.SetConfigType("yaml")
		v.AddConfigPath("/etc/namesmith/")
		v.AddConfigPath("$HOME/.namesmith")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		if cfgPath != "" {
			return nil, fmt.Errorf("failed to read config file %q: %w", cfgPath, err)
		}
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// --- Environment variables ---
	// Canonical keys: dot + snake_case
	// Env vars: NAMESMITH_DEFINITIONS_PATH
	v.SetEnvPrefix("NAMESMITH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	// --- Flags binding (highest normal priority) ---
	bindChangedFlagsToViper(v)

	// --- DSN from file (explicit override) ---
	if v.GetString("definitions.dsn") == "" && v.GetString("definitions.dsn_file") != "" {
		dsn, err := readSecretFile(v.GetString("definitions.dsn_file"))
		if err != nil {
			return nil, fmt.Errorf("failed to read definitions DSN file: %w", err)
		}
		v.Set("definitions.dsn", dsn)
	}

	// --- Admin auth token from file (explicit override) ---
	if v.GetString("server.admin.auth_token") == "" && v.GetString("server.admin.auth_token_file") != "" {
		tokenPath := v.GetString("server.admin.auth_token_file")
		token, err := readSecretFile(tokenPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read admin auth token file: %w", err)
		}
		if token == "" {
			return nil, fmt.Errorf("admin auth token file %q is empty", tokenPath)
		}
		v.Set("server.admin.auth_token", token)
	}

	// --- Unmarshal (strict) ---
	var cfg Config
	if err := v.UnmarshalExact(
		&cfg,
		viper.DecodeHook(
			mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				stringToStringSliceHookFunc(","),
			),
		),
	); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

func bindChangedFlagsToViper(v *viper.Viper) {
	pflag.Visit(func(f *pflag.Flag) {
		if f.Name == "config" || f.Name == "version" {
			return
		}
		if err := v.BindPFlag(f.Name, f); err != nil {
			panic(fmt.Sprintf("failed to bind flag %s: %v", f.Name, err))
		}
	})
}

func defineFlags() {
	defineFlagsOnce.Do(func() {
		pflag.String("config", "", "Path to config file")

		// Definitions source flags
		pflag.String("definitions.source", "", "Definitions source (file or db)")
		pflag.String("definitions.path", "", "Definitions JSON file or directory of *.json files")
		pflag.String("definitions.dsn", "", "Complete MySQL DSN (user:pass@tcp(host:port)/db)")
		pflag.String("definitions.dsn_file", "", "Path to file containing definitions DSN")
		pflag.String("definitions.table", "", "Definitions table name")

		// Server flags
		pflag.Int("server.port", 0, "HTTP server port")
		pflag.Bool("server.graphiql_enabled", false, "Enable GraphiQL UI for /graphql (dev only)")
		pflag.Duration("server.read_timeout", 0, "HTTP read timeout")
		pflag.Duration("server.write_timeout", 0, "HTTP write timeout")
		pflag.Duration("server.idle_timeout", 0, "HTTP idle timeout")
		pflag.Duration("server.shutdown_timeout", 0, "Graceful shutdown timeout")
		pflag.Bool("server.admin.reload_enabled", false, "Enable the /admin/reload-definitions endpoint")
		pflag.String("server.admin.auth_token", "", "Bearer token required for admin endpoints")
		pflag.String("server.admin.auth_token_file", "", "Path to file containing the admin auth token")

		// Observability flags
		pflag.String("observability.service_name", "", "Service name reported in telemetry")
		pflag.String("observability.environment", "", "Deployment environment reported in telemetry")
		pflag.Bool("observability.metrics_enabled", false, "Enable the Prometheus /metrics endpoint")
		pflag.Bool("observability.tracing_enabled", false, "Enable OTLP trace export")
		pflag.String("observability.logging.level", "", "Log level (debug, info, warn, error)")
		pflag.String("observability.logging.format", "", "Log format (json, text)")
		pflag.Bool("observability.logging.exports_enabled", false, "Enable OTLP log export")
		pflag.String("observability.otlp.endpoint", "", "OTLP endpoint (host:port)")
		pflag.Bool("observability.otlp.insecure", false, "Disable TLS for OTLP export")
		pflag.Duration("observability.otlp.timeout", 0, "OTLP export timeout")
	})
}

func setDefaults(v *viper.Viper) {
	// Definitions defaults
	v.SetDefault("definitions.source", "file")
	v.SetDefault("definitions.path", "definitions")
	v.SetDefault("definitions.dsn", "")
	v.SetDefault("definitions.dsn_file", "")
	v.SetDefault("definitions.table", "definitions")

	// Server defaults
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.graphiql_enabled", false)
	v.SetDefault("server.read_timeout", 15*time.Second)
	v.SetDefault("server.write_timeout", 15*time.Second)
	v.SetDefault("server.idle_timeout", 60*time.Second)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
	v.SetDefault("server.admin.reload_enabled", false)
	v.SetDefault("server.admin.auth_token", "")
	v.SetDefault("server.admin.auth_token_file", "")

	// Observability defaults
	v.SetDefault("observability.service_name", "namesmith")
	v.SetDefault("observability.service_version", "")
	v.SetDefault("observability.environment", "development")
	v.SetDefault("observability.metrics_enabled", true)
	v.SetDefault("observability.tracing_enabled", false)
	v.SetDefault("observability.logging.level", "info")
	v.SetDefault("observability.logging.format", "json")
	v.SetDefault("observability.logging.exports_enabled", false)
	v.SetDefault("observability.otlp.endpoint", "")
	v.SetDefault("observability.otlp.insecure", false)
	v.SetDefault("observability.otlp.timeout", 10*time.Second)
}

func readSecretFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

func stringToStringSliceHookFunc(sep string) mapstructure.DecodeHookFunc {
	return func(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
		if from.Kind() != reflect.String || to != reflect.TypeOf([]string{}) {
			return data, nil
		}

		raw := strings.TrimSpace(data.(string))
		if raw == "" {
			return []string{}, nil
		}

		parts := strings.Split(raw, sep)
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		return parts, nil
	}
}
