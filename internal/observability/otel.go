// Package observability wires OpenTelemetry metrics, traces, and log export
// for the name service.
package observability

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlplog/otlploghttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	sdklog "go.opentelemetry.io/otel/sdk/log"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.37.0"
)

// Config holds observability settings resolved from configuration.
type Config struct {
	ServiceName    string
	ServiceVersion string
	Environment    string
	OTLPEndpoint   string
	OTLPInsecure   bool
	OTLPTimeout    time.Duration
}

func newResource(cfg Config) (*resource.Resource, error) {
	return resource.Merge(resource.Default(), resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName(cfg.ServiceName),
		semconv.ServiceVersion(cfg.ServiceVersion),
		semconv.DeploymentEnvironmentName(cfg.Environment),
	))
}

// MeterProvider wraps the SDK meter provider together with its Prometheus
// registry so /metrics serves what the SDK records.
type MeterProvider struct {
	provider *sdkmetric.MeterProvider
	registry *prometheus.Registry
}

// InitMeterProvider sets up metrics with a Prometheus exporter and installs
// the provider globally.
func InitMeterProvider(cfg Config) (*MeterProvider, error) {
	res, err := newResource(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}

	registry := prometheus.NewRegistry()
	exporter, err := otelprom.New(otelprom.WithRegisterer(registry))
	if err != nil {
		return nil, fmt.Errorf("failed to create prometheus exporter: %w", err)
	}

	provider := sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(res),
		sdkmetric.WithReader(exporter),
	)
	otel.SetMeterProvider(provider)

	return &MeterProvider{provider: provider, registry: registry}, nil
}

// Registry exposes the Prometheus registry backing the exporter.
func (mp *MeterProvider) Registry() *prometheus.Registry {
	return mp.registry
}

// Shutdown flushes and stops the meter provider.
func (mp *MeterProvider) Shutdown(ctx context.Context, logger *slog.Logger) error {
	if mp == nil || mp.provider == nil {
		return nil
	}
	if err := mp.provider.Shutdown(ctx); err != nil {
		if logger != nil {
			logger.Warn("failed to shutdown meter provider", slog.String("error", err.Error()))
		}
		return err
	}
	return nil
}

// TracerProvider wraps the SDK tracer provider.
type TracerProvider struct {
	provider *sdktrace.TracerProvider
}

// InitTracerProvider sets up tracing with an OTLP/HTTP exporter and installs
// the provider globally. Returns nil when no endpoint is configured.
func InitTracerProvider(ctx context.Context, cfg Config) (*TracerProvider, error) {
	if cfg.OTLPEndpoint == "" {
		return nil, nil
	}

	res, err := newResource(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}

	opts := []otlptracehttp.Option{otlptracehttp.WithEndpoint(cfg.OTLPEndpoint)}
	if cfg.OTLPInsecure {
		opts = append(opts, otlptracehttp.WithInsecure())
	}
	if cfg.OTLPTimeout > 0 {
		opts = append(opts, otlptracehttp.WithTimeout(cfg.OTLPTimeout))
	}

	exporter, err := otlptracehttp.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create trace exporter: %w", err)
	}

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithResource(res),
		sdktrace.WithBatcher(exporter),
	)
	otel.SetTracerProvider(provider)

	return &TracerProvider{provider: provider}, nil
}

// Shutdown flushes and stops the tracer provider.
func (tp *TracerProvider) Shutdown(ctx context.Context, logger *slog.Logger) error {
	if tp == nil || tp.provider == nil {
		return nil
	}
	if err := tp.provider.Shutdown(ctx); err != nil {
		if logger != nil {
			logger.Warn("failed to shutdown tracer provider", slog.String("error", err.Error()))
		}
		return err
	}
	return nil
}

// LoggerProvider wraps the SDK log provider used by the otelslog bridge.
type LoggerProvider struct {
	provider *sdklog.LoggerProvider
}

// InitLoggerProvider sets up OTLP/HTTP log export. Returns nil when no
// endpoint is configured.
func InitLoggerProvider(ctx context.Context, cfg Config) (*LoggerProvider, error) {
	if cfg.OTLPEndpoint == "" {
		return nil, nil
	}

	res, err := newResource(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}

	opts := []otlploghttp.Option{otlploghttp.WithEndpoint(cfg.OTLPEndpoint)}
	if cfg.OTLPInsecure {
		opts = append(opts, otlploghttp.WithInsecure())
	}
	if cfg.OTLPTimeout > 0 {
		opts = append(opts, otlploghttp.WithTimeout(cfg.OTLPTimeout))
	}

	exporter, err := otlploghttp.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create log exporter: %w", err)
	}

	provider := sdklog.NewLoggerProvider(
		sdklog.WithResource(res),
		sdklog.WithProcessor(sdklog.NewBatchProcessor(exporter)),
	)

	return &LoggerProvider{provider: provider}, nil
}

// Provider returns the underlying SDK provider for the otelslog bridge.
func (lp *LoggerProvider) Provider() *sdklog.LoggerProvider {
	if lp == nil {
		return nil
	}
	return lp.provider
}

// Shutdown flushes and stops the logger provider.
func (lp *LoggerProvider) Shutdown(ctx context.Context, logger *slog.Logger) error {
	if lp == nil || lp.provider == nil {
		return nil
	}
	if err := lp.provider.Shutdown(ctx); err != nil {
		if logger != nil {
			logger.Warn("failed to shutdown logger provider", slog.String("error", err.Error()))
		}
		return err
	}
	return nil
}
