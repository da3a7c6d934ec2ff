package observability

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// CatalogMetrics holds custom metrics for catalog builds and API traffic.
// A nil *CatalogMetrics is valid and records nothing, so callers never need
// to branch on whether metrics are enabled.
type CatalogMetrics struct {
	namesBuilt       metric.Int64Counter
	redundantPlurals metric.Int64Counter
	reloads          metric.Int64Counter
	catalogEntries   metric.Int64Gauge
	requestDuration  metric.Float64Histogram
}

// InitCatalogMetrics initializes the service's custom metrics.
func InitCatalogMetrics() (*CatalogMetrics, error) {
	meter := otel.Meter("namesmith")

	namesBuilt, err := meter.Int64Counter(
		"lexicon.names.built",
		metric.WithDescription("Total number of Names built from definitions"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create names built counter: %w", err)
	}

	redundantPlurals, err := meter.Int64Counter(
		"lexicon.plural.redundant",
		metric.WithDescription("Total number of redundant plural overrides detected"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create redundant plural counter: %w", err)
	}

	reloads, err := meter.Int64Counter(
		"lexicon.reloads.total",
		metric.WithDescription("Total number of definition reloads"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create reload counter: %w", err)
	}

	catalogEntries, err := meter.Int64Gauge(
		"catalog.entries",
		metric.WithDescription("Number of entries in the current catalog"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create catalog entries gauge: %w", err)
	}

	requestDuration, err := meter.Float64Histogram(
		"graphql.request.duration",
		metric.WithDescription("Duration of GraphQL requests in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create request duration histogram: %w", err)
	}

	return &CatalogMetrics{
		namesBuilt:       namesBuilt,
		redundantPlurals: redundantPlurals,
		reloads:          reloads,
		catalogEntries:   catalogEntries,
		requestDuration:  requestDuration,
	}, nil
}

// RecordBuild records the outcome of a catalog build.
func (m *CatalogMetrics) RecordBuild(ctx context.Context, entries int, redundantPlurals int) {
	if m == nil {
		return
	}
	m.namesBuilt.Add(ctx, int64(entries))
	m.redundantPlurals.Add(ctx, int64(redundantPlurals))
	m.catalogEntries.Record(ctx, int64(entries))
}

// RecordReload records a reload attempt.
func (m *CatalogMetrics) RecordReload(ctx context.Context, success bool) {
	if m == nil {
		return
	}
	m.reloads.Add(ctx, 1, metric.WithAttributes(attribute.Bool("success", success)))
}

// RecordRequestDuration records the duration of one GraphQL request.
func (m *CatalogMetrics) RecordRequestDuration(ctx context.Context, durationMs float64) {
	if m == nil {
		return
	}
	m.requestDuration.Record(ctx, durationMs)
}
