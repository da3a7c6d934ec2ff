package lexicon

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"

	"namesmith/internal/name"
	"namesmith/internal/observability"
)

// Manager owns the current catalog snapshot and rebuilds it on demand.
// Readers always see a complete catalog: a failed reload keeps the previous
// snapshot in place.
type Manager struct {
	source  Source
	logger  *slog.Logger
	metrics *observability.CatalogMetrics

	current atomic.Pointer[Catalog]
}

// NewManager creates a manager for the given source. The metrics handle may
// be nil when observability is disabled.
func NewManager(source Source, logger *slog.Logger, metrics *observability.CatalogMetrics) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	return &Manager{
		source:  source,
		logger:  logger,
		metrics: metrics,
	}
}

// Current returns the active catalog, or nil before the first successful load.
func (m *Manager) Current() *Catalog {
	return m.current.Load()
}

// Reload loads definitions from the source and atomically swaps in a freshly
// built catalog.
func (m *Manager) Reload(ctx context.Context) error {
	defs, err := m.source.Load(ctx)
	if err != nil {
		m.metrics.RecordReload(ctx, false)
		return fmt.Errorf("failed to load definitions: %w", err)
	}

	reporter := &countingReporter{next: name.SlogReporter(m.logger)}
	catalog, err := BuildCatalog(defs, reporter)
	if err != nil {
		m.metrics.RecordReload(ctx, false)
		return fmt.Errorf("failed to build catalog: %w", err)
	}

	m.current.Store(catalog)
	m.metrics.RecordBuild(ctx, catalog.Len(), reporter.count)
	m.metrics.RecordReload(ctx, true)
	m.logger.Info("catalog loaded",
		slog.Int("entries", catalog.Len()),
		slog.Int("redundant_plurals", reporter.count),
	)
	return nil
}

// countingReporter forwards warnings while counting them, so reloads can
// report how many redundant plurals the definitions still carry.
type countingReporter struct {
	next  name.Reporter
	count int
}

func (r *countingReporter) Warn(message string) {
	r.count++
	r.next.Warn(message)
}
