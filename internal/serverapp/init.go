package serverapp

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"namesmith/internal/lexicon"
	"namesmith/internal/observability"
)

// Init acquires runtime resources: observability providers, the definitions
// source, the initial catalog, and the HTTP server. Resources are released
// in reverse order by Shutdown.
func (a *App) Init(ctx context.Context) error {
	a.stateMu.Lock()
	defer a.stateMu.Unlock()

	if a.initialized {
		return nil
	}

	obsCfg := observabilityConfig(a.cfg)

	if a.cfg.Observability.MetricsEnabled {
		meterProvider, err := observability.InitMeterProvider(obsCfg)
		if err != nil {
			return fmt.Errorf("failed to initialize metrics: %w", err)
		}
		a.meterProvider = meterProvider
		a.cleanup.push("meter provider", func(ctx context.Context) error {
			return meterProvider.Shutdown(ctx, a.logger.Logger)
		})

		a.metrics, err = observability.InitCatalogMetrics()
		if err != nil {
			return fmt.Errorf("failed to initialize catalog metrics: %w", err)
		}
	}

	if a.cfg.Observability.TracingEnabled && a.cfg.Observability.OTLP.Endpoint != "" {
		tracerProvider, err := observability.InitTracerProvider(ctx, obsCfg)
		if err != nil {
			return fmt.Errorf("failed to initialize tracing: %w", err)
		}
		a.tracerProvider = tracerProvider
		a.cleanup.push("tracer provider", func(ctx context.Context) error {
			return tracerProvider.Shutdown(ctx, a.logger.Logger)
		})
	}

	source, err := buildSource(a.cfg, a)
	if err != nil {
		return err
	}
	a.source = source
	a.manager = lexicon.NewManager(source, a.logger.Logger, a.metrics)

	if err := a.manager.Reload(ctx); err != nil {
		return fmt.Errorf("failed to load initial definitions: %w", err)
	}

	graphqlHandler, err := buildGraphQLHandler(a)
	if err != nil {
		return err
	}

	var adminHandler http.Handler
	if a.cfg.Server.Admin.ReloadEnabled {
		adminHandler, err = buildAdminHandler(a)
		if err != nil {
			return err
		}
	}

	mux := buildRouter(a, graphqlHandler, adminHandler)
	a.handler = wrapHTTPHandler(a.cfg, a.logger, mux)

	a.serverAddr = fmt.Sprintf(":%d", a.cfg.Server.Port)
	a.srv = &http.Server{
		Addr:         a.serverAddr,
		Handler:      a.handler,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}
	a.cleanup.push("http server", func(ctx context.Context) error {
		return a.srv.Shutdown(ctx)
	})

	a.logger.Info("initialized",
		slog.String("definitions_source", a.cfg.Definitions.Source),
		slog.Int("catalog_entries", a.manager.Current().Len()),
		slog.Bool("graphiql", a.cfg.Server.GraphiQLEnabled),
	)

	a.initialized = true
	return nil
}
