package serverapp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"namesmith/internal/api"
	"namesmith/internal/config"
	"namesmith/internal/lexicon"
	"namesmith/internal/logging"
	"namesmith/internal/middleware"
	"namesmith/internal/observability"
)

// InitLogger builds the service logger, including the OTLP log export
// bridge when configured. The returned provider is nil when export is
// disabled.
func InitLogger(cfg *config.Config) (*logging.Logger, *observability.LoggerProvider, error) {
	var loggerProvider *observability.LoggerProvider
	if cfg.Observability.Logging.ExportsEnabled && cfg.Observability.OTLP.Endpoint != "" {
		var err error
		loggerProvider, err = observability.InitLoggerProvider(context.Background(), observabilityConfig(cfg))
		if err != nil {
			return nil, nil, fmt.Errorf("failed to initialize log export: %w", err)
		}
	}

	logger := logging.NewLogger(logging.Config{
		Level:          cfg.Observability.Logging.Level,
		Format:         cfg.Observability.Logging.Format,
		LoggerProvider: loggerProvider.Provider(),
	})
	slog.SetDefault(logger.Logger)

	return logger, loggerProvider, nil
}

func observabilityConfig(cfg *config.Config) observability.Config {
	return observability.Config{
		ServiceName:    cfg.Observability.ServiceName,
		ServiceVersion: cfg.Observability.ServiceVersion,
		Environment:    cfg.Observability.Environment,
		OTLPEndpoint:   cfg.Observability.OTLP.Endpoint,
		OTLPInsecure:   cfg.Observability.OTLP.Insecure,
		OTLPTimeout:    cfg.Observability.OTLP.Timeout,
	}
}

func buildSource(cfg *config.Config, a *App) (lexicon.Source, error) {
	switch cfg.Definitions.Source {
	case "db":
		instrumented := cfg.Observability.MetricsEnabled || cfg.Observability.TracingEnabled
		db, err := lexicon.OpenDB(cfg.Definitions.DSN, instrumented)
		if err != nil {
			return nil, fmt.Errorf("failed to open definitions database: %w", err)
		}
		a.db = db
		a.cleanup.push("definitions database", func(context.Context) error {
			return db.Close()
		})
		return lexicon.DBSource{DB: db, Table: cfg.Definitions.Table}, nil
	default:
		return lexicon.FileSource{Path: cfg.Definitions.Path}, nil
	}
}

func buildGraphQLHandler(a *App) (http.Handler, error) {
	resolver := api.NewResolver(a.manager, a.source)
	schema, err := resolver.BuildSchema()
	if err != nil {
		return nil, fmt.Errorf("failed to build GraphQL schema: %w", err)
	}

	var handler http.Handler = api.NewHandler(schema, a.cfg.Server.GraphiQLEnabled)
	handler = requestDurationMiddleware(a.metrics)(handler)
	return middleware.LoggingMiddleware(a.logger)(handler), nil
}

func buildAdminHandler(a *App) (http.Handler, error) {
	reload := http.HandlerFunc(reloadHandler(a.manager, a.logger))

	token := strings.TrimSpace(a.cfg.Server.Admin.AuthToken)
	if token == "" {
		a.logger.Warn("definitions reload endpoint is not authenticated - set server.admin.auth_token")
		return reload, nil
	}

	authMiddleware, err := middleware.AdminTokenAuthMiddleware(middleware.AdminTokenAuthConfig{Token: token})
	if err != nil {
		return nil, err
	}
	return authMiddleware(reload), nil
}

func reloadHandler(manager *lexicon.Manager, logger *logging.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.Header().Set("Allow", http.MethodPost)
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := manager.Reload(r.Context()); err != nil {
			logger.Error("definitions reload failed", slog.String("error", err.Error()))
			w.WriteHeader(http.StatusInternalServerError)
			_ = json.NewEncoder(w).Encode(map[string]string{"status": "error", "error": err.Error()})
			return
		}

		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"status":  "ok",
			"entries": manager.Current().Len(),
		})
	}
}

func healthHandler(a *App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if a.db != nil {
			ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
			defer cancel()
			if err := a.db.PingContext(ctx); err != nil {
				http.Error(w, "database unavailable", http.StatusServiceUnavailable)
				return
			}
		}
		if a.manager.Current() == nil {
			http.Error(w, "catalog not loaded", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	}
}

func buildRouter(a *App, graphqlHandler, adminHandler http.Handler) *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("/graphql", graphqlHandler)
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/" {
			http.Redirect(w, r, "/graphql", http.StatusFound)
			return
		}
		http.NotFound(w, r)
	})

	mux.HandleFunc("/health", healthHandler(a))

	if a.cfg.Server.Admin.ReloadEnabled && adminHandler != nil {
		mux.Handle("/admin/reload-definitions", adminHandler)
	}

	if a.cfg.Observability.MetricsEnabled && a.meterProvider != nil {
		mux.Handle("/metrics", promhttp.HandlerFor(a.meterProvider.Registry(), promhttp.HandlerOpts{}))
		a.logger.Info("metrics endpoint enabled", slog.String("path", "/metrics"))
	}

	return mux
}

func wrapHTTPHandler(cfg *config.Config, logger *logging.Logger, handler http.Handler) http.Handler {
	if cfg.Observability.MetricsEnabled || cfg.Observability.TracingEnabled {
		handler = otelhttp.NewHandler(handler, "http.server",
			otelhttp.WithSpanNameFormatter(func(_ string, r *http.Request) string {
				return httpRootSpanName(r)
			}),
		)
		logger.Info("HTTP instrumentation enabled")
	}
	return handler
}

func httpRootSpanName(r *http.Request) string {
	if r == nil {
		return "HTTP /*"
	}
	method := strings.TrimSpace(r.Method)
	if method == "" {
		method = "HTTP"
	}
	switch r.URL.Path {
	case "/", "/graphql", "/health", "/metrics", "/admin/reload-definitions":
		return method + " " + r.URL.Path
	default:
		return method + " /*"
	}
}

// requestDurationMiddleware records GraphQL request durations.
func requestDurationMiddleware(metrics *observability.CatalogMetrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			next.ServeHTTP(w, r)
			metrics.RecordRequestDuration(r.Context(), float64(time.Since(start).Milliseconds()))
		})
	}
}
