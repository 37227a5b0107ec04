// Package observability builds the logger, tracer and metrics registry
// handed to every module.
package observability

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// Config selects how observability components are built.
type Config struct {
	ServiceName string
	Environment string
	LogLevel    string
	Output      io.Writer
}

// Provider holds the log pipeline.
type Provider struct {
	Logger *slog.Logger
}

// Registry holds tracing and metrics.
type Registry struct {
	Tracer     trace.Tracer
	Prometheus *prometheus.Registry
}

// Observability bundles everything a module needs to report on itself.
type Observability struct {
	Provider Provider
	Registry Registry
}

// Init builds the observability stack. Tracing goes through the global otel
// provider, which stays a no-op unless an exporter is installed.
func Init(cfg Config) Observability {
	out := cfg.Output
	if out == nil {
		out = os.Stdout
	}

	logger := NewLogger(out, cfg.Environment, cfg.LogLevel).With(
		slog.String("service", cfg.ServiceName),
	)

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return Observability{
		Provider: Provider{Logger: logger},
		Registry: Registry{
			Tracer:     otel.Tracer(cfg.ServiceName),
			Prometheus: reg,
		},
	}
}

// NewNoop returns an Observability that discards logs and spans.
func NewNoop() Observability {
	return Observability{
		Provider: Provider{Logger: slog.New(slog.NewTextHandler(io.Discard, nil))},
		Registry: Registry{
			Tracer:     noop.NewTracerProvider().Tracer("noop"),
			Prometheus: prometheus.NewRegistry(),
		},
	}
}

// NewLogger returns a JSON logger, or a text logger in development.
func NewLogger(w io.Writer, environment, level string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: ParseLevel(level)}
	if environment == "development" {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

// ParseLevel maps a config string to a slog level, defaulting to info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
