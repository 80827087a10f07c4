package snapmeta

import (
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// Option configures a Store.
type Option func(*storeConfig)

// storeConfig holds configuration for a Store instance.
type storeConfig struct {
	logger         *slog.Logger
	tracerProvider trace.TracerProvider
	meterProvider  metric.MeterProvider
	now            func() time.Time
}

// WithLogger sets a custom logger for the store.
// If not provided, slog.Default() is used.
func WithLogger(logger *slog.Logger) Option {
	return func(c *storeConfig) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithTracerProvider sets an OpenTelemetry tracer provider. When configured,
// the store emits a span around each recursive clear operation.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(c *storeConfig) {
		c.tracerProvider = tp
	}
}

// WithMeterProvider sets an OpenTelemetry meter provider. When configured,
// the store counts marks, clears, and cross-references it records.
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(c *storeConfig) {
		c.meterProvider = mp
	}
}

// WithClock overrides the clock used to timestamp generation markers.
// Intended for tests; defaults to time.Now.
func WithClock(now func() time.Time) Option {
	return func(c *storeConfig) {
		if now != nil {
			c.now = now
		}
	}
}
