// Package telemetry exposes request and embedding metrics in the Prometheus format through OpenTelemetry.
package telemetry

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel/attribute"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
)

const meterName = "github.com/mattewlondono22/smartagents-desktop"

// Metrics owns one Prometheus registry per service so two services can share a process.
type Metrics struct {
	provider *sdkmetric.MeterProvider
	handler  http.Handler

	requestCounter    metric.Int64Counter
	requestDuration   metric.Float64Histogram
	embeddingCounter  metric.Int64Counter
	embeddingDuration metric.Float64Histogram
}

// New creates the meter provider and the /metrics handler for serviceName.
func New(serviceName, version string) (*Metrics, error) {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	exporter, err := otelprom.New(otelprom.WithRegisterer(registry))
	if err != nil {
		return nil, fmt.Errorf("failed to create prometheus exporter: %w", err)
	}

	res := resource.NewSchemaless(
		attribute.String("service.name", serviceName),
		attribute.String("service.version", version),
	)
	provider := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(exporter),
		sdkmetric.WithResource(res),
	)
	meter := provider.Meter(meterName)

	m := &Metrics{
		provider: provider,
		handler:  promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
	}

	if m.requestCounter, err = meter.Int64Counter(
		"studio.http.requests",
		metric.WithDescription("Total number of HTTP requests"),
	); err != nil {
		return nil, err
	}
	if m.requestDuration, err = meter.Float64Histogram(
		"studio.http.request.duration",
		metric.WithDescription("Duration of HTTP requests in seconds"),
		metric.WithUnit("s"),
	); err != nil {
		return nil, err
	}
	if m.embeddingCounter, err = meter.Int64Counter(
		"studio.embedding.operations",
		metric.WithDescription("Total number of upload and search embedding operations"),
	); err != nil {
		return nil, err
	}
	if m.embeddingDuration, err = meter.Float64Histogram(
		"studio.embedding.duration",
		metric.WithDescription("Duration of embedding operations in seconds"),
		metric.WithUnit("s"),
	); err != nil {
		return nil, err
	}

	return m, nil
}

// Handler serves the Prometheus exposition.
func (m *Metrics) Handler() http.Handler {
	return m.handler
}

// Middleware records one request count and duration per request, labelled by route pattern.
// It must sit directly in front of the ServeMux so the matched pattern is visible afterwards.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		route := r.Pattern
		if route == "" {
			route = "unmatched"
		}
		attrs := metric.WithAttributes(
			attribute.String("http.method", r.Method),
			attribute.String("http.route", route),
			attribute.String("http.status_code", strconv.Itoa(rec.status)),
		)
		m.requestCounter.Add(r.Context(), 1, attrs)
		m.requestDuration.Record(r.Context(), time.Since(start).Seconds(), attrs)
	})
}

// ObserveEmbedding records an upload or search outcome.
func (m *Metrics) ObserveEmbedding(ctx context.Context, operation string, elapsed time.Duration, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	attrs := metric.WithAttributes(
		attribute.String("operation", operation),
		attribute.String("status", status),
	)
	m.embeddingCounter.Add(ctx, 1, attrs)
	m.embeddingDuration.Record(ctx, elapsed.Seconds(), attrs)
}

// Shutdown flushes and stops the meter provider.
func (m *Metrics) Shutdown(ctx context.Context) error {
	return m.provider.Shutdown(ctx)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (r *statusRecorder) Flush() {
	if f, ok := r.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

func (r *statusRecorder) Unwrap() http.ResponseWriter {
	return r.ResponseWriter
}
