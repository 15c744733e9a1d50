// Package telemetry wires OpenTelemetry tracing. Export happens only when an
// OTLP endpoint is configured; otherwise tracers are no-ops.
package telemetry

import (
	"context"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// Provider owns the tracer provider for the lifetime of the program.
type Provider struct {
	provider *sdktrace.TracerProvider
	tracers  oteltrace.TracerProvider
}

// NewProvider creates an OTLP/HTTP exporting provider for endpoint.
// An empty endpoint returns a disabled provider whose tracers do nothing.
// The endpoint may be host:port (plain HTTP) or a full URL.
func NewProvider(ctx context.Context, endpoint, serviceName string) (*Provider, error) {
	if endpoint == "" {
		return &Provider{tracers: noop.NewTracerProvider()}, nil
	}

	opts := []otlptracehttp.Option{otlptracehttp.WithEndpoint(endpoint), otlptracehttp.WithInsecure()}
	if strings.Contains(endpoint, "://") {
		opts = []otlptracehttp.Option{otlptracehttp.WithEndpointURL(endpoint)}
	}
	exporter, err := otlptracehttp.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create otlp exporter: %w", err)
	}

	if serviceName == "" {
		serviceName = "emergencycard"
	}
	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName(serviceName),
	)

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	return &Provider{provider: provider, tracers: provider}, nil
}

// Enabled reports whether spans are exported.
func (p *Provider) Enabled() bool {
	return p != nil && p.provider != nil
}

// Tracer returns a named tracer. A nil Provider falls back to the global one.
func (p *Provider) Tracer(name string) oteltrace.Tracer {
	if p == nil || p.tracers == nil {
		return otel.Tracer(name)
	}
	return p.tracers.Tracer(name)
}

// Shutdown flushes and closes the exporter.
func (p *Provider) Shutdown(ctx context.Context) error {
	if !p.Enabled() {
		return nil
	}
	return p.provider.Shutdown(ctx)
}
