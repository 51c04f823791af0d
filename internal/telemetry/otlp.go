// Package telemetry records UI interactions as OpenTelemetry spans.
package telemetry

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

const instrumentationName = "freshmarket/ui"

// Recorder emits one span per handled interaction.
// The zero value and a nil *Recorder are no-ops.
type Recorder struct {
	provider *sdktrace.TracerProvider
	tracer   oteltrace.Tracer
}

// NewOTLPRecorder exports to endpoint over OTLP/HTTP. An empty endpoint
// returns a no-op recorder.
func NewOTLPRecorder(ctx context.Context, endpoint, serviceName string) (*Recorder, error) {
	if endpoint == "" {
		return &Recorder{}, nil
	}

	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpoint(endpoint),
		otlptracehttp.WithInsecure(), // Local collector; plain HTTP
	)
	if err != nil {
		return nil, err
	}

	if serviceName == "" {
		serviceName = "freshmarket"
	}
	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(serviceName),
	)

	return NewRecorder(sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)), nil
}

// NewRecorder wraps an existing provider. Tests pass one built around a
// tracetest.SpanRecorder.
func NewRecorder(provider *sdktrace.TracerProvider) *Recorder {
	return &Recorder{
		provider: provider,
		tracer:   provider.Tracer(instrumentationName),
	}
}

// Interaction records a zero-length span named "ui."+name. Attribute keys
// are namespaced under "freshmarket.".
func (r *Recorder) Interaction(ctx context.Context, name string, attrs map[string]string) {
	tracer := r.tracerOrNoop()
	_, span := tracer.Start(ctx, "ui."+name)
	if len(attrs) > 0 {
		kvs := make([]attribute.KeyValue, 0, len(attrs))
		for k, v := range attrs {
			kvs = append(kvs, attribute.String("freshmarket."+k, v))
		}
		span.SetAttributes(kvs...)
	}
	span.End()
}

func (r *Recorder) tracerOrNoop() oteltrace.Tracer {
	if r == nil || r.tracer == nil {
		return noop.NewTracerProvider().Tracer(instrumentationName)
	}
	return r.tracer
}

// Shutdown flushes pending spans.
func (r *Recorder) Shutdown(ctx context.Context) error {
	if r == nil || r.provider == nil {
		return nil
	}
	return r.provider.Shutdown(ctx)
}
