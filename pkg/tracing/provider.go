package tracing

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

var serviceNameKey = attribute.Key("service.name")

type option struct {
	endpoint string
	ratio    float64
	exporter sdktrace.SpanExporter
}

type Option func(*option)

// WithEndpoint OTLP/HTTP collector host:port, empty keeps spans in process
func WithEndpoint(endpoint string) Option {
	return func(o *option) {
		o.endpoint = endpoint
	}
}

// WithRatio samples the given fraction of new traces
func WithRatio(ratio float64) Option {
	return func(o *option) {
		if ratio >= 0 && ratio <= 1 {
			o.ratio = ratio
		}
	}
}

// WithExporter overrides the OTLP exporter
func WithExporter(exporter sdktrace.SpanExporter) Option {
	return func(o *option) {
		o.exporter = exporter
	}
}

// New installs the global tracer provider, the returned func flushes and stops it
func New(ctx context.Context, serviceName string, opts ...Option) (func(context.Context) error, error) {
	o := &option{ratio: 1}
	for _, f := range opts {
		f(o)
	}
	tpOpts := []sdktrace.TracerProviderOption{
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(o.ratio))),
		sdktrace.WithResource(resource.NewSchemaless(serviceNameKey.String(serviceName))),
	}
	exporter := o.exporter
	if exporter == nil && o.endpoint != "" {
		var err error
		if exporter, err = otlptracehttp.New(ctx,
			otlptracehttp.WithEndpoint(o.endpoint),
			otlptracehttp.WithInsecure(),
		); err != nil {
			return nil, err
		}
	}
	if exporter != nil {
		tpOpts = append(tpOpts, sdktrace.WithBatcher(exporter))
	}
	tp := sdktrace.NewTracerProvider(tpOpts...)
	otel.SetTracerProvider(tp)
	return tp.Shutdown, nil
}
