package tracing

import (
	"context"
	"io"

	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/trace"
)

// newExporter picks the span exporter from the endpoint value: "stdout"
// pretty-prints spans, an empty endpoint discards them, anything else is an
// OTLP collector address.
func newExporter(ctx context.Context, endpoint string) (trace.SpanExporter, error) {
	switch endpoint {
	case "":
		return newNoopExporter()
	case "stdout":
		return newStdoutExporter()
	default:
		client := otlptracehttp.NewClient(
			otlptracehttp.WithEndpoint(endpoint),
			otlptracehttp.WithInsecure(),
		)
		return otlptrace.New(ctx, client)
	}
}

func newStdoutExporter() (trace.SpanExporter, error) {
	return stdouttrace.New(stdouttrace.WithPrettyPrint())
}

func newNoopExporter() (trace.SpanExporter, error) {
	return stdouttrace.New(stdouttrace.WithWriter(io.Discard))
}
