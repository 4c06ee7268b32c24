package tracing

import (
	"context"

	"github.com/pkg/errors"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"
)

func NewProvider(endpoint, name string) (*trace.TracerProvider, func(), error) {
	ctx := context.Background()
	exp, err := newExporter(ctx, endpoint)
	if err != nil {
		return nil, nil, errors.Wrap(err, "creating trace exporter")
	}

	tp := trace.NewTracerProvider(
		trace.WithBatcher(exp),
		trace.WithResource(newResource(name)),
	)

	shutdown := func() {
		tp.Shutdown(ctx)
	}

	return tp, shutdown, nil
}

func newResource(name string) *resource.Resource {
	return resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName(name),
	)
}
