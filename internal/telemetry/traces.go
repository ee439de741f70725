package telemetry

import (
	"context"
	"runtime"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("github.com/zral/mcp-ws")

var spanNameReplacer = strings.NewReplacer("(*", "", ")", "", ".", "::")

// Start opens a span named after the calling function, e.g. "usecases::ProcessQueryImpl::Execute".
func Start(ctx context.Context, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
	return tracer.Start(ctx, callerSpanName(2), opts...)
}

// RecordErrorAndStatus marks the span as failed when err is not nil and reports whether it did.
func RecordErrorAndStatus(span trace.Span, err error) bool {
	if err == nil {
		span.SetStatus(codes.Ok, "OK")
		return false
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return true
}

func callerSpanName(skip int) string {
	pc, _, _, ok := runtime.Caller(skip)
	if !ok {
		return "unknown"
	}
	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return "unknown"
	}

	name := fn.Name()
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	return spanNameReplacer.Replace(name)
}

func newTracerProvider(ctx context.Context, res *resource.Resource, endpoint string) (*sdktrace.TracerProvider, sdktrace.SpanExporter, error) {
	exporter, err := otlptracehttp.New(ctx, otlptracehttp.WithEndpointURL(endpoint))
	if err != nil {
		return nil, nil, err
	}

	tracerProvider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter, sdktrace.WithBatchTimeout(time.Second)),
		sdktrace.WithResource(res),
	)
	return tracerProvider, exporter, nil
}
