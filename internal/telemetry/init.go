package telemetry

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.30.0"
	"go.uber.org/zap"
)

const exporterDisabled = "-"

// InitOpenTelemetry is a component that sets up OpenTelemetry tracing and metrics.
// Each exporter is disabled when its endpoint is "-".
type InitOpenTelemetry struct {
	Logger          *zap.Logger `resolve:""`
	ServiceName     string      `config:"OTEL_SERVICE_NAME" default:"travel-agent"`
	TracesEndpoint  string      `config:"OTEL_EXPORTER_OTLP_TRACES_ENDPOINT" default:"-"`
	MetricsEndpoint string      `config:"OTEL_EXPORTER_OTLP_METRICS_ENDPOINT" default:"-"`
	tp              *sdktrace.TracerProvider
	se              sdktrace.SpanExporter
	mp              *sdkmetric.MeterProvider
	me              sdkmetric.Exporter
}

// Initialize installs the propagator and, for every configured endpoint, the matching global provider.
func (o *InitOpenTelemetry) Initialize(ctx context.Context) (context.Context, error) {
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	res, err := resource.New(ctx, resource.WithAttributes(semconv.ServiceNameKey.String(o.ServiceName)))
	if err != nil {
		return ctx, fmt.Errorf("create otel resource: %w", err)
	}

	if o.TracesEndpoint != exporterDisabled {
		if o.tp, o.se, err = newTracerProvider(ctx, res, o.TracesEndpoint); err != nil {
			return ctx, fmt.Errorf("create tracer provider: %w", err)
		}
		otel.SetTracerProvider(o.tp)
	}

	if o.MetricsEndpoint != exporterDisabled {
		if o.mp, o.me, err = newMeterProvider(ctx, res, o.MetricsEndpoint); err != nil {
			return ctx, fmt.Errorf("create meter provider: %w", err)
		}
		otel.SetMeterProvider(o.mp)
	}

	o.Logger.Info("InitOpenTelemetry: telemetry configured",
		zap.String("service", o.ServiceName),
		zap.Bool("traces", o.tp != nil),
		zap.Bool("metrics", o.mp != nil),
	)
	return ctx, nil
}

// Close shuts down the OpenTelemetry providers and exporters.
func (o *InitOpenTelemetry) Close() {
	if o.tp == nil && o.mp == nil {
		return
	}

	cancelCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if o.tp != nil {
		if err := o.tp.Shutdown(cancelCtx); err != nil {
			o.Logger.Warn("error shutting down tracer provider", zap.Error(err))
		}
		if err := o.se.Shutdown(cancelCtx); err != nil {
			o.Logger.Warn("error shutting down span exporter", zap.Error(err))
		}
	}
	if o.mp != nil {
		if err := o.mp.Shutdown(cancelCtx); err != nil {
			o.Logger.Warn("error shutting down meter provider", zap.Error(err))
		}
		if err := o.me.Shutdown(cancelCtx); err != nil {
			o.Logger.Warn("error shutting down meter exporter", zap.Error(err))
		}
	}
}
