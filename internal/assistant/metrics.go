package assistant

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

var (
	meter           = otel.Meter("assistant")
	ToolInvocations metric.Int64Counter
)

func init() {
	var err error
	ToolInvocations, err = meter.Int64Counter(
		"tool_invocations_total",
		metric.WithDescription("Total tool invocations by tool, outcome and endpoint mapping"),
	)
	if err != nil {
		panic(err)
	}
}

// RecordToolInvocation records one tool invocation.
// outcome is "success" or "failure"; mapping is "explicit", "fallback" or "none" when no route was resolved.
func RecordToolInvocation(ctx context.Context, tool, outcome, mapping string) {
	ToolInvocations.Add(ctx, 1, metric.WithAttributes(
		attribute.String("tool", tool),
		attribute.String("outcome", outcome),
		attribute.String("mapping", mapping),
	))
}
