package usecases

import (
	"context"
	"time"

	"github.com/zral/mcp-ws/internal/domain"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

var (
	meter         = otel.Meter("usecases")
	LLMTokensUsed metric.Int64Counter
	QueryDuration metric.Float64Histogram
)

func init() {
	var err error
	LLMTokensUsed, err = meter.Int64Counter(
		"llm_tokens_used_total",
		metric.WithDescription("Total LLM tokens consumed per model and token type"),
	)
	if err != nil {
		panic(err)
	}

	QueryDuration, err = meter.Float64Histogram(
		"query_duration_seconds",
		metric.WithDescription("End-to-end duration of answered queries"),
		metric.WithUnit("s"),
	)
	if err != nil {
		panic(err)
	}
}

// RecordLLMTokensUsed records the tokens one completion consumed.
func RecordLLMTokensUsed(ctx context.Context, model string, usage domain.AssistantUsage) {
	LLMTokensUsed.Add(ctx, int64(usage.PromptTokens), metric.WithAttributes(
		attribute.String("model", model),
		attribute.String("token_type", "prompt"),
	))
	LLMTokensUsed.Add(ctx, int64(usage.CompletionTokens), metric.WithAttributes(
		attribute.String("model", model),
		attribute.String("token_type", "completion"),
	))
}

// RecordQueryDuration records how long a query took and whether it needed a tool round-trip.
func RecordQueryDuration(ctx context.Context, elapsed time.Duration, usedTools bool) {
	QueryDuration.Record(ctx, elapsed.Seconds(), metric.WithAttributes(
		attribute.Bool("used_tools", usedTools),
	))
}
