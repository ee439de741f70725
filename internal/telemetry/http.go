package telemetry

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/hashicorp/go-retryablehttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/attribute"
	semconv "go.opentelemetry.io/otel/semconv/v1.30.0"
)

// SpanNameFormatter names HTTP spans after the matched route, or method and path when no route matched.
func SpanNameFormatter(_ string, r *http.Request) string {
	return httpRoute(r)
}

func httpRoute(r *http.Request) string {
	if r.Pattern != "" {
		return r.Pattern
	}
	return r.Method + " " + r.URL.Path
}

// WithHttpMetricAttributes labels HTTP server metrics with the route.
func WithHttpMetricAttributes(r *http.Request) []attribute.KeyValue {
	return []attribute.KeyValue{semconv.HTTPRoute(httpRoute(r))}
}

// Middleware instruments inbound requests with spans and metrics named after operation.
func Middleware(operation string) func(http.Handler) http.Handler {
	return otelhttp.NewMiddleware(
		operation,
		otelhttp.WithSpanNameFormatter(SpanNameFormatter),
		otelhttp.WithMetricAttributesFn(WithHttpMetricAttributes),
	)
}

// InitHttpClient initializes the shared outbound HTTP client, instrumented with
// OpenTelemetry and bounded by a per-request timeout. Retries are disabled unless
// HTTP_CLIENT_MAX_RETRIES is set.
type InitHttpClient struct {
	Logger     *log.Logger   `resolve:""`
	Timeout    time.Duration `config:"HTTP_CLIENT_TIMEOUT" default:"30s"`
	MaxRetries int           `config:"HTTP_CLIENT_MAX_RETRIES" default:"0"`
}

// Initialize registers the *http.Client in the dependency container.
func (i InitHttpClient) Initialize(ctx context.Context) (context.Context, error) {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryWaitMax = 5 * time.Second
	retryClient.RetryMax = i.MaxRetries
	retryClient.CheckRetry = dontRetry500StatusPolicy(retryablehttp.ErrorPropagatedRetryPolicy)
	retryClient.ErrorHandler = lastResponseErrorHandler
	retryClient.Logger = i.Logger

	stdClient := retryClient.StandardClient()
	stdClient.Timeout = i.Timeout
	stdClient.Transport = otelhttp.NewTransport(
		stdClient.Transport,
		otelhttp.WithSpanNameFormatter(SpanNameFormatter),
	)

	depend.Register(stdClient)
	return ctx, nil
}

// dontRetry500StatusPolicy is a retry policy for the retryablehttp client that prevents
// retries on HTTP 500 Internal Server Error responses.
func dontRetry500StatusPolicy(policy retryablehttp.CheckRetry) retryablehttp.CheckRetry {
	return func(ctx context.Context, resp *http.Response, err error) (bool, error) {
		// do not retry on context.Canceled or context.DeadlineExceeded
		if ctx.Err() != nil {
			return false, ctx.Err()
		}

		if resp != nil && resp.StatusCode == http.StatusInternalServerError {
			return false, err
		}
		return policy(ctx, resp, err)
	}
}

// lastResponseErrorHandler hands the final response back to the caller once retries
// are exhausted, so adapters can report the upstream status and body themselves.
func lastResponseErrorHandler(resp *http.Response, err error, _ int) (*http.Response, error) {
	if resp != nil {
		return resp, nil
	}
	return nil, err
}
