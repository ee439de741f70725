package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/jsonschema-go/jsonschema"
	"github.com/zral/mcp-ws/internal/domain"
	"github.com/zral/mcp-ws/internal/telemetry"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const (
	mappingExplicit = "explicit"
	mappingFallback = "fallback"
	mappingNone     = "none"
)

// ToolInvoker routes tool calls emitted by the LLM to the tool server.
// Every failure is reported as a failed domain.ToolInvocationResult so the
// LLM can react to it; Invoke never returns an error.
type ToolInvoker struct {
	catalog domain.ToolCatalog
	server  domain.ToolServer
	logger  *zap.Logger
}

// NewToolInvoker creates a new ToolInvoker.
func NewToolInvoker(catalog domain.ToolCatalog, server domain.ToolServer, logger *zap.Logger) ToolInvoker {
	return ToolInvoker{
		catalog: catalog,
		server:  server,
		logger:  logger,
	}
}

// Invoke calls the named tool with the raw JSON arguments produced by the LLM.
func (ti ToolInvoker) Invoke(ctx context.Context, name string, arguments string) domain.ToolInvocationResult {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("tool", name),
	))
	defer span.End()

	result, mapping := ti.invoke(spanCtx, name, arguments)

	outcome := "success"
	if !result.Success {
		outcome = "failure"
		span.SetAttributes(attribute.String("tool.error", result.Error))
	}
	span.SetAttributes(
		attribute.String("tool.outcome", outcome),
		attribute.String("tool.mapping", mapping),
	)
	RecordToolInvocation(spanCtx, name, outcome, mapping)
	return result
}

func (ti ToolInvoker) invoke(ctx context.Context, name string, arguments string) (domain.ToolInvocationResult, string) {
	descriptor, ok := ti.catalog.Lookup(name)
	if !ok {
		ti.logger.Warn("unknown tool requested", zap.String("tool", name))
		return domain.NewToolFailure("unknown tool: %s", name), mappingNone
	}

	args, err := parseArguments(arguments)
	if err != nil {
		return domain.NewToolFailure("invalid arguments for %s: %v", name, err), mappingNone
	}

	if err := ti.validateArguments(descriptor, args); err != nil {
		return domain.NewToolFailure("invalid arguments for %s: %v", name, err), mappingNone
	}

	route := domain.ResolveEndpoint(descriptor)
	mapping := mappingFallback
	if route.Explicit {
		mapping = mappingExplicit
		ti.logger.Info("using explicit mapping for "+name,
			zap.String("method", route.Method),
			zap.String("path", route.Path),
		)
	} else {
		ti.logger.Warn("using fallback endpoint mapping for "+name,
			zap.String("method", route.Method),
			zap.String("path", route.Path),
		)
		ti.logger.Warn("tool server should provide an explicit endpoint mapping for " + name)
	}

	data, err := ti.server.Call(ctx, route.Method, route.Path, args)
	if err != nil {
		ti.logger.Warn("tool invocation failed", zap.String("tool", name), zap.Error(err))
		return domain.NewToolFailure("tool %s failed: %v", name, err), mapping
	}
	return domain.NewToolSuccess(data), mapping
}

// parseArguments decodes the LLM arguments into a JSON object. Empty input is an empty object.
func parseArguments(arguments string) (map[string]any, error) {
	trimmed := strings.TrimSpace(arguments)
	if trimmed == "" {
		return map[string]any{}, nil
	}

	var decoded any
	dec := json.NewDecoder(bytes.NewReader([]byte(trimmed)))
	if err := dec.Decode(&decoded); err != nil {
		return nil, fmt.Errorf("malformed JSON: %w", err)
	}
	if dec.More() {
		return nil, errors.New("malformed JSON: unexpected data after arguments object")
	}

	switch v := decoded.(type) {
	case map[string]any:
		return v, nil
	case nil:
		return map[string]any{}, nil
	default:
		return nil, fmt.Errorf("expected a JSON object, got %T", decoded)
	}
}

// validateArguments checks args against the descriptor schema.
// A schema that cannot be resolved is logged and skipped.
func (ti ToolInvoker) validateArguments(descriptor domain.ToolDescriptor, args map[string]any) error {
	raw := bytes.TrimSpace(descriptor.InputSchema)
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}

	var schema jsonschema.Schema
	if err := json.Unmarshal(raw, &schema); err != nil {
		ti.logger.Warn("skipping argument validation, tool schema is not valid JSON schema",
			zap.String("tool", descriptor.Name),
			zap.Error(err),
		)
		return nil
	}
	resolved, err := schema.Resolve(nil)
	if err != nil {
		ti.logger.Warn("skipping argument validation, tool schema cannot be resolved",
			zap.String("tool", descriptor.Name),
			zap.Error(err),
		)
		return nil
	}

	return resolved.Validate(args)
}

// InitToolInvoker registers the ToolInvoker as domain.ToolInvoker.
type InitToolInvoker struct {
	Catalog domain.ToolCatalog `resolve:""`
	Server  domain.ToolServer  `resolve:""`
	Logger  *zap.Logger        `resolve:""`
}

// Initialize registers the invoker in the dependency container.
func (i InitToolInvoker) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.ToolInvoker](NewToolInvoker(i.Catalog, i.Server, i.Logger))
	return ctx, nil
}
