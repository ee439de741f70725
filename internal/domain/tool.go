package domain

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// ToolDescriptor describes one remotely callable tool advertised by the tool server manifest.
type ToolDescriptor struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	InputSchema json.RawMessage `json:"inputSchema,omitempty"`
	Endpoint    string          `json:"endpoint,omitempty"`
	Method      string          `json:"method,omitempty"`
}

// Parameters returns the JSON schema handed to the LLM for this tool.
// A descriptor without a schema accepts an empty object.
func (d ToolDescriptor) Parameters() json.RawMessage {
	if len(strings.TrimSpace(string(d.InputSchema))) == 0 || string(d.InputSchema) == "null" {
		return json.RawMessage(`{"type":"object","properties":{}}`)
	}
	return d.InputSchema
}

// ActionDefinition converts the descriptor into an assistant action definition.
func (d ToolDescriptor) ActionDefinition() AssistantActionDefinition {
	return AssistantActionDefinition{
		Name:        d.Name,
		Description: d.Description,
		Parameters:  d.Parameters(),
	}
}

// ToolInvocationResult is the outcome of one tool invocation. It is always a value:
// failures are described by Success=false and Error, never returned as Go errors.
type ToolInvocationResult struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   string          `json:"error,omitempty"`
}

// NewToolSuccess creates a successful invocation result.
func NewToolSuccess(data json.RawMessage) ToolInvocationResult {
	if len(data) == 0 {
		data = json.RawMessage("null")
	}
	return ToolInvocationResult{Success: true, Data: data}
}

// NewToolFailure creates a failed invocation result.
func NewToolFailure(format string, args ...any) ToolInvocationResult {
	return ToolInvocationResult{Success: false, Error: fmt.Sprintf(format, args...)}
}

// JSON renders the result as the content of a tool message.
func (r ToolInvocationResult) JSON() string {
	b, err := json.Marshal(r)
	if err != nil {
		b, _ = json.Marshal(NewToolFailure("failed to encode tool result: %v", err))
	}
	return string(b)
}

// ToolCatalogStatus summarizes the current registry snapshot.
type ToolCatalogStatus struct {
	ToolsLoaded         int
	ToolServerConnected bool
	DiscoveredAt        time.Time
}

// ToolServer is the outbound port to the remote tool server.
type ToolServer interface {
	// FetchManifest retrieves the tool descriptors advertised by the tool server.
	FetchManifest(ctx context.Context) ([]ToolDescriptor, error)
	// Call issues one tool request and returns the JSON payload produced by the tool.
	Call(ctx context.Context, method, path string, args map[string]any) (json.RawMessage, error)
}

// ToolCatalog exposes the registry of discovered tools.
type ToolCatalog interface {
	// Lookup returns the descriptor registered under name.
	Lookup(name string) (ToolDescriptor, bool)
	// List returns every registered descriptor ordered by name.
	List() []ToolDescriptor
	// Status returns a summary of the current snapshot.
	Status() ToolCatalogStatus
	// Refresh re-runs discovery and swaps the snapshot.
	Refresh(ctx context.Context) ToolCatalogStatus
}

// ToolInvoker routes an LLM tool call to the tool server.
type ToolInvoker interface {
	// Invoke calls the named tool with the raw JSON arguments emitted by the LLM.
	Invoke(ctx context.Context, name string, arguments string) ToolInvocationResult
}
