// Package toolserver talks to the HTTP tool server: it fetches the tool manifest
// and dispatches tool invocations to the resolved endpoints.
package toolserver

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/zral/mcp-ws/internal/common"
	"github.com/zral/mcp-ws/internal/domain"
	"github.com/zral/mcp-ws/internal/telemetry"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const maxErrorBodyChars = 200

// Client is the HTTP client for the tool server.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a new Client.
func NewClient(baseURL string, httpClient *http.Client) Client {
	return Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
	}
}

// FetchManifest retrieves the tool descriptors published at GET /tools.
func (c Client) FetchManifest(ctx context.Context) ([]domain.ToolDescriptor, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	req, err := http.NewRequestWithContext(spanCtx, http.MethodGet, c.baseURL+"/tools", nil)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	body, err := c.do(req)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}

	var manifest Manifest
	if err := json.Unmarshal(body, &manifest); telemetry.RecordErrorAndStatus(span, err) {
		return nil, fmt.Errorf("invalid manifest: %w", err)
	}
	if manifest.Tools == nil {
		err := errors.New("invalid manifest: missing tools list")
		telemetry.RecordErrorAndStatus(span, err)
		return nil, err
	}

	span.SetAttributes(attribute.Int("tools", len(manifest.Tools)))
	return manifest.Tools, nil
}

// Call invokes a tool endpoint. GET requests carry the arguments as query parameters,
// every other method sends them as a JSON body. The decoded response data is returned.
func (c Client) Call(ctx context.Context, method, path string, args map[string]any) (json.RawMessage, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("http.method", method),
		attribute.String("tool.path", path),
	))
	defer span.End()

	req, err := c.newToolRequest(spanCtx, method, path, args)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}

	body, err := c.do(req)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}

	data, err := unwrapEnvelope(body)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	return data, nil
}

func (c Client) newToolRequest(ctx context.Context, method, path string, args map[string]any) (*http.Request, error) {
	endpoint := c.baseURL + "/" + strings.TrimLeft(path, "/")

	if method == http.MethodGet {
		query, err := encodeQuery(args)
		if err != nil {
			return nil, err
		}
		if len(query) > 0 {
			endpoint += "?" + query.Encode()
		}
		req, err := http.NewRequestWithContext(ctx, method, endpoint, nil)
		if err != nil {
			return nil, fmt.Errorf("create request: %w", err)
		}
		req.Header.Set("Accept", "application/json")
		return req, nil
	}

	if args == nil {
		args = map[string]any{}
	}
	b, err := json.Marshal(args)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, method, endpoint, bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	return req, nil
}

func (c Client) do(req *http.Request) ([]byte, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http do: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("tool server returned %d: %s", resp.StatusCode, common.Truncate(strings.TrimSpace(string(body)), maxErrorBodyChars))
	}
	return body, nil
}

// encodeQuery flattens decoded JSON arguments into query parameters.
func encodeQuery(args map[string]any) (url.Values, error) {
	values := url.Values{}
	for key, v := range args {
		switch val := v.(type) {
		case nil:
		case []any:
			for _, item := range val {
				s, err := formatQueryValue(item)
				if err != nil {
					return nil, fmt.Errorf("encode query parameter %s: %w", key, err)
				}
				values.Add(key, s)
			}
		default:
			s, err := formatQueryValue(val)
			if err != nil {
				return nil, fmt.Errorf("encode query parameter %s: %w", key, err)
			}
			values.Set(key, s)
		}
	}
	return values, nil
}

func formatQueryValue(v any) (string, error) {
	switch val := v.(type) {
	case string:
		return val, nil
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64), nil
	case bool:
		return strconv.FormatBool(val), nil
	case json.Number:
		return val.String(), nil
	default:
		b, err := json.Marshal(val)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
}

// unwrapEnvelope validates the response body and strips the tool server's
// {"success","data","error"} envelope when present.
func unwrapEnvelope(body []byte) (json.RawMessage, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return nil, errors.New("tool server returned an empty body")
	}
	if !json.Valid(trimmed) {
		return nil, fmt.Errorf("tool server returned invalid JSON: %s", common.Truncate(string(trimmed), maxErrorBodyChars))
	}

	var env envelope
	if trimmed[0] != '{' || json.Unmarshal(trimmed, &env) != nil || env.Success == nil {
		return json.RawMessage(trimmed), nil
	}
	if !*env.Success {
		if env.Error == "" {
			env.Error = "tool reported failure"
		}
		return nil, errors.New(env.Error)
	}
	if len(env.Data) == 0 {
		return json.RawMessage("null"), nil
	}
	return env.Data, nil
}

// InitToolServer is a Symbiont initializer for the tool server client.
type InitToolServer struct {
	HttpClient *http.Client `resolve:""`
	ServerURL  string       `config:"TOOL_SERVER_URL" default:"http://mcp-server:8000"`
}

// Initialize registers the tool server client as domain.ToolServer.
func (i InitToolServer) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.ToolServer](NewClient(i.ServerURL, i.HttpClient))
	return ctx, nil
}
