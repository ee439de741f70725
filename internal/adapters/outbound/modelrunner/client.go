// Package modelrunner provides a small, backend-agnostic client for an
// OpenAI-compatible chat-completions endpoint (Docker Model Runner, llama.cpp server).
//
// Non-standard fields such as "reasoning_content" are ignored.
package modelrunner

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// ChatCompletionsClient is a thin client for an OpenAI-compatible chat completions API.
type ChatCompletionsClient struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// NewChatCompletionsClient creates a new client.
func NewChatCompletionsClient(baseURL string, apiKey string, httpClient *http.Client) ChatCompletionsClient {
	return ChatCompletionsClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    httpClient,
	}
}

// Chat sends a non-streaming chat completion request.
func (c ChatCompletionsClient) Chat(ctx context.Context, req ChatRequest) (*ChatResponse, error) {
	if req.Model == "" {
		return nil, errors.New("model is required")
	}
	if len(req.Messages) == 0 {
		return nil, errors.New("messages are required")
	}

	httpReq, err := c.newPostRequest(ctx, "/v1/chat/completions", req)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("http do: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("non-2xx response: %s: %s", resp.Status, string(respBody))
	}

	var out ChatResponse
	if err := json.Unmarshal(respBody, &out); err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}

	return &out, nil
}

func (c ChatCompletionsClient) newPostRequest(ctx context.Context, path string, body any) (*http.Request, error) {
	endpoint, err := url.JoinPath(c.baseURL, path)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}
	b, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
	return req, nil
}
