package http

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/zral/mcp-ws/internal/domain"
)

const maxRequestBodyBytes = 1 << 20

var (
	//go:embed schemas/*.json
	schemaFS embed.FS

	queryRequestSchema   = mustResolveSchema("schemas/query_request.json")
	sessionRequestSchema = mustResolveSchema("schemas/session_request.json")
)

func mustResolveSchema(name string) *jsonschema.Resolved {
	raw, err := schemaFS.ReadFile(name)
	if err != nil {
		panic(err)
	}
	var schema jsonschema.Schema
	if err := json.Unmarshal(raw, &schema); err != nil {
		panic(fmt.Errorf("parse %s: %w", name, err))
	}
	resolved, err := schema.Resolve(nil)
	if err != nil {
		panic(fmt.Errorf("resolve %s: %w", name, err))
	}
	return resolved
}

// decodeRequest validates the request body against schema and decodes it into dst.
// An empty body is treated as an empty object.
func decodeRequest(r *http.Request, schema *jsonschema.Resolved, dst any) error {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxRequestBodyBytes))
	if err != nil {
		return domain.NewValidationErr("failed to read request body")
	}
	if len(bytes.TrimSpace(body)) == 0 {
		body = []byte("{}")
	}

	var instance any
	if err := json.Unmarshal(body, &instance); err != nil {
		return domain.NewValidationErr("invalid request body")
	}
	if err := schema.Validate(instance); err != nil {
		return domain.NewValidationErrf("invalid request body: %v", err)
	}
	if err := json.Unmarshal(body, dst); err != nil {
		return domain.NewValidationErr("invalid request body")
	}
	return nil
}
