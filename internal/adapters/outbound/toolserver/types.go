package toolserver

import (
	"encoding/json"

	"github.com/zral/mcp-ws/internal/domain"
)

// Manifest is the body returned by GET /tools.
type Manifest struct {
	Tools []domain.ToolDescriptor `json:"tools"`
}

// envelope is the response wrapper used by the tool server endpoints.
type envelope struct {
	Success *bool           `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}
