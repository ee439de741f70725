package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToolDescriptor_Parameters(t *testing.T) {
	tests := map[string]struct {
		schema   json.RawMessage
		expected string
	}{
		"missing-schema": {
			schema:   nil,
			expected: `{"type":"object","properties":{}}`,
		},
		"null-schema": {
			schema:   json.RawMessage("null"),
			expected: `{"type":"object","properties":{}}`,
		},
		"schema-passed-through": {
			schema:   json.RawMessage(`{"type":"object","properties":{"city":{"type":"string"}},"required":["city"]}`),
			expected: `{"type":"object","properties":{"city":{"type":"string"}},"required":["city"]}`,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			d := ToolDescriptor{Name: "get_weather", Description: "Weather lookup", InputSchema: tt.schema}
			assert.JSONEq(t, tt.expected, string(d.Parameters()))

			def := d.ActionDefinition()
			assert.Equal(t, "get_weather", def.Name)
			assert.Equal(t, "Weather lookup", def.Description)
			assert.JSONEq(t, tt.expected, string(def.Parameters))
		})
	}
}

func TestToolDescriptor_UnmarshalManifestEntry(t *testing.T) {
	raw := `{"name":"get_weather","description":"Weather","inputSchema":{"type":"object"},"endpoint":"/weather","method":"GET"}`

	var d ToolDescriptor
	assert.NoError(t, json.Unmarshal([]byte(raw), &d))
	assert.Equal(t, "get_weather", d.Name)
	assert.Equal(t, "/weather", d.Endpoint)
	assert.Equal(t, "GET", d.Method)
	assert.JSONEq(t, `{"type":"object"}`, string(d.InputSchema))
}

func TestToolInvocationResult_JSON(t *testing.T) {
	tests := map[string]struct {
		result   ToolInvocationResult
		expected string
	}{
		"success": {
			result:   NewToolSuccess(json.RawMessage(`{"temp":21}`)),
			expected: `{"success":true,"data":{"temp":21}}`,
		},
		"success-without-data": {
			result:   NewToolSuccess(nil),
			expected: `{"success":true,"data":null}`,
		},
		"failure": {
			result:   NewToolFailure("unknown tool: %s", "get_flights"),
			expected: `{"success":false,"error":"unknown tool: get_flights"}`,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.JSONEq(t, tt.expected, tt.result.JSON())
		})
	}
}
