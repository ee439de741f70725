package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveEndpoint(t *testing.T) {
	tests := map[string]struct {
		descriptor ToolDescriptor
		expected   EndpointResolution
	}{
		"explicit-endpoint-and-method": {
			descriptor: ToolDescriptor{Name: "get_weather", Endpoint: "/weather", Method: "GET"},
			expected:   EndpointResolution{Method: "GET", Path: "/weather", Explicit: true},
		},
		"explicit-endpoint-default-method": {
			descriptor: ToolDescriptor{Name: "plan_route", Endpoint: "/routes/plan"},
			expected:   EndpointResolution{Method: "POST", Path: "/routes/plan", Explicit: true},
		},
		"explicit-method-is-normalized": {
			descriptor: ToolDescriptor{Name: "cancel", Endpoint: "/bookings", Method: " delete "},
			expected:   EndpointResolution{Method: "DELETE", Path: "/bookings", Explicit: true},
		},
		"fallback-strips-get-prefix": {
			descriptor: ToolDescriptor{Name: "get_weather_forecast"},
			expected:   EndpointResolution{Method: "POST", Path: "/weather-forecast"},
		},
		"fallback-single-word": {
			descriptor: ToolDescriptor{Name: "ping"},
			expected:   EndpointResolution{Method: "POST", Path: "/ping"},
		},
		"fallback-underscores": {
			descriptor: ToolDescriptor{Name: "health_check"},
			expected:   EndpointResolution{Method: "POST", Path: "/health-check"},
		},
		"fallback-ignores-method-without-endpoint": {
			descriptor: ToolDescriptor{Name: "get_city_info", Method: "GET"},
			expected:   EndpointResolution{Method: "POST", Path: "/city-info"},
		},
		"fallback-only-strips-leading-prefix": {
			descriptor: ToolDescriptor{Name: "budget_get_total"},
			expected:   EndpointResolution{Method: "POST", Path: "/budget-get-total"},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ResolveEndpoint(tt.descriptor))
		})
	}
}
