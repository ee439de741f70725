package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestInitOpenTelemetry_Initialize_Close(t *testing.T) {
	tests := map[string]struct {
		tracesEndpoint  string
		metricsEndpoint string
		expectTracer    bool
		expectMeter     bool
	}{
		"exporters-disabled": {
			tracesEndpoint:  "-",
			metricsEndpoint: "-",
		},
		"exporters-enabled": {
			tracesEndpoint:  "http://127.0.0.1:4318/v1/traces",
			metricsEndpoint: "http://127.0.0.1:4318/v1/metrics",
			expectTracer:    true,
			expectMeter:     true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			init := &InitOpenTelemetry{
				Logger:          zap.NewNop(),
				ServiceName:     "travel-agent-test",
				TracesEndpoint:  tt.tracesEndpoint,
				MetricsEndpoint: tt.metricsEndpoint,
			}
			ctx, err := init.Initialize(context.Background())
			require.NoError(t, err)
			assert.NotNil(t, ctx)
			assert.Equal(t, tt.expectTracer, init.tp != nil)
			assert.Equal(t, tt.expectMeter, init.mp != nil)
			init.Close()
		})
	}
}
