package http

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/zral/mcp-ws/internal/usecases"
	"go.uber.org/zap"
)

func TestTravelAgentServer_Run(t *testing.T) {
	cancelCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	health := usecases.NewMockGetHealth(t)
	health.EXPECT().
		Query(mock.Anything).
		Return(usecases.HealthStatus{Status: "healthy"}).
		Maybe()

	server := TravelAgentServer{
		Port:             12346,
		Logger:           zap.NewNop(),
		TimeProvider:     fixedClock{},
		GetHealthUseCase: health,
	}

	shutdownCh := make(chan error, 1)

	go func() {
		shutdownCh <- server.Run(cancelCtx)
	}()

	var readyErr error
	for range 50 {
		readyErr = server.IsReady(cancelCtx)
		if readyErr == nil {
			break
		}
		time.Sleep(10 * time.Millisecond)
	}
	assert.NoError(t, readyErr)

	cancel()

	select {
	case err := <-shutdownCh:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		assert.Fail(t, "server did not shut down in time")
	}
}
