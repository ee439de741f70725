package workers

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/zral/mcp-ws/internal/domain"
	"github.com/zral/mcp-ws/internal/usecases"
	"go.uber.org/zap"
)

func TestToolCatalogRefresher_Run(t *testing.T) {
	refresh := usecases.NewMockRefreshTools(t)

	refresh.EXPECT().Execute(mock.Anything).Return(domain.ToolCatalogStatus{}).Once()
	refresh.EXPECT().Execute(mock.Anything).Return(domain.ToolCatalogStatus{ToolsLoaded: 3, ToolServerConnected: true})

	cancelCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	signalChan := make(chan struct{})

	tr := ToolCatalogRefresher{
		RefreshTools:        refresh,
		Logger:              zap.NewNop(),
		Interval:            2 * time.Millisecond,
		workerExecutionChan: signalChan,
	}

	done := make(chan error, 1)
	go func() {
		done <- tr.Run(cancelCtx)
	}()

	for range 2 {
		select {
		case <-signalChan:
			// Received signal that a refresh ran
		case <-time.After(1 * time.Second):
			t.Fatal("timeout waiting for tool refresh")
		}
	}

	cancel()
	assert.NoError(t, <-done)
}

func TestToolCatalogRefresher_Run_Disabled(t *testing.T) {
	refresh := usecases.NewMockRefreshTools(t)

	cancelCtx, cancel := context.WithCancel(context.Background())

	tr := ToolCatalogRefresher{
		RefreshTools: refresh,
		Logger:       zap.NewNop(),
	}

	done := make(chan error, 1)
	go func() {
		done <- tr.Run(cancelCtx)
	}()

	time.Sleep(10 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(1 * time.Second):
		t.Fatal("disabled worker did not stop")
	}
}
