package usecases

import (
	"testing"
	"time"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/zral/mcp-ws/internal/domain"
)

func TestRefreshToolsImpl_Execute(t *testing.T) {
	discoveredAt := time.Date(2026, 6, 12, 10, 0, 0, 0, time.UTC)

	tests := map[string]struct {
		status domain.ToolCatalogStatus
	}{
		"connected": {
			status: domain.ToolCatalogStatus{ToolsLoaded: 3, ToolServerConnected: true, DiscoveredAt: discoveredAt},
		},
		"disconnected-empty": {
			status: domain.ToolCatalogStatus{ToolsLoaded: 0, ToolServerConnected: false, DiscoveredAt: discoveredAt},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			catalog := domain.NewMockToolCatalog(t)
			catalog.EXPECT().Refresh(mock.Anything).Return(tt.status).Once()

			got := NewRefreshToolsImpl(catalog).Execute(t.Context())
			assert.Equal(t, tt.status, got)
		})
	}
}

func TestInitRefreshTools_Initialize(t *testing.T) {
	i := InitRefreshTools{}

	_, err := i.Initialize(t.Context())
	assert.NoError(t, err)

	registered, err := depend.Resolve[RefreshTools]()
	assert.NoError(t, err)
	assert.NotNil(t, registered)
}
