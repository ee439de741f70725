package usecases

import (
	"context"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/zral/mcp-ws/internal/domain"
)

// HealthStatus summarizes the readiness of the agent.
type HealthStatus struct {
	Status              string
	ToolsLoaded         int
	ToolServerConnected bool
}

// GetHealth defines the interface for the GetHealth use case.
type GetHealth interface {
	// Query returns the current health of the agent. It never performs I/O.
	Query(ctx context.Context) HealthStatus
}

// GetHealthImpl is the implementation of the GetHealth use case.
type GetHealthImpl struct {
	catalog domain.ToolCatalog
}

// NewGetHealthImpl creates a new instance of GetHealthImpl.
func NewGetHealthImpl(catalog domain.ToolCatalog) GetHealthImpl {
	return GetHealthImpl{catalog: catalog}
}

// Query reports the agent as healthy with the tool registry status.
func (gh GetHealthImpl) Query(_ context.Context) HealthStatus {
	status := gh.catalog.Status()
	return HealthStatus{
		Status:              "healthy",
		ToolsLoaded:         status.ToolsLoaded,
		ToolServerConnected: status.ToolServerConnected,
	}
}

// InitGetHealth initializes the GetHealth use case and registers it in the dependency container.
type InitGetHealth struct {
	Catalog domain.ToolCatalog `resolve:""`
}

// Initialize registers the GetHealth use case.
func (i InitGetHealth) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[GetHealth](NewGetHealthImpl(i.Catalog))
	return ctx, nil
}
