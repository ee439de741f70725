package usecases

import (
	"context"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/zral/mcp-ws/internal/domain"
	"github.com/zral/mcp-ws/internal/telemetry"
	"go.opentelemetry.io/otel/attribute"
)

// RefreshTools defines the interface for the RefreshTools use case.
type RefreshTools interface {
	// Execute re-runs tool discovery and returns the resulting catalog status.
	Execute(ctx context.Context) domain.ToolCatalogStatus
}

// RefreshToolsImpl is the implementation of the RefreshTools use case.
type RefreshToolsImpl struct {
	catalog domain.ToolCatalog
}

// NewRefreshToolsImpl creates a new instance of RefreshToolsImpl.
func NewRefreshToolsImpl(catalog domain.ToolCatalog) RefreshToolsImpl {
	return RefreshToolsImpl{catalog: catalog}
}

// Execute re-runs tool discovery. A failed discovery leaves no tools and reports the server as disconnected.
func (rt RefreshToolsImpl) Execute(ctx context.Context) domain.ToolCatalogStatus {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	status := rt.catalog.Refresh(spanCtx)
	span.SetAttributes(
		attribute.Int("tools_loaded", status.ToolsLoaded),
		attribute.Bool("tool_server_connected", status.ToolServerConnected),
	)
	return status
}

// InitRefreshTools initializes the RefreshTools use case and registers it in the dependency container.
type InitRefreshTools struct {
	Catalog domain.ToolCatalog `resolve:""`
}

// Initialize registers the RefreshTools use case.
func (i InitRefreshTools) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[RefreshTools](NewRefreshToolsImpl(i.Catalog))
	return ctx, nil
}
