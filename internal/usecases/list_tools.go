package usecases

import (
	"context"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/zral/mcp-ws/internal/domain"
	"github.com/zral/mcp-ws/internal/telemetry"
	"go.opentelemetry.io/otel/attribute"
)

// ToolInfo is a registered tool together with the route used to invoke it.
type ToolInfo struct {
	Descriptor domain.ToolDescriptor
	Endpoint   domain.EndpointResolution
}

// ListTools defines the interface for the ListTools use case.
type ListTools interface {
	// Query returns the registered tools ordered by name.
	Query(ctx context.Context) []ToolInfo
}

// ListToolsImpl is the implementation of the ListTools use case.
type ListToolsImpl struct {
	catalog domain.ToolCatalog
}

// NewListToolsImpl creates a new instance of ListToolsImpl.
func NewListToolsImpl(catalog domain.ToolCatalog) ListToolsImpl {
	return ListToolsImpl{catalog: catalog}
}

// Query returns the registered tools ordered by name.
func (lt ListToolsImpl) Query(ctx context.Context) []ToolInfo {
	_, span := telemetry.Start(ctx)
	defer span.End()

	tools := lt.catalog.List()
	infos := make([]ToolInfo, 0, len(tools))
	for _, t := range tools {
		infos = append(infos, ToolInfo{Descriptor: t, Endpoint: domain.ResolveEndpoint(t)})
	}
	span.SetAttributes(attribute.Int("tools", len(infos)))
	return infos
}

// InitListTools initializes the ListTools use case and registers it in the dependency container.
type InitListTools struct {
	Catalog domain.ToolCatalog `resolve:""`
}

// Initialize registers the ListTools use case.
func (i InitListTools) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[ListTools](NewListToolsImpl(i.Catalog))
	return ctx, nil
}
