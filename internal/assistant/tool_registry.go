package assistant

import (
	"context"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/zral/mcp-ws/internal/domain"
	"github.com/zral/mcp-ws/internal/telemetry"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// toolSnapshot is an immutable view of the discovered tools.
type toolSnapshot struct {
	tools        map[string]domain.ToolDescriptor
	sorted       []domain.ToolDescriptor
	connected    bool
	discoveredAt time.Time
}

func (s *toolSnapshot) status() domain.ToolCatalogStatus {
	return domain.ToolCatalogStatus{
		ToolsLoaded:         len(s.tools),
		ToolServerConnected: s.connected,
		DiscoveredAt:        s.discoveredAt,
	}
}

// ToolRegistry holds the tools advertised by the tool server.
// Readers load the current snapshot without locking; Refresh builds a new
// snapshot and swaps it in, so a reader never sees a partially updated registry.
type ToolRegistry struct {
	server       domain.ToolServer
	timeProvider domain.CurrentTimeProvider
	logger       *zap.Logger

	mu       sync.Mutex
	snapshot atomic.Pointer[toolSnapshot]
}

// NewToolRegistry creates an empty ToolRegistry. Call Refresh to run discovery.
func NewToolRegistry(server domain.ToolServer, timeProvider domain.CurrentTimeProvider, logger *zap.Logger) *ToolRegistry {
	r := &ToolRegistry{
		server:       server,
		timeProvider: timeProvider,
		logger:       logger,
	}
	r.snapshot.Store(&toolSnapshot{tools: map[string]domain.ToolDescriptor{}})
	return r
}

// Lookup returns the descriptor registered under name.
func (r *ToolRegistry) Lookup(name string) (domain.ToolDescriptor, bool) {
	d, ok := r.snapshot.Load().tools[name]
	return d, ok
}

// List returns the registered descriptors ordered by name.
func (r *ToolRegistry) List() []domain.ToolDescriptor {
	return append([]domain.ToolDescriptor(nil), r.snapshot.Load().sorted...)
}

// Status summarizes the current snapshot.
func (r *ToolRegistry) Status() domain.ToolCatalogStatus {
	return r.snapshot.Load().status()
}

// Refresh fetches the manifest and swaps in a new snapshot.
// When discovery fails the registry is emptied and reports itself as disconnected.
func (r *ToolRegistry) Refresh(ctx context.Context) domain.ToolCatalogStatus {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.timeProvider.Now()
	descriptors, err := r.server.FetchManifest(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		prev := r.snapshot.Load()
		r.logger.Warn("tool discovery failed, no tools available",
			zap.Error(err),
			zap.Int("tools_dropped", len(prev.tools)),
		)
		next := &toolSnapshot{
			tools:        map[string]domain.ToolDescriptor{},
			connected:    false,
			discoveredAt: prev.discoveredAt,
		}
		r.snapshot.Store(next)
		return next.status()
	}

	next := r.buildSnapshot(descriptors, now)
	r.snapshot.Store(next)

	span.SetAttributes(attribute.Int("tools_loaded", len(next.tools)))
	r.logger.Info("tools discovered",
		zap.Int("tools_loaded", len(next.tools)),
		zap.Strings("tools", toolNames(next.sorted)),
	)
	return next.status()
}

func (r *ToolRegistry) buildSnapshot(descriptors []domain.ToolDescriptor, now time.Time) *toolSnapshot {
	tools := make(map[string]domain.ToolDescriptor, len(descriptors))
	for _, d := range descriptors {
		if d.Name == "" {
			r.logger.Warn("skipping tool without a name", zap.String("description", d.Description))
			continue
		}
		if _, exists := tools[d.Name]; exists {
			r.logger.Warn("duplicate tool name in manifest, keeping the last definition", zap.String("tool", d.Name))
		}
		tools[d.Name] = d
	}

	sorted := make([]domain.ToolDescriptor, 0, len(tools))
	for _, d := range tools {
		sorted = append(sorted, d)
	}
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Name < sorted[j].Name
	})

	return &toolSnapshot{
		tools:        tools,
		sorted:       sorted,
		connected:    true,
		discoveredAt: now,
	}
}

func toolNames(tools []domain.ToolDescriptor) []string {
	names := make([]string, len(tools))
	for i, t := range tools {
		names[i] = t.Name
	}
	return names
}

// InitToolRegistry runs the initial tool discovery and registers the registry as domain.ToolCatalog.
// A tool server that is down at startup leaves the registry empty; the service still starts.
type InitToolRegistry struct {
	Server       domain.ToolServer          `resolve:""`
	TimeProvider domain.CurrentTimeProvider `resolve:""`
	Logger       *zap.Logger                `resolve:""`
}

// Initialize discovers the tools and registers the registry.
func (i InitToolRegistry) Initialize(ctx context.Context) (context.Context, error) {
	registry := NewToolRegistry(i.Server, i.TimeProvider, i.Logger)
	registry.Refresh(ctx)
	depend.Register[domain.ToolCatalog](registry)
	return ctx, nil
}
