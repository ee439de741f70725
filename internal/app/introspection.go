package app

import (
	"context"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/cleitonmarx/symbiont/introspection"
	"github.com/cleitonmarx/symbiont/introspection/mermaid"
	"github.com/zral/mcp-ws/internal/adapters/inbound/http"
	"go.uber.org/zap"
)

// MermaidGraphIntrospector publishes the dependency graph and the configuration keys of the report
// for the /introspect page.
type MermaidGraphIntrospector struct {
}

// Introspect registers the mermaid graph and the config accesses as named dependencies.
func (i MermaidGraphIntrospector) Introspect(_ context.Context, r introspection.Report) error {
	depend.RegisterNamed(mermaid.GenerateIntrospectionGraph(r), http.IntrospectionGraphKey)
	depend.RegisterNamed(r.Configs, http.IntrospectionConfigsKey)
	return nil
}

// ReportLoggerIntrospector logs which configuration keys were read at startup and whether they fell back to defaults.
// Values are never logged.
type ReportLoggerIntrospector struct {
}

// Introspect writes one log entry per configuration key using the registered *zap.Logger.
func (i ReportLoggerIntrospector) Introspect(_ context.Context, r introspection.Report) error {
	logger, err := depend.Resolve[*zap.Logger]()
	if err != nil {
		return nil
	}
	for _, c := range r.Configs {
		logger.Info("config key resolved",
			zap.String("key", c.Key),
			zap.Bool("used_default", c.UsedDefault),
		)
	}
	return nil
}
