package app

import (
	"context"
	"testing"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/cleitonmarx/symbiont/introspection"
	"github.com/stretchr/testify/require"
	"github.com/zral/mcp-ws/internal/adapters/inbound/http"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestMermaidGraphIntrospector_Introspect(t *testing.T) {
	introspector := MermaidGraphIntrospector{}

	report := introspection.Report{
		Configs: []introspection.ConfigAccess{
			{
				Key:         "KEY1",
				UsedDefault: true,
			},
		},
	}
	ctx := context.Background()

	t.Cleanup(depend.ClearContainer)
	err := introspector.Introspect(ctx, report)
	require.NoError(t, err)

	mermaidGraph, err := depend.ResolveNamed[string](http.IntrospectionGraphKey)
	require.NoError(t, err)
	require.NotEmpty(t, mermaidGraph)

	configs, err := depend.ResolveNamed[[]introspection.ConfigAccess](http.IntrospectionConfigsKey)
	require.NoError(t, err)
	require.Equal(t, report.Configs, configs)
}

func TestReportLoggerIntrospector_Introspect(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	depend.Register(zap.New(core))
	t.Cleanup(depend.ClearContainer)

	report := introspection.Report{
		Configs: []introspection.ConfigAccess{
			{Key: "HTTP_PORT", UsedDefault: true},
			{Key: "LLM_MODEL", UsedDefault: false},
		},
	}

	err := ReportLoggerIntrospector{}.Introspect(context.Background(), report)
	require.NoError(t, err)

	entries := logs.FilterMessage("config key resolved").All()
	require.Len(t, entries, 2)
	require.Equal(t, "HTTP_PORT", entries[0].ContextMap()["key"])
	require.Equal(t, true, entries[0].ContextMap()["used_default"])
	require.Equal(t, "LLM_MODEL", entries[1].ContextMap()["key"])
	require.Equal(t, false, entries[1].ContextMap()["used_default"])
}

func TestReportLoggerIntrospector_Introspect_NoLogger(t *testing.T) {
	depend.ClearContainer()

	err := ReportLoggerIntrospector{}.Introspect(context.Background(), introspection.Report{})
	require.NoError(t, err)
}
