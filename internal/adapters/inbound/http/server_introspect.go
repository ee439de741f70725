package http

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/cleitonmarx/symbiont/introspection"
)

const (
	// IntrospectionGraphKey names the mermaid dependency graph registered at startup.
	IntrospectionGraphKey = "introspection-graph-mermaid"
	// IntrospectionConfigsKey names the configuration keys read at startup.
	IntrospectionConfigsKey = "introspection-configs"
)

var (
	//go:embed templates/introspect.gohtml
	templateFS    embed.FS
	introspectTpl = template.Must(template.ParseFS(templateFS, "templates/introspect.gohtml"))
)

type introspectionPage struct {
	Title   string
	Graph   string
	Configs []introspection.ConfigAccess
}

// Render the dependency graph and the configuration keys read at startup
// (GET /introspect)
func (api TravelAgentServer) Introspect(w http.ResponseWriter, r *http.Request) {
	graph, err := depend.ResolveNamed[string](IntrospectionGraphKey)
	if err != nil {
		http.Error(w, "Failed to resolve dependency graph", http.StatusInternalServerError)
		return
	}
	configs, _ := depend.ResolveNamed[[]introspection.ConfigAccess](IntrospectionConfigsKey)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	page := introspectionPage{
		Title:   "Travel Agent Introspection Graph",
		Graph:   graph,
		Configs: configs,
	}
	if err := introspectTpl.Execute(w, page); err != nil {
		http.Error(w, "Failed to render introspection page", http.StatusInternalServerError)
	}
}
