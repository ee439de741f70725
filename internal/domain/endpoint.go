package domain

import (
	"net/http"
	"strings"
)

// EndpointResolution is the HTTP route used to invoke a tool.
type EndpointResolution struct {
	Method string
	Path   string
	// Explicit reports whether the route came from the manifest rather than the naming convention.
	Explicit bool
}

// ResolveEndpoint determines the HTTP method and path for a tool descriptor.
//
// An explicit endpoint is used verbatim, with the method defaulting to POST.
// Otherwise the path is derived from the tool name: a leading "get_" is stripped,
// underscores become hyphens and the result is rooted at "/". Derived routes always use POST.
func ResolveEndpoint(d ToolDescriptor) EndpointResolution {
	if endpoint := strings.TrimSpace(d.Endpoint); endpoint != "" {
		method := strings.ToUpper(strings.TrimSpace(d.Method))
		if method == "" {
			method = http.MethodPost
		}
		return EndpointResolution{Method: method, Path: endpoint, Explicit: true}
	}

	name := strings.TrimPrefix(d.Name, "get_")
	return EndpointResolution{
		Method: http.MethodPost,
		Path:   "/" + strings.ReplaceAll(name, "_", "-"),
	}
}
