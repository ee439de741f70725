package http

import (
	"net/http"
)

// List the registered tools
// (GET /tools)
func (api TravelAgentServer) ListTools(w http.ResponseWriter, r *http.Request) {
	infos := api.ListToolsUseCase.Query(r.Context())

	resp := ToolListResp{
		Success: true,
		Tools:   make([]Tool, len(infos)),
	}
	for i, info := range infos {
		resp.Tools[i] = toTool(info)
	}
	respondJSON(w, http.StatusOK, resp)
}

// Re-run tool discovery
// (POST /tools/refresh)
func (api TravelAgentServer) RefreshTools(w http.ResponseWriter, r *http.Request) {
	status := api.RefreshToolsUseCase.Execute(r.Context())
	respondJSON(w, http.StatusOK, ToolRefreshResp{
		Success:            true,
		ToolsLoaded:        status.ToolsLoaded,
		MCPServerConnected: status.ToolServerConnected,
		DiscoveredAt:       status.DiscoveredAt,
	})
}
