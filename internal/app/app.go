package app

import (
	"github.com/cleitonmarx/symbiont"
	"github.com/zral/mcp-ws/internal/adapters/inbound/http"
	"github.com/zral/mcp-ws/internal/adapters/inbound/workers"
	"github.com/zral/mcp-ws/internal/adapters/outbound/config"
	"github.com/zral/mcp-ws/internal/adapters/outbound/log"
	"github.com/zral/mcp-ws/internal/adapters/outbound/modelrunner"
	"github.com/zral/mcp-ws/internal/adapters/outbound/openai"
	"github.com/zral/mcp-ws/internal/adapters/outbound/postgres"
	"github.com/zral/mcp-ws/internal/adapters/outbound/time"
	"github.com/zral/mcp-ws/internal/adapters/outbound/toolserver"
	"github.com/zral/mcp-ws/internal/assistant"
	"github.com/zral/mcp-ws/internal/telemetry"
	"github.com/zral/mcp-ws/internal/usecases"
)

// NewTravelAgentApp creates and returns a new instance of the travel agent application.
func NewTravelAgentApp(initializers ...symbiont.Initializer) *symbiont.App {
	return symbiont.NewApp().
		Initialize(initializers...).
		Initialize(
			&log.InitLogger{},
			&telemetry.InitOpenTelemetry{},
			&telemetry.InitHttpClient{},
			&config.InitVaultProvider{},
			&postgres.InitDB{},
			&postgres.InitUnitOfWork{},
			&postgres.InitSessionRepository{},
			&postgres.InitChatMessageRepository{},
			&time.InitClock{},
			&toolserver.InitToolServer{},
			&assistant.InitToolRegistry{},
			&assistant.InitToolInvoker{},
			&modelrunner.InitAssistantClient{},
			&openai.InitAssistantClient{},

			&usecases.InitConversationMemory{},
			&usecases.InitProcessQuery{},
			&usecases.InitListTools{},
			&usecases.InitRefreshTools{},
			&usecases.InitGetHealth{},
		).
		Host(
			&http.TravelAgentServer{},
			&workers.ConversationRetention{},
			&workers.ToolCatalogRefresher{},
		).
		Introspect(&MermaidGraphIntrospector{})
}
