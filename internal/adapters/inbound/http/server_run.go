package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/cors"
	"github.com/zral/mcp-ws/internal/domain"
	"github.com/zral/mcp-ws/internal/telemetry"
	"github.com/zral/mcp-ws/internal/usecases"
	"go.uber.org/zap"
)

// TravelAgentServer is the REST API of the travel agent.
type TravelAgentServer struct {
	Port                int                         `config:"HTTP_PORT" default:"8001"`
	Logger              *zap.Logger                 `resolve:""`
	TimeProvider        domain.CurrentTimeProvider  `resolve:""`
	ProcessQueryUseCase usecases.ProcessQuery       `resolve:""`
	MemoryUseCase       usecases.ConversationMemory `resolve:""`
	ListToolsUseCase    usecases.ListTools          `resolve:""`
	RefreshToolsUseCase usecases.RefreshTools       `resolve:""`
	GetHealthUseCase    usecases.GetHealth          `resolve:""`
}

// Handler builds the routed, instrumented and CORS-enabled handler of the API.
func (api TravelAgentServer) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /query", api.Query)
	mux.HandleFunc("GET /health", api.Health)
	mux.HandleFunc("GET /tools", api.ListTools)
	mux.HandleFunc("POST /tools/refresh", api.RefreshTools)
	mux.HandleFunc("POST /sessions", api.CreateSession)
	mux.HandleFunc("GET /sessions", api.ListSessions)
	mux.HandleFunc("DELETE /sessions", api.PurgeSessions)
	mux.HandleFunc("GET /sessions/{session_id}/history", api.SessionHistory)
	mux.HandleFunc("GET /memory/stats", api.MemoryStats)

	mux.HandleFunc("GET /introspect", api.Introspect)

	h := telemetry.Middleware("travelagent-api")(mux)

	// Apply CORS at the top-level so preflight requests hit it, too.
	return cors.AllowAll().Handler(h)
}

// Run starts the HTTP server for the TravelAgentServer.
func (api TravelAgentServer) Run(ctx context.Context) error {
	s := &http.Server{
		Handler:           api.Handler(),
		Addr:              fmt.Sprintf(":%d", api.Port),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		api.Logger.Info("TravelAgentServer: listening", zap.Int("port", api.Port))
		errCh <- s.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		err := s.Shutdown(shutdownCtx)
		if err != nil {
			api.Logger.Error("TravelAgentServer: error during shutdown", zap.Error(err))
		} else {
			api.Logger.Info("TravelAgentServer: stopped")
		}
		return err
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// IsReady checks if the TravelAgentServer is ready by calling its health endpoint.
func (api TravelAgentServer) IsReady(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("http://:%d/health", api.Port), nil)
	if err != nil {
		return err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}
	return nil
}
