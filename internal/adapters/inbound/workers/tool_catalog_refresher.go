package workers

import (
	"context"
	"time"

	"github.com/zral/mcp-ws/internal/usecases"
	"go.uber.org/zap"
)

// ToolCatalogRefresher is a runnable that periodically re-runs tool discovery.
// It stays idle when TOOL_REFRESH_INTERVAL is 0.
type ToolCatalogRefresher struct {
	RefreshTools        usecases.RefreshTools `resolve:""`
	Logger              *zap.Logger           `resolve:""`
	Interval            time.Duration         `config:"TOOL_REFRESH_INTERVAL" default:"0s"`
	workerExecutionChan chan struct{}
}

// Run starts the periodic tool discovery.
func (tr ToolCatalogRefresher) Run(ctx context.Context) error {
	if tr.Interval <= 0 {
		tr.Logger.Info("ToolCatalogRefresher: disabled")
		<-ctx.Done()
		return nil
	}

	tr.Logger.Info("ToolCatalogRefresher: running...", zap.Duration("interval", tr.Interval))
	ticker := time.NewTicker(tr.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			status := tr.RefreshTools.Execute(ctx)
			tr.Logger.Debug("ToolCatalogRefresher: refreshed",
				zap.Int("tools_loaded", status.ToolsLoaded),
				zap.Bool("tool_server_connected", status.ToolServerConnected),
			)
			if tr.workerExecutionChan != nil {
				select {
				case tr.workerExecutionChan <- struct{}{}:
				case <-ctx.Done():
				}
			}
		case <-ctx.Done():
			tr.Logger.Info("ToolCatalogRefresher: stopping...")
			return nil
		}
	}
}
