package workers

import (
	"context"
	"time"

	"github.com/zral/mcp-ws/internal/usecases"
	"go.uber.org/zap"
)

// ConversationRetention is a runnable that periodically purges conversations older than the retention window.
// It stays idle when RETENTION_DAYS is 0.
type ConversationRetention struct {
	Memory              usecases.ConversationMemory `resolve:""`
	Logger              *zap.Logger                 `resolve:""`
	RetentionDays       int                         `config:"RETENTION_DAYS" default:"0"`
	Interval            time.Duration               `config:"RETENTION_INTERVAL" default:"24h"`
	workerExecutionChan chan struct{}
}

// Run starts the periodic purge of old conversations.
func (cr ConversationRetention) Run(ctx context.Context) error {
	if cr.RetentionDays <= 0 || cr.Interval <= 0 {
		cr.Logger.Info("ConversationRetention: disabled")
		<-ctx.Done()
		return nil
	}

	cr.Logger.Info("ConversationRetention: running...",
		zap.Int("retention_days", cr.RetentionDays),
		zap.Duration("interval", cr.Interval),
	)
	ticker := time.NewTicker(cr.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			result, err := cr.Memory.PurgeOlderThan(ctx, cr.RetentionDays, "")
			if err != nil {
				cr.Logger.Error("ConversationRetention: purge failed", zap.Error(err))
			} else if result.Total() > 0 {
				cr.Logger.Info("ConversationRetention: purged old conversations",
					zap.Int64("messages", result.Messages),
					zap.Int64("sessions", result.Sessions),
				)
			}
			if cr.workerExecutionChan != nil {
				select {
				case cr.workerExecutionChan <- struct{}{}:
				case <-ctx.Done():
				}
			}
		case <-ctx.Done():
			cr.Logger.Info("ConversationRetention: stopping...")
			return nil
		}
	}
}
