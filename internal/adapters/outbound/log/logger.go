package log

import (
	"context"
	"fmt"

	"github.com/cleitonmarx/symbiont/depend"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// InitLogger is the initializer for the logger dependency.
type InitLogger struct {
	Level  string `config:"LOG_LEVEL" default:"info"`
	logger *zap.Logger
}

// Initialize registers the structured logger and a standard library bridge for
// components that only accept a Printf-style logger.
func (il *InitLogger) Initialize(ctx context.Context) (context.Context, error) {
	level, err := zapcore.ParseLevel(il.Level)
	if err != nil {
		return ctx, fmt.Errorf("invalid LOG_LEVEL %q: %w", il.Level, err)
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)

	il.logger, err = cfg.Build()
	if err != nil {
		return ctx, fmt.Errorf("failed to build logger: %w", err)
	}

	depend.Register(il.logger)
	depend.Register(zap.NewStdLog(il.logger))
	return ctx, nil
}

// Close flushes buffered log entries.
func (il *InitLogger) Close() {
	if il.logger != nil {
		_ = il.logger.Sync()
	}
}
