package time

import (
	"context"
	"time"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/zral/mcp-ws/internal/domain"
)

// UTCClock implements domain.CurrentTimeProvider returning wall-clock time in UTC.
type UTCClock struct{}

// Now returns the current time in UTC.
func (UTCClock) Now() time.Time {
	return time.Now().UTC()
}

// InitClock registers the UTC clock in the dependency container.
type InitClock struct{}

// Initialize registers the clock as the domain.CurrentTimeProvider.
func (InitClock) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.CurrentTimeProvider](UTCClock{})
	return ctx, nil
}
