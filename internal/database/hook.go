package database

import (
	"context"
	"time"

	"github.com/uptrace/bun"
	"go.uber.org/zap"
)

// Hook is a bun.QueryHook that mirrors every query into the database
// logger. Successful queries land at debug level so they stay out of
// production logs unless explicitly enabled.
type Hook struct {
	logger *zap.Logger
}

// NewHook wraps a zap logger in a query hook.
func NewHook(logger *zap.Logger) *Hook {
	return &Hook{logger: logger}
}

// BeforeQuery is a no-op; timing comes from the event's StartTime.
func (h *Hook) BeforeQuery(ctx context.Context, _ *bun.QueryEvent) context.Context {
	return ctx
}

// AfterQuery records the finished query with its elapsed time.
func (h *Hook) AfterQuery(_ context.Context, event *bun.QueryEvent) {
	elapsed := time.Since(event.StartTime)

	if event.Err != nil {
		h.logger.Error("Query failed",
			zap.String("query", event.Query),
			zap.Duration("elapsed", elapsed),
			zap.Error(event.Err))

		return
	}

	h.logger.Debug("Query completed",
		zap.String("query", event.Query),
		zap.Duration("elapsed", elapsed))
}
