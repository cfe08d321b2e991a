package observability

import (
	"context"

	"go.uber.org/zap"
)

// FlushTelemetry flushes telemetry buffers before process exit.
// For pull-based Prometheus, metrics are already exposed; this mainly flushes
// logs. Call during graceful shutdown after the server has drained.
func FlushTelemetry(ctx context.Context, logger *zap.Logger) error {
	if logger != nil {
		// Sync on stderr commonly returns EINVAL; not actionable at exit.
		_ = logger.Sync()
	}
	return nil
}
