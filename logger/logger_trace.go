//go:build debug_trace
// +build debug_trace

package logger

import (
	"context"

	"github.com/facebookincubator/go-belt/tool/logger"
)

// Tracef logs at the Trace level; it is a no-op unless built with the debug_trace tag.
func Tracef(ctx context.Context, format string, args ...any) {
	logger.Tracef(ctx, format, args...)
}
