// logger.go wraps the go-belt context logger used across vcusettings.

// Package logger provides the context-carried logger of vcusettings.
package logger

import (
	"context"

	"github.com/facebookincubator/go-belt/tool/logger"
)

// Logger is an alias of the go-belt logger, so callers do not import go-belt directly.
type Logger = logger.Logger

func SetDefault(defaultLogger func() Logger) {
	logger.Default = defaultLogger
}

// Debugf logs at the Debug level using the logger stored in ctx.
func Debugf(ctx context.Context, format string, args ...any) {
	logger.Debugf(ctx, format, args...)
}

// Infof logs at the Info level using the logger stored in ctx.
func Infof(ctx context.Context, format string, args ...any) {
	logger.Infof(ctx, format, args...)
}

// Warnf logs at the Warning level using the logger stored in ctx.
func Warnf(ctx context.Context, format string, args ...any) {
	logger.Warnf(ctx, format, args...)
}

// Errorf logs at the Error level using the logger stored in ctx.
func Errorf(ctx context.Context, format string, args ...any) {
	logger.Errorf(ctx, format, args...)
}

// Panic logs at the Panic level and panics.
func Panic(ctx context.Context, values ...any) {
	logger.Panic(ctx, values...)
}
