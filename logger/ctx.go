// ctx.go provides the context helpers of the logger.

package logger

import (
	"context"

	"github.com/facebookincubator/go-belt/tool/logger"
)

func FromCtx(ctx context.Context) Logger {
	return logger.FromCtx(ctx)
}

func CtxWithLogger(ctx context.Context, l Logger) context.Context {
	return logger.CtxWithLogger(ctx, l)
}
