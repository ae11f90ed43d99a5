//go:build !debug_trace
// +build !debug_trace

package logger

import (
	"context"
)

// Tracef is compiled out; build with the debug_trace tag to get Get/Set traces.
func Tracef(ctx context.Context, format string, args ...any) {}
